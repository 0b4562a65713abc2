package presence

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naturalize/internal/presence/models"
	"naturalize/pkg/platform/diagnostic"
)

func day(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: timeMonth(m), Day: d}
}

func TestFindResidenceGaps(t *testing.T) {
	t.Run("unsorted input yields one 61 day gap", func(t *testing.T) {
		res := FindResidenceGaps([]models.ResidenceInterval{
			{ID: "b", Start: "2020-08-01", End: "2020-12-01"},
			{ID: "a", Start: "2020-01-01", End: "2020-06-01"},
		})
		require.Len(t, res.Gaps, 1)
		g := res.Gaps[0]
		assert.Equal(t, "a", g.AfterID)
		assert.Equal(t, "b", g.BeforeID)
		assert.Equal(t, 61, g.Days)
		assert.Equal(t, day(2020, 6, 1), g.From)
		assert.Equal(t, day(2020, 8, 1), g.To)
		assert.Empty(t, res.Diagnostics)
	})

	t.Run("contiguous intervals have no gap", func(t *testing.T) {
		res := FindResidenceGaps([]models.ResidenceInterval{
			{ID: "a", Start: "2020-01-01", End: "2020-06-01"},
			{ID: "b", Start: "2020-06-01", End: "2020-12-01"},
		})
		assert.Empty(t, res.Gaps)
	})

	t.Run("overlapping intervals have no gap", func(t *testing.T) {
		res := FindResidenceGaps([]models.ResidenceInterval{
			{ID: "a", Start: "2020-01-01", End: "2020-07-01"},
			{ID: "b", Start: "2020-06-01", End: "2020-12-01"},
		})
		assert.Empty(t, res.Gaps)
	})

	t.Run("US dates are accepted", func(t *testing.T) {
		res := FindResidenceGaps([]models.ResidenceInterval{
			{ID: "a", Start: "01/01/2020", End: "06/01/2020"},
			{ID: "b", Start: "08/01/2020", End: ""},
		})
		require.Len(t, res.Gaps, 1)
		assert.Equal(t, 61, res.Gaps[0].Days)
	})

	t.Run("open-ended latest residence is fine", func(t *testing.T) {
		res := FindResidenceGaps([]models.ResidenceInterval{
			{ID: "current", Start: "2021-01-01"},
			{ID: "old", Start: "2019-01-01", End: "2020-12-31"},
		})
		require.Len(t, res.Gaps, 1)
		assert.Equal(t, 1, res.Gaps[0].Days)
		assert.Empty(t, res.Diagnostics)
	})

	t.Run("open-ended residence that is not latest is reported", func(t *testing.T) {
		res := FindResidenceGaps([]models.ResidenceInterval{
			{ID: "open", Start: "2019-01-01"},
			{ID: "later", Start: "2021-01-01", End: "2021-06-01"},
		})
		assert.Empty(t, res.Gaps)
		require.Len(t, res.Diagnostics, 1)
		assert.Equal(t, diagnostic.KindInconsistentState, res.Diagnostics[0].Kind)
		assert.Equal(t, "open", res.Diagnostics[0].Subject)
	})

	t.Run("end before start is excluded and reported", func(t *testing.T) {
		res := FindResidenceGaps([]models.ResidenceInterval{
			{ID: "a", Start: "2020-01-01", End: "2020-06-01"},
			{ID: "bad", Start: "2020-07-01", End: "2020-06-15"},
			{ID: "b", Start: "2020-08-01", End: "2020-12-01"},
		})
		require.Len(t, res.Gaps, 1)
		assert.Equal(t, "b", res.Gaps[0].BeforeID)
		require.Len(t, res.Diagnostics, 1)
		assert.Equal(t, diagnostic.KindInconsistentState, res.Diagnostics[0].Kind)
	})

	t.Run("unparseable dates are excluded and reported", func(t *testing.T) {
		res := FindResidenceGaps([]models.ResidenceInterval{
			{ID: "x", Start: "spring 2020", End: "2020-06-01"},
			{ID: "y", Start: "2020-01-01", End: "june"},
		})
		assert.Empty(t, res.Gaps)
		assert.Equal(t, 2, diagnostic.List(res.Diagnostics).Count(diagnostic.KindParseError))
	})

	t.Run("empty input", func(t *testing.T) {
		res := FindResidenceGaps(nil)
		assert.Empty(t, res.Gaps)
		assert.NotNil(t, res.Gaps)
	})
}

func TestFindLongTrips(t *testing.T) {
	trips := []models.TravelInterval{
		{ID: "213", Departure: "2020-01-01", Return: "2020-08-01"},
		{ID: "183", Departure: "2021-01-01", Return: "2021-07-03"},
		{ID: "182", Departure: "2022-01-01", Return: "2022-07-02"},
		{ID: "bad", Departure: "2022-13-01", Return: "2023-01-01"},
		{ID: "backwards", Departure: "2023-05-01", Return: "2023-04-01"},
	}

	res := FindLongTrips(trips, 183)

	assert.Equal(t, 183, res.Threshold)
	require.Len(t, res.Long, 2)
	assert.Equal(t, "213", res.Long[0].Trip.ID)
	assert.Equal(t, 213, res.Long[0].Days)
	assert.Equal(t, "183", res.Long[1].Trip.ID)
	assert.Equal(t, 183, res.Long[1].Days)

	require.Len(t, res.Short, 1)
	assert.Equal(t, 182, res.Short[0].Days)

	require.Len(t, res.Unparseable, 2)
	assert.Equal(t, "bad", res.Unparseable[0].ID)
	assert.Len(t, res.Diagnostics, 2)
}

func TestFindLongTrips_DefaultThreshold(t *testing.T) {
	res := FindLongTrips([]models.TravelInterval{
		{ID: "t", Departure: "01/01/2021", Return: "07/03/2021"},
	}, 0)
	assert.Equal(t, models.DefaultLongTripDays, res.Threshold)
	assert.Len(t, res.Long, 1)
}

func TestTotalDaysAbroad(t *testing.T) {
	assert.Equal(t, 0, TotalDaysAbroad(nil))
	assert.Equal(t, 45, TotalDaysAbroad([]models.TravelInterval{
		{DurationDays: 10}, {DurationDays: 30}, {DurationDays: 5},
	}))
}

func TestDaysAbroadInWindow(t *testing.T) {
	w := NewWindow(day(2025, 1, 1), 3) // 2022-01-01 .. 2025-01-01

	t.Run("trip inside the window counts its stored duration", func(t *testing.T) {
		total, diags := DaysAbroadInWindow([]models.TravelInterval{
			{ID: "a", Departure: "2023-01-01", Return: "2023-01-11", DurationDays: 10},
		}, w)
		assert.Equal(t, 10, total)
		assert.Empty(t, diags)
	})

	t.Run("trip straddling the window start is clipped", func(t *testing.T) {
		total, diags := DaysAbroadInWindow([]models.TravelInterval{
			{ID: "long", Departure: "2019-01-01", Return: "2022-01-02", DurationDays: 1097},
		}, w)
		assert.Equal(t, 1, total)
		assert.Empty(t, diags)
	})

	t.Run("trip straddling the window end is clipped", func(t *testing.T) {
		total, _ := DaysAbroadInWindow([]models.TravelInterval{
			{ID: "open", Departure: "2024-12-22", Return: "2025-01-05", DurationDays: 14},
		}, w)
		assert.Equal(t, 10, total)
	})

	t.Run("straddling trip with a disagreeing stored duration is reported", func(t *testing.T) {
		total, diags := DaysAbroadInWindow([]models.TravelInterval{
			{ID: "odd", Departure: "2021-12-01", Return: "2022-01-11", DurationDays: 3},
		}, w)
		assert.Equal(t, 10, total)
		require.Len(t, diags, 1)
		assert.Equal(t, diagnostic.KindInconsistentState, diags[0].Kind)
		assert.Equal(t, "odd", diags[0].Subject)
	})

	t.Run("unparseable trip keeps its stored duration", func(t *testing.T) {
		total, _ := DaysAbroadInWindow([]models.TravelInterval{
			{ID: "bad", Departure: "soon", Return: "later", DurationDays: 7},
		}, w)
		assert.Equal(t, 7, total)
	})
}

func TestNewWindow(t *testing.T) {
	w := NewWindow(day(2025, 3, 1), 5)
	assert.Equal(t, day(2020, 3, 1), w.Start)
	assert.Equal(t, day(2025, 3, 1), w.End)
	assert.Equal(t, 1826, ElapsedDays(w))

	w = NewWindow(day(2024, 2, 29), 3)
	assert.Equal(t, day(2021, 2, 28), w.Start)
}

func TestPhysicalPresenceStatus(t *testing.T) {
	w := NewWindow(day(2025, 1, 1), 3)
	elapsed := ElapsedDays(w)
	require.Equal(t, 1096, elapsed)

	met := PhysicalPresenceStatus(100, 548, w)
	assert.True(t, met.Met)
	assert.Equal(t, 996, met.DaysPresent)
	assert.Zero(t, met.Shortfall)

	short := PhysicalPresenceStatus(600, 548, w)
	assert.False(t, short.Met)
	assert.Equal(t, 496, short.DaysPresent)
	assert.Equal(t, 52, short.Shortfall)

	exact := PhysicalPresenceStatus(elapsed-548, 548, w)
	assert.True(t, exact.Met)

	over := PhysicalPresenceStatus(elapsed+30, 548, w)
	assert.Zero(t, over.DaysPresent)
	assert.Equal(t, 548, over.Shortfall)
}

func TestTotalDaysResident(t *testing.T) {
	w := NewWindow(day(2025, 1, 1), 3) // 2022-01-01 .. 2025-01-01
	total := TotalDaysResident([]models.ResidenceInterval{
		{ID: "before", Start: "2019-01-01", End: "2022-07-01"}, // clipped to 181
		{ID: "current", Start: "2023-01-01"},                   // runs to window end: 731
		{ID: "bad", Start: "nope"},
	}, w)
	assert.Equal(t, 181+731, total)
}

func TestInWindow(t *testing.T) {
	w := NewWindow(day(2025, 1, 1), 3)
	kept := InWindow([]models.TravelInterval{
		{ID: "old", Departure: "2020-01-01", Return: "2020-02-01"},
		{ID: "straddle", Departure: "2021-12-15", Return: "2022-01-10"},
		{ID: "inside", Departure: "2023-01-01", Return: "2023-01-10"},
		{ID: "future", Departure: "2025-06-01", Return: "2025-06-10"},
		{ID: "bad", Departure: "?", Return: "?"},
	}, w)

	ids := make([]string, 0, len(kept))
	for _, t := range kept {
		ids = append(ids, t.ID)
	}
	assert.Equal(t, []string{"straddle", "inside", "bad"}, ids)
}

func TestSortTrips(t *testing.T) {
	trips := []models.TravelInterval{
		{ID: "bad", Departure: "?"},
		{ID: "late", Departure: "2023-01-01"},
		{ID: "early", Departure: "01/01/2020"},
	}
	SortTrips(trips)
	assert.Equal(t, "early", trips[0].ID)
	assert.Equal(t, "late", trips[1].ID)
	assert.Equal(t, "bad", trips[2].ID)
}
