package dates

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: timeMonth(m), Day: d}
}

func TestParse(t *testing.T) {
	t.Run("ISO text parses with ISO layout", func(t *testing.T) {
		got, ok := Parse("2025-03-15", ISO)
		require.True(t, ok)
		assert.Equal(t, date(2025, 3, 15), got)
	})

	t.Run("US text with and without leading zeros", func(t *testing.T) {
		for _, text := range []string{"03/15/2025", "3/15/2025", " 03/15/2025 "} {
			got, ok := Parse(text, ISOThenUS...)
			require.True(t, ok, text)
			assert.Equal(t, date(2025, 3, 15), got, text)
		}
	})

	t.Run("caller order resolves ambiguous text", func(t *testing.T) {
		us, ok := Parse("03/04/2025", MonthDayYear, DayMonthYear)
		require.True(t, ok)
		assert.Equal(t, date(2025, 3, 4), us)

		dm, ok := Parse("03/04/2025", DayMonthYear, MonthDayYear)
		require.True(t, ok)
		assert.Equal(t, date(2025, 4, 3), dm)
	})

	t.Run("day-first text only parses when the caller accepts it", func(t *testing.T) {
		_, ok := Parse("25/12/2024", ISOThenUS...)
		assert.False(t, ok)

		got, ok := Parse("25/12/2024", ISOThenUSThenDM...)
		require.True(t, ok)
		assert.Equal(t, date(2024, 12, 25), got)
	})

	t.Run("empty and garbage text fail without panicking", func(t *testing.T) {
		for _, text := range []string{"", "   ", "not a date", "2025-13-01", "02/30/2025"} {
			_, ok := Parse(text, ISOThenUSThenDM...)
			assert.False(t, ok, text)
		}
	})

	t.Run("no layouts means no match", func(t *testing.T) {
		_, ok := Parse("2025-03-15")
		assert.False(t, ok)
	})
}

func TestParseE(t *testing.T) {
	_, err := ParseE("yesterday", ISO, MonthDayYear)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "yesterday", pe.Text)
	assert.Contains(t, err.Error(), "2006-01-02")
}

func TestAddMonths(t *testing.T) {
	cases := []struct {
		name string
		in   civil.Date
		n    int
		want civil.Date
	}{
		{"mid-month", date(2025, 9, 15), -6, date(2025, 3, 15)},
		{"month end clamps to shorter month", date(2025, 8, 31), -6, date(2025, 2, 28)},
		{"month end clamps to leap day", date(2024, 8, 31), -6, date(2024, 2, 29)},
		{"crosses year boundary", date(2025, 3, 31), -6, date(2024, 9, 30)},
		{"forward across year", date(2024, 11, 30), 3, date(2025, 2, 28)},
		{"zero is identity", date(2024, 2, 29), 0, date(2024, 2, 29)},
		{"large negative", date(2025, 1, 15), -25, date(2022, 12, 15)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AddMonths(tc.in, tc.n))
		})
	}
}

func TestAddYearsLeapDay(t *testing.T) {
	assert.Equal(t, date(2025, 2, 28), AddYears(date(2024, 2, 29), 1))
	assert.Equal(t, date(2020, 2, 29), AddYears(date(2024, 2, 29), -4))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 61, DaysBetween(date(2020, 6, 1), date(2020, 8, 1)))
	assert.Equal(t, -61, DaysBetween(date(2020, 8, 1), date(2020, 6, 1)))
	assert.Equal(t, 213, DaysBetween(date(2020, 1, 1), date(2020, 8, 1)))
}

func timeMonth(m int) time.Month { return time.Month(m) }
