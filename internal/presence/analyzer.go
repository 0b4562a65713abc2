// Package presence computes physical presence, long trips and residence gaps
// from an applicant's residence and travel records. Everything in this file
// is pure.
package presence

import (
	"cmp"
	"slices"

	"cloud.google.com/go/civil"

	"naturalize/internal/presence/models"
	"naturalize/pkg/dates"
	"naturalize/pkg/platform/diagnostic"
)

// intervalLayouts is the order stored interval dates are tried in.
var intervalLayouts = dates.ISOThenUS

// NewWindow returns the lookback window of the given years ending at reference.
func NewWindow(reference civil.Date, years int) models.Window {
	return models.Window{
		Start: dates.AddYears(reference, -years),
		End:   reference,
		Years: years,
	}
}

// ElapsedDays is the number of days in the window.
func ElapsedDays(w models.Window) int {
	return dates.DaysBetween(w.Start, w.End)
}

// TotalDaysAbroad sums the stored duration of every trip.
func TotalDaysAbroad(trips []models.TravelInterval) int {
	total := 0
	for _, t := range trips {
		total += t.DurationDays
	}
	return total
}

// DaysAbroadInWindow sums trip days that fall inside the window. A trip that
// straddles a window edge counts only the days between the later of departure
// and window start and the earlier of return and window end. Trips fully
// inside the window, or whose dates cannot be parsed, count their stored
// duration. A straddling trip whose stored duration disagrees with its dates
// is reported.
func DaysAbroadInWindow(trips []models.TravelInterval, w models.Window) (int, []diagnostic.Diagnostic) {
	total := 0
	var diags diagnostic.List
	for _, t := range trips {
		dep, depOK := dates.Parse(t.Departure, intervalLayouts...)
		ret, retOK := dates.Parse(t.Return, intervalLayouts...)
		if !depOK || !retOK || ret.Before(dep) {
			total += t.DurationDays
			continue
		}
		if !dep.Before(w.Start) && !ret.After(w.End) {
			total += t.DurationDays
			continue
		}
		from, to := dep, ret
		if from.Before(w.Start) {
			from = w.Start
		}
		if to.After(w.End) {
			to = w.End
		}
		if days := dates.DaysBetween(from, to); days > 0 {
			total += days
		}
		if full := dates.DaysBetween(dep, ret); full != t.DurationDays {
			diags.Add(diagnostic.InconsistentState(t.ID,
				"stored duration %d days disagrees with trip dates (%d days)", t.DurationDays, full))
		}
	}
	return total, diags
}

// TotalDaysResident sums residence days inside the window. An open-ended
// residence runs to the window end. Unusable intervals contribute nothing.
func TotalDaysResident(residences []models.ResidenceInterval, w models.Window) int {
	total := 0
	for _, r := range residences {
		start, ok := dates.Parse(r.Start, intervalLayouts...)
		if !ok {
			continue
		}
		end := w.End
		if r.End != "" {
			if end, ok = dates.Parse(r.End, intervalLayouts...); !ok {
				continue
			}
		}
		if start.Before(w.Start) {
			start = w.Start
		}
		if end.After(w.End) {
			end = w.End
		}
		if days := dates.DaysBetween(start, end); days > 0 {
			total += days
		}
	}
	return total
}

// FindLongTrips classifies trips by elapsed days between departure and
// return. Elapsed days at or above threshold is long; a non-positive threshold
// uses the default. Trips with an unparseable date, or returning before they
// depart, are reported as unparseable.
func FindLongTrips(trips []models.TravelInterval, threshold int) models.LongTripResult {
	if threshold <= 0 {
		threshold = models.DefaultLongTripDays
	}
	res := models.LongTripResult{
		Threshold: threshold,
		Long:      []models.TripLength{},
		Short:     []models.TripLength{},
	}
	var diags diagnostic.List

	for _, t := range trips {
		dep, depOK := dates.Parse(t.Departure, intervalLayouts...)
		ret, retOK := dates.Parse(t.Return, intervalLayouts...)
		if !depOK || !retOK {
			res.Unparseable = append(res.Unparseable, t)
			diags.Add(diagnostic.ParseError(t.ID, "trip dates %q to %q are not recognized dates", t.Departure, t.Return))
			continue
		}
		days := dates.DaysBetween(dep, ret)
		if days < 0 {
			res.Unparseable = append(res.Unparseable, t)
			diags.Add(diagnostic.InconsistentState(t.ID, "trip returns %s before it departs %s", ret, dep))
			continue
		}
		tl := models.TripLength{Trip: t, Days: days}
		if days >= threshold {
			res.Long = append(res.Long, tl)
		} else {
			res.Short = append(res.Short, tl)
		}
	}
	res.Diagnostics = diags
	return res
}

type parsedResidence struct {
	id    string
	start civil.Date
	end   *civil.Date
}

// FindResidenceGaps sorts residences by start date and reports every positive
// gap between an interval's end and the next interval's start.
//
// An open-ended (current) residence is never the earlier side of a pair. If
// one is not the latest residence it is reported as inconsistent. Intervals
// with an unparseable start or end, or an end before the start, are excluded
// and reported.
func FindResidenceGaps(residences []models.ResidenceInterval) models.GapResult {
	var diags diagnostic.List
	parsed := make([]parsedResidence, 0, len(residences))

	for _, r := range residences {
		start, ok := dates.Parse(r.Start, intervalLayouts...)
		if !ok {
			diags.Add(diagnostic.ParseError(r.ID, "residence start %q is not a recognized date", r.Start))
			continue
		}
		p := parsedResidence{id: r.ID, start: start}
		if r.End != "" {
			end, ok := dates.Parse(r.End, intervalLayouts...)
			if !ok {
				diags.Add(diagnostic.ParseError(r.ID, "residence end %q is not a recognized date", r.End))
				continue
			}
			if end.Before(start) {
				diags.Add(diagnostic.InconsistentState(r.ID, "residence ends %s before it starts %s", end, start))
				continue
			}
			p.end = &end
		}
		parsed = append(parsed, p)
	}

	slices.SortStableFunc(parsed, func(a, b parsedResidence) int {
		return compareDates(a.start, b.start)
	})

	res := models.GapResult{Gaps: []models.Gap{}}
	for i := 0; i+1 < len(parsed); i++ {
		earlier, later := parsed[i], parsed[i+1]
		if earlier.end == nil {
			diags.Add(diagnostic.InconsistentState(earlier.id, "open-ended residence is followed by residence %s", later.id))
			continue
		}
		if days := dates.DaysBetween(*earlier.end, later.start); days > 0 {
			res.Gaps = append(res.Gaps, models.Gap{
				AfterID:  earlier.id,
				BeforeID: later.id,
				From:     *earlier.end,
				To:       later.start,
				Days:     days,
			})
		}
	}
	res.Diagnostics = diags
	return res
}

// PhysicalPresenceStatus compares days present in the window (elapsed days
// minus days abroad) with daysRequired.
func PhysicalPresenceStatus(totalDaysAbroad, daysRequired int, w models.Window) models.PresenceStatus {
	elapsed := ElapsedDays(w)
	// Overlapping or oversized stored trips can exceed the window.
	present := max(elapsed-totalDaysAbroad, 0)
	st := models.PresenceStatus{
		ElapsedDays:  elapsed,
		DaysAbroad:   totalDaysAbroad,
		DaysPresent:  present,
		DaysRequired: daysRequired,
		Met:          present >= daysRequired,
	}
	if !st.Met {
		st.Shortfall = daysRequired - present
	}
	return st
}

// tripEndedBefore reports whether a trip's return date falls before day. Trips
// whose return cannot be parsed are kept.
func tripEndedBefore(t models.TravelInterval, day civil.Date) bool {
	ret, ok := dates.Parse(t.Return, intervalLayouts...)
	return ok && ret.Before(day)
}

// tripDepartsAfter reports whether a trip departs after day.
func tripDepartsAfter(t models.TravelInterval, day civil.Date) bool {
	dep, ok := dates.Parse(t.Departure, intervalLayouts...)
	return ok && dep.After(day)
}

// InWindow keeps trips that overlap the window. Trips with unusable dates
// are kept so they surface as unparseable.
func InWindow(trips []models.TravelInterval, w models.Window) []models.TravelInterval {
	out := make([]models.TravelInterval, 0, len(trips))
	for _, t := range trips {
		if tripEndedBefore(t, w.Start) || tripDepartsAfter(t, w.End) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortTrips orders trips by departure date; unparseable trips go last.
func SortTrips(trips []models.TravelInterval) {
	slices.SortStableFunc(trips, func(a, b models.TravelInterval) int {
		da, okA := dates.Parse(a.Departure, intervalLayouts...)
		db, okB := dates.Parse(b.Departure, intervalLayouts...)
		switch {
		case okA && okB:
			return compareDates(da, db)
		case okA:
			return -1
		case okB:
			return 1
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
