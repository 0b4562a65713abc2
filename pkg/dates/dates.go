// Package dates normalizes user-entered date text into calendar dates.
//
// Different forms accept different layouts, so parsing always takes the
// caller's ordered layout list rather than a global one. The first layout
// that parses wins; ambiguous text such as "03/04/2025" therefore resolves
// according to the caller's order.
package dates

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Layout is a Go reference-time layout for a date-only value.
type Layout string

const (
	// ISO is YYYY-MM-DD, the canonical storage form.
	ISO Layout = "2006-01-02"
	// MonthDayYear is the US form. Leading zeros are optional.
	MonthDayYear Layout = "1/2/2006"
	// DayMonthYear is the day-first form. Leading zeros are optional.
	DayMonthYear Layout = "2/1/2006"
)

// Common layout orderings used across call sites.
var (
	ISOThenUS       = []Layout{ISO, MonthDayYear}
	ISOThenUSThenDM = []Layout{ISO, MonthDayYear, DayMonthYear}
)

// ParseError reports text that matched none of the accepted layouts.
type ParseError struct {
	Text    string
	Layouts []Layout
}

func (e *ParseError) Error() string {
	names := make([]string, len(e.Layouts))
	for i, l := range e.Layouts {
		names[i] = string(l)
	}
	return fmt.Sprintf("date %q matches none of [%s]", e.Text, strings.Join(names, ", "))
}

// Parse tries each layout in order and returns the first successful parse.
// It never panics or errors; ok is false when nothing matched.
func Parse(text string, layouts ...Layout) (civil.Date, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return civil.Date{}, false
	}
	for _, layout := range layouts {
		t, err := time.Parse(string(layout), text)
		if err != nil {
			continue
		}
		return civil.DateOf(t), true
	}
	return civil.Date{}, false
}

// ParseE is Parse for callers that want an error value to wrap or log.
func ParseE(text string, layouts ...Layout) (civil.Date, error) {
	d, ok := Parse(text, layouts...)
	if !ok {
		return civil.Date{}, &ParseError{Text: text, Layouts: layouts}
	}
	return d, nil
}

// Canonical renders a date in the canonical ISO form.
func Canonical(d civil.Date) string {
	return d.String()
}

// AddMonths moves d by n calendar months. When the target month is shorter
// than d's day, the result is clamped to the target month's last day, so
// 2025-08-31 minus six months is 2025-02-28 rather than rolling into March.
func AddMonths(d civil.Date, n int) civil.Date {
	total := int(d.Month) - 1 + n
	year := d.Year + floorDiv(total, 12)
	month := time.Month(floorMod(total, 12) + 1)
	day := d.Day
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return civil.Date{Year: year, Month: month, Day: day}
}

// AddYears moves d by n calendar years with the same clamping as AddMonths
// (2024-02-29 plus one year is 2025-02-28).
func AddYears(d civil.Date, n int) civil.Date {
	return AddMonths(d, 12*n)
}

// DaysBetween returns the signed number of days from 'from' to 'to'.
func DaysBetween(from, to civil.Date) int {
	return to.DaysSince(from)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Today returns the calendar date of t in t's location.
func Today(t time.Time) civil.Date {
	return civil.DateOf(t)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
