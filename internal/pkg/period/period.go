package period

import (
	"math"
	"time"
)

// DayWindow returns the inclusive instant range covering t's calendar day in
// loc: 00:00:00.000000000 through 23:59:59.999999999.
func DayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// MonthWindow returns the inclusive instant range covering t's calendar month
// in loc: the first day's 00:00:00 through the last day's 23:59:59.999999999.
func MonthWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// StartOfDay truncates t to its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DaysInclusive counts the calendar days covered by [from, to], both ends
// included. The difference is taken between the day-truncated endpoints, so
// times of day never change the count. A range ending before it starts yields
// a count <= 0.
func DaysInclusive(from, to time.Time, loc *time.Location) int {
	start := StartOfDay(from, loc)
	end := StartOfDay(to, loc)
	// Rounding keeps the count stable across DST transitions, where a calendar
	// day is not exactly 24 hours long.
	return int(math.Round(end.Sub(start).Hours()/24)) + 1
}
