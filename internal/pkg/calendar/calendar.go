package calendar

import (
	"time"
)

// Week is one calendar row of a grid layout: exactly 7 slots, Sunday-first
// by default. Nil slots are padding outside the requested range.
type Week [7]*time.Time

// Truncate strips the time-of-day component, keeping the calendar day in the
// date's own location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns every calendar day from start through end inclusive.
// Returns nil when end precedes start.
func DaysBetween(start, end time.Time) []time.Time {
	start = Truncate(start)
	end = Truncate(end)
	if end.Before(start) {
		return nil
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WeeksBetween buckets the days from start through end into week rows. The
// first row is left-padded with nil slots so start lands in the column
// matching its weekday offset from weekStartsOn; the last row is right-padded
// to length 7. Handles ranges spanning multiple years.
func WeeksBetween(start, end time.Time, weekStartsOn time.Weekday) []Week {
	days := DaysBetween(start, end)
	if len(days) == 0 {
		return nil
	}

	var weeks []Week
	var current Week
	slot := (int(days[0].Weekday()) - int(weekStartsOn) + 7) % 7

	for i := range days {
		if slot == 7 {
			weeks = append(weeks, current)
			current = Week{}
			slot = 0
		}
		current[slot] = &days[i]
		slot++
	}
	weeks = append(weeks, current)

	return weeks
}

// FirstDay returns the first non-nil slot of the week, or nil for an
// all-padding row.
func (w Week) FirstDay() *time.Time {
	for _, d := range w {
		if d != nil {
			return d
		}
	}
	return nil
}

// MonthBounds returns the first and last day of the month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// YearBounds returns January 1st and December 31st of the year containing t.
func YearBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	last := time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location())
	return first, last
}

// DaysInMonth returns the number of calendar days in the month containing t.
func DaysInMonth(t time.Time) int {
	_, last := MonthBounds(t)
	return last.Day()
}
