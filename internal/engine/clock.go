package engine

import (
	"math"
	"time"
)

// Day bucketing uses local-calendar midnight truncation, not fixed 24h
// windows, so streaks survive daylight-saving transitions.

// DayStart returns the local midnight of the day t falls in.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the local midnight of the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	d := DayStart(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// MonthStart returns the local midnight of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the signed number of calendar days from a's day to
// b's day. Rounding absorbs the 23h/25h days around DST changes.
func DaysBetween(a, b time.Time) int {
	hours := DayStart(b).Sub(DayStart(a)).Hours()
	return int(math.Round(hours / 24))
}

// NextOccurrence returns the next due instant for a recurring task.
// Calendar arithmetic, so monthly recurrence lands on the same day-of-month.
func NextOccurrence(now time.Time, r RecurringType) time.Time {
	switch r {
	case RecurringDaily:
		return now.AddDate(0, 0, 1)
	case RecurringWeekly:
		return now.AddDate(0, 0, 7)
	case RecurringMonthly:
		return now.AddDate(0, 1, 0)
	default:
		return now.AddDate(0, 0, 1)
	}
}
