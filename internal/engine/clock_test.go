package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 3, 10, 23, 50, 0, 0, time.Local)

	require.Equal(t, 0, DaysBetween(base, base.Add(5*time.Minute)))
	// 20 minutes apart on the clock, but across midnight.
	require.Equal(t, 1, DaysBetween(base, base.Add(20*time.Minute)))
	require.Equal(t, 4, DaysBetween(base, base.AddDate(0, 0, 4)))
	require.Equal(t, -1, DaysBetween(base, base.AddDate(0, 0, -1)))
}

func TestWeekStart(t *testing.T) {
	// 2026-03-11 is a Wednesday; its week starts Monday the 9th.
	wed := time.Date(2026, 3, 11, 15, 30, 0, 0, time.Local)
	ws := WeekStart(wed)
	require.Equal(t, time.Monday, ws.Weekday())
	require.Equal(t, 9, ws.Day())
	require.Equal(t, 0, ws.Hour())

	// A Monday is its own week start.
	mon := time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)
	require.Equal(t, DayStart(mon), WeekStart(mon))

	// Sunday belongs to the preceding Monday's week.
	sun := time.Date(2026, 3, 15, 8, 0, 0, 0, time.Local)
	require.Equal(t, 9, WeekStart(sun).Day())
}

func TestNextOccurrence(t *testing.T) {
	due := time.Date(2026, 3, 15, 18, 0, 0, 0, time.Local)

	require.Equal(t, due.AddDate(0, 0, 1), NextOccurrence(due, RecurringDaily))
	require.Equal(t, due.AddDate(0, 0, 7), NextOccurrence(due, RecurringWeekly))

	next := NextOccurrence(due, RecurringMonthly)
	require.Equal(t, time.April, next.Month())
	require.Equal(t, 15, next.Day())
	require.Equal(t, 18, next.Hour())
}
