package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskquest/internal/storage"
)

func completedTask(done time.Time, due *time.Time, xp int) storage.Task {
	return storage.Task{
		XPReward:      xp,
		IsCompleted:   true,
		CompletedDate: &done,
		DueDate:       due,
	}
}

func TestOnTimePercentage(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	due := now.Add(time.Hour)
	lateDue := now.Add(-48 * time.Hour)

	require.Equal(t, 0, OnTimePercentage(nil))

	tasks := []storage.Task{
		completedTask(now, &due, 10),     // before due: on time
		completedTask(now, &lateDue, 10), // way past due: late
		completedTask(now, nil, 10),      // undated: counts against the rate
	}
	require.Equal(t, 33, OnTimePercentage(tasks))
}

func TestComputeStatistics(t *testing.T) {
	now := time.Date(2026, 3, 11, 12, 0, 0, 0, time.Local) // Wednesday
	due := now.Add(time.Hour)

	completed := []storage.Task{
		completedTask(now.Add(-time.Hour), &due, 20),       // today
		completedTask(now.AddDate(0, 0, -2), &due, 30),     // Monday, this week
		completedTask(now.AddDate(0, 0, -8), nil, 10),      // last week, this month
	}
	active := []storage.Task{{}, {}, {}} // three open tasks
	p := storage.Profile{CurrentStreak: 15}

	stats := ComputeStatistics(active, completed, &p, now)

	require.Equal(t, 1, stats.CompletedToday)
	require.Equal(t, 2, stats.CompletedThisWeek)
	require.Equal(t, 3, stats.CompletedThisMonth)
	require.Equal(t, 66, stats.OnTimePercentage) // 2 of 3
	require.Equal(t, 20, stats.AverageXPPerTask) // (20+30+10)/3

	// completion 3/6 -> 25, on-time 66*0.3 -> 19, streak 15/30*20 -> 10
	require.Equal(t, 54, stats.Score)
}

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil, nil, &storage.Profile{}, time.Now())
	require.Zero(t, stats.Score)
	require.Zero(t, stats.CompletedToday)
	require.Zero(t, stats.AverageXPPerTask)
}

func TestLast7DaysHistogram(t *testing.T) {
	now := time.Date(2026, 3, 11, 12, 0, 0, 0, time.Local)
	completed := []storage.Task{
		completedTask(now.Add(-time.Hour), nil, 10),
		completedTask(now.Add(-2*time.Hour), nil, 10),
		completedTask(now.AddDate(0, 0, -6), nil, 10),
		completedTask(now.AddDate(0, 0, -7), nil, 10), // out of window
	}

	hist := Last7DaysHistogram(completed, now)
	require.Len(t, hist, 7)
	require.Equal(t, 1, hist[0].Count) // oldest in-window day
	require.Equal(t, 2, hist[6].Count) // today is the last bucket
	require.Equal(t, "Wed", hist[6].Label)
}
