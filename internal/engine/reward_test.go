package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskquest/internal/storage"
)

func TestPriorityMultiplier(t *testing.T) {
	require.Equal(t, 1.0, PriorityMultiplier(PriorityLow))
	require.Equal(t, 1.5, PriorityMultiplier(PriorityMedium))
	require.Equal(t, 2.0, PriorityMultiplier(PriorityHigh))
	require.Equal(t, 3.0, PriorityMultiplier(PriorityUrgent))
	require.Equal(t, 1.0, PriorityMultiplier(Priority("BOGUS")))
}

func TestStreakMultiplier(t *testing.T) {
	tests := []struct {
		streak int
		want   float64
	}{
		{0, 1.0},
		{1, 1.05},
		{4, 1.2},
		{10, 1.5},
		{25, 1.5}, // capped
		{-3, 1.0}, // never penalizes
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, StreakMultiplier(tt.streak), 1e-9, "streak=%d", tt.streak)
	}
}

func TestComputeReward(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	future := now.Add(2 * time.Hour)
	pastWithinGrace := now.Add(-20 * time.Hour)
	pastBeyondGrace := now.Add(-25 * time.Hour)

	tests := []struct {
		name    string
		task    storage.Task
		profile storage.Profile
		want    int
	}{
		{
			name:    "base case, no due date, no streak",
			task:    storage.Task{XPReward: 20, Priority: "LOW"},
			profile: storage.Profile{},
			want:    20,
		},
		{
			name:    "medium priority completed early",
			task:    storage.Task{XPReward: 20, Priority: "MEDIUM", DueDate: &future},
			profile: storage.Profile{},
			want:    36, // 20 * 1.5 * 1.2
		},
		{
			name:    "on time within the 24h grace window",
			task:    storage.Task{XPReward: 30, Priority: "LOW", DueDate: &pastWithinGrace},
			profile: storage.Profile{},
			want:    30, // 30 * 1.0 * 1.0
		},
		{
			name:    "late past the grace window",
			task:    storage.Task{XPReward: 20, Priority: "HIGH", DueDate: &pastBeyondGrace},
			profile: storage.Profile{CurrentStreak: 10},
			want:    54, // 20 * 2.0 * 0.9 * 1.5
		},
		{
			name:    "urgent early with a 4-day streak",
			task:    storage.Task{XPReward: 10, Priority: "URGENT", DueDate: &future},
			profile: storage.Profile{CurrentStreak: 4},
			want:    43, // round(10 * 3.0 * 1.2 * 1.2) = round(43.2)
		},
		{
			name:    "zero base reward stays zero",
			task:    storage.Task{XPReward: 0, Priority: "URGENT"},
			profile: storage.Profile{CurrentStreak: 10},
			want:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeReward(&tt.task, &tt.profile, now)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestComputeRewardUsesRecordedCompletionInstant(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	done := due.Add(-time.Hour)
	// Evaluated long after the fact, an early completion is still early.
	now := due.AddDate(0, 0, 5)

	task := storage.Task{XPReward: 20, Priority: "LOW", DueDate: &due, CompletedDate: &done}
	require.Equal(t, 24, ComputeReward(&task, &storage.Profile{}, now)) // 20 * 1.2
}

func TestSuggestedXPReward(t *testing.T) {
	tests := []struct {
		priority Priority
		minutes  int
		want     int
	}{
		{PriorityLow, 0, 10},
		{PriorityMedium, 30, 20},
		{PriorityHigh, 45, 30},  // 25 + one full half-hour
		{PriorityUrgent, 90, 55}, // 40 + 15
		{PriorityMedium, -10, 15},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SuggestedXPReward(tt.priority, tt.minutes), "%s/%dmin", tt.priority, tt.minutes)
	}
}
