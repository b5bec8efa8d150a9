package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskquest/internal/storage"
)

func seededAchievements() []storage.Achievement {
	all := DefaultAchievements()
	for i := range all {
		all[i].ID = int64(i + 1)
	}
	return all
}

func applyChanges(all []storage.Achievement, changed []storage.Achievement) {
	byID := map[int64]storage.Achievement{}
	for _, c := range changed {
		byID[c.ID] = c
	}
	for i := range all {
		if c, ok := byID[all[i].ID]; ok {
			all[i] = c
		}
	}
}

func TestEvaluateAchievementsUnlocks(t *testing.T) {
	now := time.Now()
	all := seededAchievements()
	p := storage.Profile{Level: 5, TotalTasksCompleted: 10, CurrentStreak: 7}

	changed := EvaluateAchievements(all, &p, now)

	unlocked := map[string]bool{}
	for _, a := range changed {
		if a.IsUnlocked {
			unlocked[a.Title] = true
			require.NotNil(t, a.UnlockedDate)
			require.Equal(t, a.RequiredCount, a.CurrentCount)
		}
	}
	require.True(t, unlocked["First Steps"])
	require.True(t, unlocked["Task Master"])
	require.True(t, unlocked["On Fire"])
	require.True(t, unlocked["Rising Star"])
	require.False(t, unlocked["Legend"])
	require.False(t, unlocked["Unstoppable"])
	require.False(t, unlocked["Perfect Week"]) // no derivable progress, stays locked
}

func TestEvaluateAchievementsProgressOnly(t *testing.T) {
	now := time.Now()
	all := seededAchievements()
	p := storage.Profile{Level: 1, TotalTasksCompleted: 4, CurrentStreak: 2}

	changed := EvaluateAchievements(all, &p, now)
	for _, a := range changed {
		if a.Title == "Task Master" {
			require.False(t, a.IsUnlocked)
			require.Equal(t, 4, a.CurrentCount)
		}
	}
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	now := time.Now()
	all := seededAchievements()
	p := storage.Profile{Level: 5, TotalTasksCompleted: 10, CurrentStreak: 7}

	applyChanges(all, EvaluateAchievements(all, &p, now))

	// Same profile again: nothing left to change.
	require.Empty(t, EvaluateAchievements(all, &p, now))
}

func TestEvaluateAchievementsMonotonic(t *testing.T) {
	now := time.Now()
	all := seededAchievements()
	p := storage.Profile{Level: 1, TotalTasksCompleted: 1, CurrentStreak: 7}

	applyChanges(all, EvaluateAchievements(all, &p, now))

	// Streak collapses; the streak unlock must survive.
	p.CurrentStreak = 1
	applyChanges(all, EvaluateAchievements(all, &p, now))
	for _, a := range all {
		if a.Title == "On Fire" {
			require.True(t, a.IsUnlocked)
			require.Equal(t, a.RequiredCount, a.CurrentCount)
		}
	}
}
