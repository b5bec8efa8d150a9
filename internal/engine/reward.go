package engine

import (
	"math"
	"time"

	"taskquest/internal/storage"
)

const (
	// OnTimeGrace is how long past the due date a completion still counts
	// as on time.
	OnTimeGrace = 24 * time.Hour

	// StreakBonusRate is the per-day streak bonus (5% per day).
	StreakBonusRate = 0.05

	// StreakBonusCap caps the streak bonus at 50% (a 10-day streak).
	StreakBonusCap = 0.5
)

// PriorityMultiplier returns the reward multiplier for a priority.
func PriorityMultiplier(p Priority) float64 {
	switch p {
	case PriorityLow:
		return 1.0
	case PriorityMedium:
		return 1.5
	case PriorityHigh:
		return 2.0
	case PriorityUrgent:
		return 3.0
	default:
		return 1.0
	}
}

// StreakMultiplier returns 1.0 + 5% per streak day, capped at +50%.
func StreakMultiplier(currentStreak int) float64 {
	if currentStreak < 0 {
		currentStreak = 0
	}
	bonus := float64(currentStreak) * StreakBonusRate
	if bonus > StreakBonusCap {
		bonus = StreakBonusCap
	}
	return 1.0 + bonus
}

// timelinessMultiplier classifies the completion instant against the due
// date: early (strictly before) 1.2, on time (within the grace window) 1.0,
// late 0.9. Tasks without a due date are always 1.0. A task not yet marked
// completed is treated as completed at now.
func timelinessMultiplier(task *storage.Task, now time.Time) float64 {
	if task.DueDate == nil {
		return 1.0
	}
	completed := now
	if task.CompletedDate != nil {
		completed = *task.CompletedDate
	}
	switch {
	case completed.Before(*task.DueDate):
		return 1.2
	case !completed.After(task.DueDate.Add(OnTimeGrace)):
		return 1.0
	default:
		return 0.9
	}
}

// ComputeReward computes the XP earned for completing a task. Side-effect
// free; always non-negative given a non-negative task reward.
func ComputeReward(task *storage.Task, profile *storage.Profile, now time.Time) int {
	xp := float64(task.XPReward) *
		PriorityMultiplier(parseStoredPriority(task.Priority)) *
		timelinessMultiplier(task, now) *
		StreakMultiplier(profile.CurrentStreak)
	if xp < 0 {
		return 0
	}
	return int(math.Round(xp))
}

// SuggestedXPReward is the default base reward for a new task: a priority
// base plus 5 XP per 30 estimated minutes.
func SuggestedXPReward(p Priority, estimatedMinutes int) int {
	var base int
	switch p {
	case PriorityLow:
		base = 10
	case PriorityMedium:
		base = 15
	case PriorityHigh:
		base = 25
	case PriorityUrgent:
		base = 40
	default:
		base = 15
	}
	if estimatedMinutes < 0 {
		estimatedMinutes = 0
	}
	return base + (estimatedMinutes/30)*5
}
