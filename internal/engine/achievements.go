package engine

import (
	"time"

	"taskquest/internal/storage"
)

// DefaultAchievements is the seed set inserted into an empty database.
func DefaultAchievements() []storage.Achievement {
	return []storage.Achievement{
		{Title: "First Steps", Description: "Complete your first task", Icon: "star", RequiredCount: 1, Type: string(AchievementTasksCompleted)},
		{Title: "Task Master", Description: "Complete 10 tasks", Icon: "star", RequiredCount: 10, Type: string(AchievementTasksCompleted)},
		{Title: "Productivity King", Description: "Complete 50 tasks", Icon: "star", RequiredCount: 50, Type: string(AchievementTasksCompleted)},
		{Title: "Legend", Description: "Complete 100 tasks", Icon: "star", RequiredCount: 100, Type: string(AchievementTasksCompleted)},
		{Title: "On Fire", Description: "Maintain a 7-day streak", Icon: "fire", RequiredCount: 7, Type: string(AchievementStreak)},
		{Title: "Unstoppable", Description: "Maintain a 30-day streak", Icon: "fire", RequiredCount: 30, Type: string(AchievementStreak)},
		{Title: "Dedication", Description: "Maintain a 100-day streak", Icon: "fire", RequiredCount: 100, Type: string(AchievementStreak)},
		{Title: "Rising Star", Description: "Reach Level 5", Icon: "level", RequiredCount: 5, Type: string(AchievementLevel)},
		{Title: "Elite", Description: "Reach Level 10", Icon: "level", RequiredCount: 10, Type: string(AchievementLevel)},
		{Title: "Master", Description: "Reach Level 20", Icon: "level", RequiredCount: 20, Type: string(AchievementLevel)},
		{Title: "Perfect Week", Description: "Complete all tasks for 7 consecutive days", Icon: "perfect", RequiredCount: 7, Type: string(AchievementPerfectWeek)},
	}
}

// achievementProgress derives progress from the profile. Types the profile
// cannot answer for (CATEGORY, PERFECT_WEEK) report no progress and stay
// locked.
func achievementProgress(t AchievementType, p *storage.Profile) (int, bool) {
	switch t {
	case AchievementTasksCompleted:
		return p.TotalTasksCompleted, true
	case AchievementStreak:
		return p.CurrentStreak, true
	case AchievementLevel:
		return p.Level, true
	default:
		return 0, false
	}
}

// EvaluateAchievements re-checks every locked achievement against the
// profile and returns the ones that changed: either newly unlocked
// (IsUnlocked set, UnlockedDate stamped) or with an updated progress
// counter. Unlocked achievements are never touched, so repeated evaluation
// with an unchanged profile returns nothing.
func EvaluateAchievements(achievements []storage.Achievement, p *storage.Profile, now time.Time) []storage.Achievement {
	var changed []storage.Achievement
	for _, a := range achievements {
		if a.IsUnlocked {
			continue
		}
		progress, ok := achievementProgress(AchievementType(a.Type), p)
		if !ok {
			continue
		}
		if progress >= a.RequiredCount {
			a.IsUnlocked = true
			d := now
			a.UnlockedDate = &d
			a.CurrentCount = a.RequiredCount
			changed = append(changed, a)
		} else if progress != a.CurrentCount {
			a.CurrentCount = progress
			changed = append(changed, a)
		}
	}
	return changed
}
