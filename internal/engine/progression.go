package engine

import (
	"time"

	"taskquest/internal/storage"
)

// RequiredXP returns the XP needed to clear the given level.
func RequiredXP(level int) int {
	if level < 1 {
		level = 1
	}
	return 100 + (level-1)*50
}

// AwardXP adds XP to the profile and resolves level-ups. Large grants can
// span several levels, so this loops rather than checking once.
// Postcondition: 0 <= xp < RequiredXP(level).
func AwardXP(p *storage.Profile, amount int) {
	if amount <= 0 {
		return
	}
	p.XP += amount
	for p.XP >= RequiredXP(p.Level) {
		p.XP -= RequiredXP(p.Level)
		p.Level++
	}
}

// DeductXP is the inverse of AwardXP, used when a completion is undone.
// Levels unwind as needed; the floor is level 1 with 0 XP.
func DeductXP(p *storage.Profile, amount int) {
	if amount <= 0 {
		return
	}
	p.XP -= amount
	for p.XP < 0 {
		if p.Level <= 1 {
			p.XP = 0
			return
		}
		p.Level--
		p.XP += RequiredXP(p.Level)
	}
}

// UpdateStreakOnActivity recomputes streak continuity across day boundaries.
// Same-day re-invocation is a no-op, so calling once per session is safe.
// Reports whether the profile changed.
func UpdateStreakOnActivity(p *storage.Profile, now time.Time) bool {
	daysDiff := DaysBetween(p.LastActiveDate, now)
	switch {
	case daysDiff == 0:
		return false
	case daysDiff == 1:
		p.CurrentStreak++
	default:
		// Gap (or clock moved backwards): streak restarts.
		p.CurrentStreak = 1
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastActiveDate = now
	return true
}
