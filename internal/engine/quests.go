package engine

import (
	"time"

	"taskquest/internal/storage"
)

// QuestRetentionDays is how long past quests are kept before pruning.
const QuestRetentionDays = 7

// QuestTemplate configures one generated quest. Rewards and thresholds are
// configuration, not engine logic.
type QuestTemplate struct {
	Type        QuestType
	Title       string
	Description string
	XPReward    int
	Threshold   int
}

// DefaultQuestTemplates is the built-in daily generation set.
func DefaultQuestTemplates() []QuestTemplate {
	return []QuestTemplate{
		{
			Type:        QuestQuickQuest,
			Title:       "Quick Quest",
			Description: "Complete 3 tasks today",
			XPReward:    50,
			Threshold:   3,
		},
		{
			Type:        QuestPerfectDay,
			Title:       "Perfect Day",
			Description: "Complete all scheduled tasks for today",
			XPReward:    100,
		},
	}
}

// GenerateDailyQuests instantiates the template set for a day. If any quests
// already exist for that day it is a no-op and returns nil.
func GenerateDailyQuests(existing []storage.DailyQuest, today time.Time, templates []QuestTemplate) []storage.DailyQuest {
	if len(existing) > 0 {
		return nil
	}
	day := DayStart(today)
	out := make([]storage.DailyQuest, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, storage.DailyQuest{
			Title:       tpl.Title,
			Description: tpl.Description,
			XPReward:    tpl.XPReward,
			Threshold:   tpl.Threshold,
			Date:        day,
			QuestType:   string(tpl.Type),
		})
	}
	return out
}

// StaleQuestIDs selects quests dated strictly before the retention window,
// i.e. older than retentionDays before now's day bucket.
func StaleQuestIDs(all []storage.DailyQuest, now time.Time, retentionDays int) []int64 {
	cutoff := DayStart(now).AddDate(0, 0, -retentionDays)
	var ids []int64
	for _, q := range all {
		if q.Date.Before(cutoff) {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// QuestDayCounts is the day's task tally a quest evaluation runs against.
type QuestDayCounts struct {
	// CompletedToday counts completions recorded today, including
	// recurring-task repetitions.
	CompletedToday int
	// DueToday / DueTodayDone count tasks scheduled for today and how many
	// of those are done. PERFECT_DAY keys off these.
	DueToday     int
	DueTodayDone int
}

// EvaluateQuestProgress marks quests whose condition is now met. Quests
// already completed never re-fire, so XP is awarded at most once per quest
// across repeated evaluations.
func EvaluateQuestProgress(quests []storage.DailyQuest, counts QuestDayCounts) (completedIDs []int64, xpToAward int) {
	for _, q := range quests {
		if q.IsCompleted {
			continue
		}
		met := false
		switch QuestType(q.QuestType) {
		case QuestPerfectDay:
			met = counts.DueToday > 0 && counts.DueTodayDone >= counts.DueToday
		case QuestQuickQuest, QuestDailyChallenge, QuestBossBattle, QuestSpeedRun:
			met = q.Threshold > 0 && counts.CompletedToday >= q.Threshold
		}
		if met {
			completedIDs = append(completedIDs, q.ID)
			xpToAward += q.XPReward
		}
	}
	return completedIDs, xpToAward
}
