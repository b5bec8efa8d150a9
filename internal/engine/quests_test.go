package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskquest/internal/storage"
)

func TestGenerateDailyQuests(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

	quests := GenerateDailyQuests(nil, now, DefaultQuestTemplates())
	require.Len(t, quests, 2)
	for _, q := range quests {
		require.Equal(t, DayStart(now), q.Date)
		require.False(t, q.IsCompleted)
	}
	require.Equal(t, "Quick Quest", quests[0].Title)
	require.Equal(t, 3, quests[0].Threshold)
	require.Equal(t, 50, quests[0].XPReward)
	require.Equal(t, "Perfect Day", quests[1].Title)
	require.Equal(t, 100, quests[1].XPReward)

	// Existing quests for the day suppress generation entirely.
	require.Nil(t, GenerateDailyQuests(quests, now, DefaultQuestTemplates()))
}

func TestStaleQuestIDs(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	day := func(daysAgo int) time.Time { return DayStart(now).AddDate(0, 0, -daysAgo) }

	all := []storage.DailyQuest{
		{ID: 1, Date: day(0)},
		{ID: 2, Date: day(QuestRetentionDays)},     // exactly at the cutoff, kept
		{ID: 3, Date: day(QuestRetentionDays + 1)}, // one past, pruned
		{ID: 4, Date: day(30)},
	}
	require.Equal(t, []int64{3, 4}, StaleQuestIDs(all, now, QuestRetentionDays))
}

func TestEvaluateQuestProgress(t *testing.T) {
	quick := storage.DailyQuest{ID: 1, Title: "Quick Quest", XPReward: 50, Threshold: 3, QuestType: string(QuestQuickQuest)}
	perfect := storage.DailyQuest{ID: 2, Title: "Perfect Day", XPReward: 100, QuestType: string(QuestPerfectDay)}

	t.Run("below threshold nothing fires", func(t *testing.T) {
		ids, xp := EvaluateQuestProgress([]storage.DailyQuest{quick, perfect}, QuestDayCounts{CompletedToday: 2})
		require.Empty(t, ids)
		require.Zero(t, xp)
	})

	t.Run("threshold met fires the count quest", func(t *testing.T) {
		ids, xp := EvaluateQuestProgress([]storage.DailyQuest{quick, perfect}, QuestDayCounts{CompletedToday: 3})
		require.Equal(t, []int64{1}, ids)
		require.Equal(t, 50, xp)
	})

	t.Run("perfect day needs scheduled tasks", func(t *testing.T) {
		// Nothing due today: an empty schedule is not a perfect day.
		ids, _ := EvaluateQuestProgress([]storage.DailyQuest{perfect}, QuestDayCounts{CompletedToday: 5})
		require.Empty(t, ids)

		ids, xp := EvaluateQuestProgress([]storage.DailyQuest{perfect}, QuestDayCounts{DueToday: 2, DueTodayDone: 2})
		require.Equal(t, []int64{2}, ids)
		require.Equal(t, 100, xp)
	})

	t.Run("completed quests never refire", func(t *testing.T) {
		done := quick
		done.IsCompleted = true
		ids, xp := EvaluateQuestProgress([]storage.DailyQuest{done}, QuestDayCounts{CompletedToday: 10})
		require.Empty(t, ids)
		require.Zero(t, xp)
	})
}
