package engine

import (
	"context"
	"time"
)

// ActivityResult summarizes what a session-start check did.
type ActivityResult struct {
	StreakChanged bool
	CurrentStreak int
	LongestStreak int
	NewQuests     int
	PrunedQuests  int
	Unlocked      []string
}

// ActivityCheck is the once-per-session entry point: it initializes the
// profile on first run, rolls the streak across day boundaries, generates
// the day's quests if absent, prunes quests past retention, and re-checks
// achievements. Safe to call repeatedly; everything it does is idempotent
// within a day.
func (s *Service) ActivityCheck(ctx context.Context) (*ActivityResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res := &ActivityResult{}

	if UpdateStreakOnActivity(p, now) {
		res.StreakChanged = true
		if err := s.profiles.Update(ctx, p); err != nil {
			return nil, err
		}
	}
	res.CurrentStreak = p.CurrentStreak
	res.LongestStreak = p.LongestStreak

	today := DayStart(now)
	existing, err := s.quests.ListForDate(ctx, today)
	if err != nil {
		return nil, err
	}
	newQuests := GenerateDailyQuests(existing, today, s.templates)
	if len(newQuests) > 0 {
		if err := s.quests.InsertBatch(ctx, newQuests); err != nil {
			return nil, err
		}
		res.NewQuests = len(newQuests)
	}

	all, err := s.quests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stale := StaleQuestIDs(all, now, QuestRetentionDays)
	if len(stale) > 0 {
		if err := s.quests.DeleteByIDs(ctx, stale); err != nil {
			return nil, err
		}
		res.PrunedQuests = len(stale)
	}

	unlocked, err := s.evaluateAchievements(ctx, p, now)
	if err != nil {
		return nil, err
	}
	res.Unlocked = unlocked

	return res, nil
}

// TodayQuests returns the current day's quest set, generating it first if
// needed.
func (s *Service) TodayQuests(ctx context.Context) ([]DailyQuestView, error) {
	if _, err := s.ActivityCheck(ctx); err != nil {
		return nil, err
	}
	quests, err := s.quests.ListForDate(ctx, DayStart(time.Now()))
	if err != nil {
		return nil, err
	}
	out := make([]DailyQuestView, 0, len(quests))
	for _, q := range quests {
		out = append(out, DailyQuestView{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			XPReward:    q.XPReward,
			IsCompleted: q.IsCompleted,
			QuestType:   QuestType(q.QuestType),
		})
	}
	return out, nil
}

// DailyQuestView is the read model handed to presentation code.
type DailyQuestView struct {
	ID          int64
	Title       string
	Description string
	XPReward    int
	IsCompleted bool
	QuestType   QuestType
}
