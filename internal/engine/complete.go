package engine

import (
	"context"
	"time"

	"taskquest/internal/storage"
)

type CompleteResult struct {
	TaskID           int64
	AlreadyCompleted bool
	XPAwarded        int
	LevelBefore      int
	LevelAfter       int
	LevelUp          bool
	Recurring        bool
	NextDue          *time.Time
	QuestsCompleted  []string
	QuestXP          int
	Unlocked         []string
}

type RestoreResult struct {
	TaskID      int64
	XPDeducted  int
	LevelBefore int
	LevelAfter  int
	LevelDown   bool
}

// CompleteTask marks a task done and runs the full reward chain: XP award
// (computed against the pre-change streak), level resolution, quest
// progress, achievement checks. Completing an already-completed task is a
// no-op returning zero XP. Recurring tasks are rescheduled instead of
// closed.
func (s *Service) CompleteTask(ctx context.Context, id int64) (*CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := p.Level

	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NotFoundError{Kind: "task", ID: id}
	}
	if task.IsCompleted {
		return &CompleteResult{
			TaskID:           id,
			AlreadyCompleted: true,
			LevelBefore:      levelBefore,
			LevelAfter:       levelBefore,
		}, nil
	}

	now := time.Now()
	xp := ComputeReward(task, p, now)

	res := &CompleteResult{TaskID: id, XPAwarded: xp, LevelBefore: levelBefore}

	if task.IsRecurring && task.RecurringType != nil {
		rt, ok := ParseRecurringType(*task.RecurringType)
		if !ok {
			rt = RecurringDaily
		}
		base := now
		if task.DueDate != nil {
			base = *task.DueDate
		}
		next := NextOccurrence(base, rt)
		if err := s.tasks.AdvanceRecurring(ctx, id, next); err != nil {
			return nil, err
		}
		res.Recurring = true
		res.NextDue = &next
	} else {
		if err := s.tasks.MarkCompleted(ctx, id, now); err != nil {
			return nil, err
		}
	}

	if _, err := s.completions.Insert(ctx, id, now, xp); err != nil {
		return nil, err
	}

	AwardXP(p, xp)
	p.TotalTasksCompleted++

	questNames, questXP, err := s.checkQuestProgress(ctx, p, now)
	if err != nil {
		return nil, err
	}
	res.QuestsCompleted = questNames
	res.QuestXP = questXP

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}

	unlocked, err := s.evaluateAchievements(ctx, p, now)
	if err != nil {
		return nil, err
	}
	res.Unlocked = unlocked

	res.LevelAfter = p.Level
	res.LevelUp = p.Level > levelBefore
	return res, nil
}

// checkQuestProgress evaluates today's quests against the day's tallies and
// applies any quest rewards to the profile (caller persists the profile).
func (s *Service) checkQuestProgress(ctx context.Context, p *storage.Profile, now time.Time) ([]string, int, error) {
	today := DayStart(now)
	quests, err := s.quests.ListForDate(ctx, today)
	if err != nil {
		return nil, 0, err
	}
	if len(quests) == 0 {
		return nil, 0, nil
	}

	tomorrow := today.AddDate(0, 0, 1)
	completedToday, err := s.completions.CountSince(ctx, today)
	if err != nil {
		return nil, 0, err
	}
	dueToday, err := s.tasks.CountDueBetween(ctx, today, tomorrow)
	if err != nil {
		return nil, 0, err
	}
	dueTodayDone, err := s.tasks.CountDueBetweenCompleted(ctx, today, tomorrow)
	if err != nil {
		return nil, 0, err
	}

	ids, xp := EvaluateQuestProgress(quests, QuestDayCounts{
		CompletedToday: completedToday,
		DueToday:       dueToday,
		DueTodayDone:   dueTodayDone,
	})
	if len(ids) == 0 {
		return nil, 0, nil
	}

	var names []string
	byID := map[int64]storage.DailyQuest{}
	for _, q := range quests {
		byID[q.ID] = q
	}
	for _, qid := range ids {
		if err := s.quests.Complete(ctx, qid); err != nil {
			return nil, 0, err
		}
		names = append(names, byID[qid].Title)
	}
	AwardXP(p, xp)
	return names, xp, nil
}

// RestoreTask undoes a completion symmetrically: the audited XP award is
// deducted (unwinding levels if needed), the completion counter decremented,
// and the task reopened.
func (s *Service) RestoreTask(ctx context.Context, id int64) (*RestoreResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := p.Level

	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NotFoundError{Kind: "task", ID: id}
	}

	last, err := s.completions.Last(ctx, id)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, ValidationError{Field: "task", Reason: "has no completion to undo"}
	}

	if err := s.completions.Delete(ctx, last.ID); err != nil {
		return nil, err
	}
	if task.IsCompleted {
		if err := s.tasks.MarkRestored(ctx, id); err != nil {
			return nil, err
		}
	}

	DeductXP(p, last.XPAwarded)
	if p.TotalTasksCompleted > 0 {
		p.TotalTasksCompleted--
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}

	return &RestoreResult{
		TaskID:      id,
		XPDeducted:  last.XPAwarded,
		LevelBefore: levelBefore,
		LevelAfter:  p.Level,
		LevelDown:   p.Level < levelBefore,
	}, nil
}
