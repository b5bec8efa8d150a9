package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) (*ProfileRepo, *QuestRepo, *CompletionRepo, func()) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cleanup := func() {
		_ = db.Close()
	}
	return NewProfileRepo(db), NewQuestRepo(db), NewCompletionRepo(db), cleanup
}

func TestProfileSingleton(t *testing.T) {
	profiles, _, _, cleanup := openTestDB(t)
	defer cleanup()
	ctx := context.Background()

	p, err := profiles.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatalf("expected no profile before first use")
	}

	p, err = profiles.GetOrCreate(ctx)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if p.ID != ProfileID || p.Level != 1 || p.XP != 0 {
		t.Fatalf("fresh profile: %+v", p)
	}
	if p.CharacterClass != "WARRIOR" {
		t.Fatalf("default class=%q, want WARRIOR", p.CharacterClass)
	}

	again, err := profiles.GetOrCreate(ctx)
	if err != nil {
		t.Fatalf("second get or create: %v", err)
	}
	if again.ID != p.ID {
		t.Fatalf("profile is not a singleton")
	}
}

func TestQuestBatchCompleteAndPrune(t *testing.T) {
	_, quests, _, cleanup := openTestDB(t)
	defer cleanup()
	ctx := context.Background()

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	old := today.AddDate(0, 0, -10)
	batch := []DailyQuest{
		{Title: "Quick Quest", XPReward: 50, Threshold: 3, Date: today, QuestType: "QUICK_QUEST"},
		{Title: "Perfect Day", XPReward: 100, Date: today, QuestType: "PERFECT_DAY"},
		{Title: "Old Quest", XPReward: 50, Threshold: 3, Date: old, QuestType: "QUICK_QUEST"},
	}
	if err := quests.InsertBatch(ctx, batch); err != nil {
		t.Fatalf("insert batch: %v", err)
	}

	todays, err := quests.ListForDate(ctx, today)
	if err != nil {
		t.Fatalf("list for date: %v", err)
	}
	if len(todays) != 2 {
		t.Fatalf("today's quests=%d, want 2", len(todays))
	}

	if err := quests.Complete(ctx, todays[0].ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	// Completing again is a guarded no-op, not an error.
	if err := quests.Complete(ctx, todays[0].ID); err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	todays, _ = quests.ListForDate(ctx, today)
	done := 0
	for _, q := range todays {
		if q.IsCompleted {
			done++
		}
	}
	if done != 1 {
		t.Fatalf("completed quests=%d, want 1", done)
	}

	all, err := quests.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	var stale []int64
	for _, q := range all {
		if q.Date.Before(today.AddDate(0, 0, -7)) {
			stale = append(stale, q.ID)
		}
	}
	if err := quests.DeleteByIDs(ctx, stale); err != nil {
		t.Fatalf("delete by ids: %v", err)
	}
	all, _ = quests.ListAll(ctx)
	if len(all) != 2 {
		t.Fatalf("quests after prune=%d, want 2", len(all))
	}
}

func TestCompletionAuditOrdering(t *testing.T) {
	_, _, completions, cleanup := openTestDB(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	if _, err := completions.Insert(ctx, 7, base, 20); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	if _, err := completions.Insert(ctx, 7, base.Add(time.Hour), 35); err != nil {
		t.Fatalf("insert second: %v", err)
	}

	last, err := completions.Last(ctx, 7)
	if err != nil {
		t.Fatalf("last: %v", err)
	}
	if last == nil || last.XPAwarded != 35 {
		t.Fatalf("last completion=%+v, want the 35 XP row", last)
	}

	if err := completions.Delete(ctx, last.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	last, _ = completions.Last(ctx, 7)
	if last == nil || last.XPAwarded != 20 {
		t.Fatalf("after delete last=%+v, want the 20 XP row", last)
	}

	n, err := completions.CountSince(ctx, base.Add(-time.Minute))
	if err != nil {
		t.Fatalf("count since: %v", err)
	}
	if n != 1 {
		t.Fatalf("count since=%d, want 1", n)
	}
}
