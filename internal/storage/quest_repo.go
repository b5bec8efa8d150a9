package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type QuestRepo struct {
	db *sql.DB
}

func NewQuestRepo(db *sql.DB) *QuestRepo {
	return &QuestRepo{db: db}
}

// InsertBatch writes a generated quest set atomically, so a crash mid-insert
// cannot leave a partial day that would block regeneration.
func (r *QuestRepo) InsertBatch(ctx context.Context, quests []DailyQuest) error {
	if len(quests) == 0 {
		return nil
	}
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, q := range quests {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO daily_quests (title, description, xp_reward, threshold, date, quest_type)
				VALUES (?, ?, ?, ?, ?, ?)
			`, q.Title, q.Description, q.XPReward, q.Threshold, q.Date, q.QuestType); err != nil {
				return fmt.Errorf("quest insert: %w", err)
			}
		}
		return nil
	})
}

func (r *QuestRepo) ListForDate(ctx context.Context, dayStart time.Time) ([]DailyQuest, error) {
	return r.list(ctx, `
		SELECT id, title, description, xp_reward, threshold, date, is_completed, quest_type
		FROM daily_quests
		WHERE date = ?
		ORDER BY id ASC
	`, dayStart)
}

func (r *QuestRepo) ListAll(ctx context.Context) ([]DailyQuest, error) {
	return r.list(ctx, `
		SELECT id, title, description, xp_reward, threshold, date, is_completed, quest_type
		FROM daily_quests
		ORDER BY date ASC, id ASC
	`)
}

func (r *QuestRepo) list(ctx context.Context, query string, args ...any) ([]DailyQuest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []DailyQuest
	for rows.Next() {
		var (
			q           DailyQuest
			isCompleted int
		)
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.XPReward, &q.Threshold,
			&q.Date, &isCompleted, &q.QuestType); err != nil {
			return nil, fmt.Errorf("quest scan: %w", err)
		}
		q.IsCompleted = isCompleted != 0
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest rows: %w", err)
	}
	return out, nil
}

func (r *QuestRepo) Complete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE daily_quests SET is_completed = 1 WHERE id = ? AND is_completed = 0
	`, id)
	if err != nil {
		return fmt.Errorf("quest complete: %w", err)
	}
	return nil
}

func (r *QuestRepo) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM daily_quests WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return fmt.Errorf("quest delete: %w", err)
	}
	return nil
}
