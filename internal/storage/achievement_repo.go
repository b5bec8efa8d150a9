package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type AchievementRepo struct {
	db *sql.DB
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

func (r *AchievementRepo) Insert(ctx context.Context, a Achievement) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO achievements (title, description, icon, required_count, type)
		VALUES (?, ?, ?, ?, ?)
	`, a.Title, a.Description, a.Icon, a.RequiredCount, a.Type)
	if err != nil {
		return 0, fmt.Errorf("achievement insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("achievement last insert id: %w", err)
	}
	return id, nil
}

func (r *AchievementRepo) ListAll(ctx context.Context) ([]Achievement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, icon, is_unlocked, unlocked_date, required_count, current_count, type
		FROM achievements
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		var (
			a            Achievement
			isUnlocked   int
			unlockedDate sql.NullTime
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Icon, &isUnlocked,
			&unlockedDate, &a.RequiredCount, &a.CurrentCount, &a.Type); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		a.IsUnlocked = isUnlocked != 0
		if unlockedDate.Valid {
			v := unlockedDate.Time
			a.UnlockedDate = &v
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

// Unlock is terminal: unlocked_date is written once and never reverted.
func (r *AchievementRepo) Unlock(ctx context.Context, id int64, date time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE achievements
		SET is_unlocked = 1, unlocked_date = ?, current_count = required_count
		WHERE id = ? AND is_unlocked = 0
	`, date, id)
	if err != nil {
		return fmt.Errorf("achievement unlock: %w", err)
	}
	return nil
}

func (r *AchievementRepo) UpdateProgress(ctx context.Context, id int64, currentCount int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE achievements SET current_count = ? WHERE id = ? AND is_unlocked = 0
	`, currentCount, id)
	if err != nil {
		return fmt.Errorf("achievement update progress: %w", err)
	}
	return nil
}
