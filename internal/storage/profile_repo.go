package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ProfileID is the fixed key of the singleton profile row. The "exactly one"
// constraint lives here, not in the engine.
const ProfileID int64 = 1

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, level, xp, total_tasks_completed, current_streak, longest_streak,
			last_active_date, character_class, avatar_id
		FROM user_profile
		WHERE id = ?
	`, ProfileID)

	var p Profile
	if err := row.Scan(
		&p.ID, &p.Level, &p.XP, &p.TotalTasksCompleted, &p.CurrentStreak, &p.LongestStreak,
		&p.LastActiveDate, &p.CharacterClass, &p.AvatarID,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	return &p, nil
}

// GetOrCreate initializes the profile row with defaults on first use.
func (r *ProfileRepo) GetOrCreate(ctx context.Context) (*Profile, error) {
	p, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profile (id, last_active_date) VALUES (?, ?)
	`, ProfileID, time.Now()); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx)
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE user_profile
		SET level = ?, xp = ?, total_tasks_completed = ?, current_streak = ?,
			longest_streak = ?, last_active_date = ?, character_class = ?, avatar_id = ?
		WHERE id = ?
	`, p.Level, p.XP, p.TotalTasksCompleted, p.CurrentStreak,
		p.LongestStreak, p.LastActiveDate, p.CharacterClass, p.AvatarID, p.ID)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}
