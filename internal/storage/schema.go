package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user_profile (
			id INTEGER PRIMARY KEY,
			level INTEGER DEFAULT 1,
			xp INTEGER DEFAULT 0,
			total_tasks_completed INTEGER DEFAULT 0,
			current_streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			last_active_date DATETIME DEFAULT CURRENT_TIMESTAMP,
			character_class TEXT DEFAULT 'WARRIOR',
			avatar_id INTEGER DEFAULT 1
		);`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			color TEXT NOT NULL,
			icon TEXT NOT NULL,
			task_count INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT DEFAULT '',
			deadline DATETIME,
			is_completed INTEGER DEFAULT 0,
			color TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT DEFAULT '',
			due_date DATETIME,
			priority TEXT NOT NULL,
			category_id INTEGER NOT NULL,
			project_id INTEGER,
			estimated_minutes INTEGER DEFAULT 30,
			xp_reward INTEGER DEFAULT 10,
			is_completed INTEGER DEFAULT 0,
			completed_date DATETIME,
			is_recurring INTEGER DEFAULT 0,
			recurring_type TEXT,
			created_date DATETIME DEFAULT CURRENT_TIMESTAMP,
			sketch_path TEXT,

			FOREIGN KEY(category_id) REFERENCES categories(id)
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT DEFAULT '',
			icon TEXT DEFAULT 'star',
			is_unlocked INTEGER DEFAULT 0,
			unlocked_date DATETIME,
			required_count INTEGER NOT NULL,
			current_count INTEGER DEFAULT 0,
			type TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS daily_quests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT DEFAULT '',
			xp_reward INTEGER NOT NULL,
			threshold INTEGER DEFAULT 0,
			date DATETIME NOT NULL,
			is_completed INTEGER DEFAULT 0,
			quest_type TEXT NOT NULL
		);`,
		// Written on every XP award; needed to revoke the exact amount on undo.
		`CREATE TABLE IF NOT EXISTS task_completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id INTEGER NOT NULL,
			completed_at DATETIME NOT NULL,
			xp_awarded INTEGER NOT NULL,
			FOREIGN KEY(task_id) REFERENCES tasks(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_is_completed ON tasks(is_completed);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_category_id ON tasks(category_id);`,
		`CREATE INDEX IF NOT EXISTS idx_daily_quests_date ON daily_quests(date);`,
		`CREATE INDEX IF NOT EXISTS idx_task_completions_task_id_completed_at ON task_completions(task_id, completed_at);`,
		// A starter category so `tq add` works on a fresh database.
		`INSERT INTO categories (id, name, color, icon)
			SELECT 1, 'General', '#808080', 'folder'
			WHERE NOT EXISTS (SELECT 1 FROM categories WHERE id = 1);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
