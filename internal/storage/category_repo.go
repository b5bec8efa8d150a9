package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Insert(ctx context.Context, c Category) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (name, color, icon) VALUES (?, ?, ?)
	`, c.Name, c.Color, c.Icon)
	if err != nil {
		return 0, fmt.Errorf("category insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("category last insert id: %w", err)
	}
	return id, nil
}

func (r *CategoryRepo) Get(ctx context.Context, id int64) (*Category, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, color, icon, task_count FROM categories WHERE id = ?
	`, id)
	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.Color, &c.Icon, &c.TaskCount); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("category get: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) ListAll(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, color, icon, task_count FROM categories ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("category list: %w", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Icon, &c.TaskCount); err != nil {
			return nil, fmt.Errorf("category scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category rows: %w", err)
	}
	return out, nil
}

// AdjustTaskCount applies a delta to the denormalized counter. The counter
// never goes below zero.
func (r *CategoryRepo) AdjustTaskCount(ctx context.Context, id int64, delta int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE categories SET task_count = MAX(task_count + ?, 0) WHERE id = ?
	`, delta, id)
	if err != nil {
		return fmt.Errorf("category adjust task count: %w", err)
	}
	return nil
}
