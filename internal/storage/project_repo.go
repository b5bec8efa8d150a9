package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ProjectRepo struct {
	db *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) Insert(ctx context.Context, p Project) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (name, description, deadline, color) VALUES (?, ?, ?, ?)
	`, p.Name, p.Description, p.Deadline, p.Color)
	if err != nil {
		return 0, fmt.Errorf("project insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("project last insert id: %w", err)
	}
	return id, nil
}

func (r *ProjectRepo) Get(ctx context.Context, id int64) (*Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, deadline, is_completed, color FROM projects WHERE id = ?
	`, id)
	return scanProjectRow(row)
}

func (r *ProjectRepo) ListAll(ctx context.Context) ([]Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, deadline, is_completed, color FROM projects ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("project list: %w", err)
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("project rows: %w", err)
	}
	return out, nil
}

func (r *ProjectRepo) Update(ctx context.Context, p *Project) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, description = ?, deadline = ?, is_completed = ?, color = ?
		WHERE id = ?
	`, p.Name, p.Description, p.Deadline, boolToInt(p.IsCompleted), p.Color, p.ID)
	if err != nil {
		return fmt.Errorf("project update: %w", err)
	}
	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("project delete: %w", err)
	}
	return nil
}

func scanProjectRow(row scanner) (*Project, error) {
	var (
		p           Project
		deadline    sql.NullTime
		isCompleted int
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &deadline, &isCompleted, &p.Color); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("project scan: %w", err)
	}
	if deadline.Valid {
		v := deadline.Time
		p.Deadline = &v
	}
	p.IsCompleted = isCompleted != 0
	return &p, nil
}
