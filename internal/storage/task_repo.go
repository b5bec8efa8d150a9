package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	Title            string
	Description      string
	DueDate          *time.Time
	Priority         string
	CategoryID       int64
	ProjectID        *int64
	EstimatedMinutes int
	XPReward         int
	IsRecurring      bool
	RecurringType    *string
}

const taskColumns = `id, title, description, due_date, priority, category_id, project_id,
	estimated_minutes, xp_reward, is_completed, completed_date, is_recurring, recurring_type,
	created_date, sketch_path`

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (
			title, description, due_date, priority, category_id, project_id,
			estimated_minutes, xp_reward, is_recurring, recurring_type
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Title, in.Description, in.DueDate, in.Priority, in.CategoryID, in.ProjectID,
		in.EstimatedMinutes, in.XPReward, boolToInt(in.IsRecurring), in.RecurringType)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTaskRow(row)
}

func (r *TaskRepo) ListActive(ctx context.Context) ([]Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE is_completed = 0 ORDER BY id ASC`)
}

func (r *TaskRepo) ListCompleted(ctx context.Context) ([]Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE is_completed = 1 ORDER BY completed_date DESC`)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id ASC`)
}

func (r *TaskRepo) list(ctx context.Context, query string, args ...any) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) Update(ctx context.Context, t *Task) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, due_date = ?, priority = ?, category_id = ?,
			project_id = ?, estimated_minutes = ?, xp_reward = ?, is_recurring = ?,
			recurring_type = ?, sketch_path = ?
		WHERE id = ?
	`, t.Title, t.Description, t.DueDate, t.Priority, t.CategoryID,
		t.ProjectID, t.EstimatedMinutes, t.XPReward, boolToInt(t.IsRecurring),
		t.RecurringType, t.SketchPath, t.ID)
	if err != nil {
		return fmt.Errorf("task update: %w", err)
	}
	return nil
}

func (r *TaskRepo) MarkCompleted(ctx context.Context, id int64, completedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET is_completed = 1, completed_date = ? WHERE id = ?
	`, completedAt, id)
	if err != nil {
		return fmt.Errorf("task mark completed: %w", err)
	}
	return nil
}

func (r *TaskRepo) MarkRestored(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET is_completed = 0, completed_date = NULL WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("task mark restored: %w", err)
	}
	return nil
}

// AdvanceRecurring reschedules a recurring task after a completion: the task
// stays active, only the due date moves forward.
func (r *TaskRepo) AdvanceRecurring(ctx context.Context, id int64, nextDue time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET due_date = ? WHERE id = ?`, nextDue, id)
	if err != nil {
		return fmt.Errorf("task advance recurring: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

func (r *TaskRepo) CountActive(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tasks WHERE is_completed = 0`)
}

// CountDueBetween counts tasks scheduled in [start, end), completed or not.
func (r *TaskRepo) CountDueBetween(ctx context.Context, start, end time.Time) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM tasks WHERE due_date IS NOT NULL AND due_date >= ? AND due_date < ?
	`, start, end)
}

func (r *TaskRepo) CountDueBetweenCompleted(ctx context.Context, start, end time.Time) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE due_date IS NOT NULL AND due_date >= ? AND due_date < ? AND is_completed = 1
	`, start, end)
}

func (r *TaskRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	row := r.db.QueryRowContext(ctx, query, args...)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("task count: %w", err)
	}
	return n, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		t             Task
		dueDate       sql.NullTime
		projectID     sql.NullInt64
		isCompleted   int
		completedDate sql.NullTime
		isRecurring   int
		recurringType sql.NullString
		sketchPath    sql.NullString
	)

	if err := row.Scan(
		&t.ID, &t.Title, &t.Description, &dueDate, &t.Priority, &t.CategoryID, &projectID,
		&t.EstimatedMinutes, &t.XPReward, &isCompleted, &completedDate, &isRecurring, &recurringType,
		&t.CreatedDate, &sketchPath,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}

	if dueDate.Valid {
		v := dueDate.Time
		t.DueDate = &v
	}
	if projectID.Valid {
		v := projectID.Int64
		t.ProjectID = &v
	}
	t.IsCompleted = isCompleted != 0
	if completedDate.Valid {
		v := completedDate.Time
		t.CompletedDate = &v
	}
	t.IsRecurring = isRecurring != 0
	if recurringType.Valid {
		v := recurringType.String
		t.RecurringType = &v
	}
	if sketchPath.Valid {
		v := sketchPath.String
		t.SketchPath = &v
	}

	return &t, nil
}
