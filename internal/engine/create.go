package engine

import (
	"context"
	"time"

	"taskquest/internal/storage"
)

type CreateTaskInput struct {
	Title            string
	Description      string
	Priority         Priority
	CategoryID       int64
	ProjectID        *int64
	DueDate          *time.Time
	EstimatedMinutes int
	// XPReward of 0 means "use the suggested reward".
	XPReward      int
	IsRecurring   bool
	RecurringType *RecurringType
}

func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (int64, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return 0, err
	}
	if !in.Priority.IsValid() {
		return 0, ValidationError{Field: "priority", Reason: "invalid value"}
	}
	if in.IsRecurring && (in.RecurringType == nil || !in.RecurringType.IsValid()) {
		return 0, ValidationError{Field: "recurringType", Reason: "required for recurring tasks"}
	}
	if !in.IsRecurring && in.RecurringType != nil {
		return 0, ValidationError{Field: "recurringType", Reason: "set on a non-recurring task"}
	}
	if in.XPReward < 0 {
		return 0, ValidationError{Field: "xpReward", Reason: "must be non-negative"}
	}

	cat, err := s.categories.Get(ctx, in.CategoryID)
	if err != nil {
		return 0, err
	}
	if cat == nil {
		return 0, NotFoundError{Kind: "category", ID: in.CategoryID}
	}
	if in.ProjectID != nil {
		proj, err := s.projects.Get(ctx, *in.ProjectID)
		if err != nil {
			return 0, err
		}
		if proj == nil {
			return 0, NotFoundError{Kind: "project", ID: *in.ProjectID}
		}
	}

	minutes := in.EstimatedMinutes
	if minutes <= 0 {
		minutes = 30
	}
	reward := in.XPReward
	if reward == 0 {
		reward = SuggestedXPReward(in.Priority, minutes)
	}

	var recurring *string
	if in.RecurringType != nil {
		v := string(*in.RecurringType)
		recurring = &v
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Title:            title,
		Description:      in.Description,
		DueDate:          in.DueDate,
		Priority:         string(in.Priority),
		CategoryID:       in.CategoryID,
		ProjectID:        in.ProjectID,
		EstimatedMinutes: minutes,
		XPReward:         reward,
		IsRecurring:      in.IsRecurring,
		RecurringType:    recurring,
	})
	if err != nil {
		return 0, err
	}

	if err := s.categories.AdjustTaskCount(ctx, in.CategoryID, 1); err != nil {
		return 0, err
	}

	return id, nil
}

type UpdateTaskInput struct {
	Title            string
	Description      string
	Priority         Priority
	CategoryID       int64
	ProjectID        *int64
	DueDate          *time.Time
	EstimatedMinutes int
	XPReward         int
}

// UpdateTask edits a task in place. Completed tasks are frozen: their reward
// is already granted and must not drift.
func (s *Service) UpdateTask(ctx context.Context, id int64, in UpdateTaskInput) error {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return NotFoundError{Kind: "task", ID: id}
	}
	if task.IsCompleted {
		return ValidationError{Field: "task", Reason: "completed tasks cannot be edited"}
	}

	title, err := normalizeTitle(in.Title)
	if err != nil {
		return err
	}
	if !in.Priority.IsValid() {
		return ValidationError{Field: "priority", Reason: "invalid value"}
	}
	if in.XPReward < 0 {
		return ValidationError{Field: "xpReward", Reason: "must be non-negative"}
	}

	// Category reassignment maintains both denormalized counters.
	if in.CategoryID != task.CategoryID {
		cat, err := s.categories.Get(ctx, in.CategoryID)
		if err != nil {
			return err
		}
		if cat == nil {
			return NotFoundError{Kind: "category", ID: in.CategoryID}
		}
		if err := s.categories.AdjustTaskCount(ctx, task.CategoryID, -1); err != nil {
			return err
		}
		if err := s.categories.AdjustTaskCount(ctx, in.CategoryID, 1); err != nil {
			return err
		}
	}

	task.Title = title
	task.Description = in.Description
	task.Priority = string(in.Priority)
	task.CategoryID = in.CategoryID
	task.ProjectID = in.ProjectID
	task.DueDate = in.DueDate
	if in.EstimatedMinutes > 0 {
		task.EstimatedMinutes = in.EstimatedMinutes
	}
	if in.XPReward > 0 {
		task.XPReward = in.XPReward
	}

	return s.tasks.Update(ctx, task)
}

func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return NotFoundError{Kind: "task", ID: id}
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	return s.categories.AdjustTaskCount(ctx, task.CategoryID, -1)
}

func (s *Service) CreateCategory(ctx context.Context, name, color, icon string) (int64, error) {
	n, err := normalizeTitle(name)
	if err != nil {
		return 0, err
	}
	if color == "" {
		color = "#808080"
	}
	if icon == "" {
		icon = "folder"
	}
	return s.categories.Insert(ctx, storage.Category{Name: n, Color: color, Icon: icon})
}

func (s *Service) CreateProject(ctx context.Context, name, description, color string, deadline *time.Time) (int64, error) {
	n, err := normalizeTitle(name)
	if err != nil {
		return 0, err
	}
	if color == "" {
		color = "#4169E1"
	}
	return s.projects.Insert(ctx, storage.Project{
		Name:        n,
		Description: description,
		Deadline:    deadline,
		Color:       color,
	})
}

// SetCharacterClass updates the cosmetic class choice on the profile.
func (s *Service) SetCharacterClass(ctx context.Context, class CharacterClass) error {
	if !class.IsValid() {
		return ValidationError{Field: "characterClass", Reason: "invalid value"}
	}
	p, err := s.getProfile(ctx)
	if err != nil {
		return err
	}
	p.CharacterClass = string(class)
	return s.profiles.Update(ctx, p)
}

// Statistics loads entity snapshots and derives the productivity summary.
func (s *Service) Statistics(ctx context.Context) (ProductivityStats, []DailyTaskCount, error) {
	active, err := s.tasks.ListActive(ctx)
	if err != nil {
		return ProductivityStats{}, nil, err
	}
	completed, err := s.tasks.ListCompleted(ctx)
	if err != nil {
		return ProductivityStats{}, nil, err
	}
	p, err := s.getProfile(ctx)
	if err != nil {
		return ProductivityStats{}, nil, err
	}
	now := time.Now()
	return ComputeStatistics(active, completed, p, now), Last7DaysHistogram(completed, now), nil
}
