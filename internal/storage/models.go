package storage

import "time"

// Profile is the singleton user profile. Exactly one row exists, at ProfileID.
type Profile struct {
	ID                  int64
	Level               int
	XP                  int
	TotalTasksCompleted int
	CurrentStreak       int
	LongestStreak       int
	LastActiveDate      time.Time
	CharacterClass      string
	AvatarID            int
}

type Task struct {
	ID               int64
	Title            string
	Description      string
	DueDate          *time.Time
	Priority         string
	CategoryID       int64
	ProjectID        *int64
	EstimatedMinutes int
	XPReward         int
	IsCompleted      bool
	CompletedDate    *time.Time
	IsRecurring      bool
	RecurringType    *string
	CreatedDate      time.Time
	SketchPath       *string
}

type Category struct {
	ID        int64
	Name      string
	Color     string
	Icon      string
	TaskCount int
}

type Project struct {
	ID          int64
	Name        string
	Description string
	Deadline    *time.Time
	IsCompleted bool
	Color       string
}

type Achievement struct {
	ID            int64
	Title         string
	Description   string
	Icon          string
	IsUnlocked    bool
	UnlockedDate  *time.Time
	RequiredCount int
	CurrentCount  int
	Type          string
}

type DailyQuest struct {
	ID          int64
	Title       string
	Description string
	XPReward    int
	Threshold   int
	Date        time.Time
	IsCompleted bool
	QuestType   string
}

// TaskCompletion is the audit row written for every XP award. It records the
// frozen amount so undoing a completion deducts exactly what was granted.
type TaskCompletion struct {
	ID          int64
	TaskID      int64
	CompletedAt time.Time
	XPAwarded   int
}
