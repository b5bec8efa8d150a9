package engine

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"taskquest/internal/storage"
)

// Service wires the rules engine to storage. All profile-mutating sequences
// (complete, restore, activity check) run under mu: the read-modify-write
// cycle on the singleton profile is one logical transaction.
type Service struct {
	db           *sql.DB
	profiles     *storage.ProfileRepo
	tasks        *storage.TaskRepo
	categories   *storage.CategoryRepo
	projects     *storage.ProjectRepo
	achievements *storage.AchievementRepo
	quests       *storage.QuestRepo
	completions  *storage.CompletionRepo

	templates []QuestTemplate

	mu sync.Mutex
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:           db,
		profiles:     storage.NewProfileRepo(db),
		tasks:        storage.NewTaskRepo(db),
		categories:   storage.NewCategoryRepo(db),
		projects:     storage.NewProjectRepo(db),
		achievements: storage.NewAchievementRepo(db),
		quests:       storage.NewQuestRepo(db),
		completions:  storage.NewCompletionRepo(db),
		templates:    DefaultQuestTemplates(),
	}
}

// SetQuestTemplates overrides the daily generation set.
func (s *Service) SetQuestTemplates(templates []QuestTemplate) {
	s.templates = templates
}

func (s *Service) ProfileRepo() *storage.ProfileRepo         { return s.profiles }
func (s *Service) TaskRepo() *storage.TaskRepo               { return s.tasks }
func (s *Service) CategoryRepo() *storage.CategoryRepo       { return s.categories }
func (s *Service) ProjectRepo() *storage.ProjectRepo         { return s.projects }
func (s *Service) AchievementRepo() *storage.AchievementRepo { return s.achievements }
func (s *Service) QuestRepo() *storage.QuestRepo             { return s.quests }
func (s *Service) CompletionRepo() *storage.CompletionRepo   { return s.completions }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ValidationError{Field: "title", Reason: "is required"}
	}
	return t, nil
}

func (s *Service) getProfile(ctx context.Context) (*storage.Profile, error) {
	return s.profiles.GetOrCreate(ctx)
}

// seedAchievements inserts the default achievement set once.
func (s *Service) seedAchievements(ctx context.Context) ([]storage.Achievement, error) {
	existing, err := s.achievements.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}
	for _, a := range DefaultAchievements() {
		if _, err := s.achievements.Insert(ctx, a); err != nil {
			return nil, err
		}
	}
	return s.achievements.ListAll(ctx)
}

// evaluateAchievements persists whatever EvaluateAchievements changed and
// returns the titles of newly unlocked achievements.
func (s *Service) evaluateAchievements(ctx context.Context, p *storage.Profile, now time.Time) ([]string, error) {
	all, err := s.seedAchievements(ctx)
	if err != nil {
		return nil, err
	}
	var unlocked []string
	for _, a := range EvaluateAchievements(all, p, now) {
		if a.IsUnlocked {
			if err := s.achievements.Unlock(ctx, a.ID, *a.UnlockedDate); err != nil {
				return nil, err
			}
			unlocked = append(unlocked, a.Title)
			continue
		}
		if err := s.achievements.UpdateProgress(ctx, a.ID, a.CurrentCount); err != nil {
			return nil, err
		}
	}
	return unlocked, nil
}
