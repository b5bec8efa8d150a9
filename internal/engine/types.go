package engine

// Priority tags are stored as text; ordering is defined by Rank, never by
// storage representation.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Rank returns the stable sort order, lowest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	case PriorityUrgent:
		return 3
	default:
		return -1
	}
}

// DefaultPriority is used when user input is missing/invalid.
const DefaultPriority Priority = PriorityMedium

type RecurringType string

const (
	RecurringDaily   RecurringType = "DAILY"
	RecurringWeekly  RecurringType = "WEEKLY"
	RecurringMonthly RecurringType = "MONTHLY"
)

func (r RecurringType) IsValid() bool {
	switch r {
	case RecurringDaily, RecurringWeekly, RecurringMonthly:
		return true
	default:
		return false
	}
}

type CharacterClass string

const (
	ClassWarrior CharacterClass = "WARRIOR"
	ClassMage    CharacterClass = "MAGE"
	ClassRogue   CharacterClass = "ROGUE"
	ClassPaladin CharacterClass = "PALADIN"
)

func (c CharacterClass) IsValid() bool {
	switch c {
	case ClassWarrior, ClassMage, ClassRogue, ClassPaladin:
		return true
	default:
		return false
	}
}

const DefaultCharacterClass CharacterClass = ClassWarrior

type AchievementType string

const (
	AchievementTasksCompleted AchievementType = "TASKS_COMPLETED"
	AchievementStreak         AchievementType = "STREAK"
	AchievementLevel          AchievementType = "LEVEL"
	AchievementCategory       AchievementType = "CATEGORY"
	AchievementPerfectWeek    AchievementType = "PERFECT_WEEK"
)

func (a AchievementType) IsValid() bool {
	switch a {
	case AchievementTasksCompleted, AchievementStreak, AchievementLevel,
		AchievementCategory, AchievementPerfectWeek:
		return true
	default:
		return false
	}
}

type QuestType string

const (
	QuestDailyChallenge QuestType = "DAILY_CHALLENGE"
	QuestQuickQuest     QuestType = "QUICK_QUEST"
	QuestBossBattle     QuestType = "BOSS_BATTLE"
	QuestSpeedRun       QuestType = "SPEED_RUN"
	QuestPerfectDay     QuestType = "PERFECT_DAY"
)

func (q QuestType) IsValid() bool {
	switch q {
	case QuestDailyChallenge, QuestQuickQuest, QuestBossBattle, QuestSpeedRun, QuestPerfectDay:
		return true
	default:
		return false
	}
}
