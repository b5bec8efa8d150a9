package engine

import "strings"

// ParsePriority parses user input to a Priority.
// Supported: low, medium/med, high, urgent
// If input is empty or unrecognized, returns DefaultPriority.
func ParsePriority(input string) Priority {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultPriority
	case "low":
		return PriorityLow
	case "medium", "med":
		return PriorityMedium
	case "high":
		return PriorityHigh
	case "urgent":
		return PriorityUrgent
	default:
		return DefaultPriority
	}
}

func ParseRecurringType(input string) (RecurringType, bool) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "daily":
		return RecurringDaily, true
	case "weekly":
		return RecurringWeekly, true
	case "monthly":
		return RecurringMonthly, true
	default:
		return "", false
	}
}

func ParseCharacterClass(input string) (CharacterClass, bool) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "warrior":
		return ClassWarrior, true
	case "mage":
		return ClassMage, true
	case "rogue":
		return ClassRogue, true
	case "paladin":
		return ClassPaladin, true
	default:
		return "", false
	}
}

func parseStoredPriority(s string) Priority {
	p := Priority(strings.TrimSpace(strings.ToUpper(s)))
	if p.IsValid() {
		return p
	}
	return DefaultPriority
}
