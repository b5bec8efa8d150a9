package engine

// Class flavor text shown on the profile screen. Classes are cosmetic; none
// of them alters the reward formula.

func (c CharacterClass) Description() string {
	switch c {
	case ClassWarrior:
		return "Masters of strength and endurance."
	case ClassMage:
		return "Scholars of wisdom and intellect."
	case ClassRogue:
		return "Experts in agility and speed."
	case ClassPaladin:
		return "Champions of balance and righteousness."
	default:
		return ""
	}
}
