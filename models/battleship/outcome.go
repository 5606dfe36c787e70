package battleship

type AttackOutcome uint8

const (
	AttackOutcomeMiss AttackOutcome = iota
	AttackOutcomeDamaged
	AttackOutcomeSunk
)

func (o AttackOutcome) IsHit() bool {
	return o == AttackOutcomeDamaged || o == AttackOutcomeSunk
}

func (o AttackOutcome) String() string {
	switch o {
	case AttackOutcomeMiss:
		return "Miss"
	case AttackOutcomeDamaged:
		return "Hit"
	case AttackOutcomeSunk:
		return "Sunk"
	default:
		return "Unknown"
	}
}
