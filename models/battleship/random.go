package battleship

import "math/rand"

// Randomizer samples uniformly from the inclusive range [low, high].
type Randomizer interface {
	IntInRange(low, high int) int
}

type MathRandomizer struct {
	r *rand.Rand
}

var _ Randomizer = (*MathRandomizer)(nil)

func NewMathRandomizer(seed int64) *MathRandomizer {
	return &MathRandomizer{r: rand.New(rand.NewSource(seed))}
}

func (mr *MathRandomizer) IntInRange(low, high int) int {
	return low + mr.r.Intn(high-low+1)
}
