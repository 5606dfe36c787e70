package battleship

import (
	"slices"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

type FleetPlacer struct {
	rnd   Randomizer
	fleet []int

	// 0 means the board may be reset any number of times
	maxResets int
}

type PlacerOption func(*FleetPlacer)

// WithMaxResets bounds how many times a cornered placement may start over.
func WithMaxResets(maxResets int) PlacerOption {
	return func(fp *FleetPlacer) {
		fp.maxResets = maxResets
	}
}

func NewFleetPlacer(rnd Randomizer, fleet []int, opts ...PlacerOption) FleetPlacer {
	fp := FleetPlacer{
		rnd:   rnd,
		fleet: fleet,
	}
	for _, opt := range opts {
		opt(&fp)
	}
	return fp
}

// Place fills the board with the fleet. Every free coordinate is a bow
// candidate; a random candidate with a random orientation is tried and
// then dropped from the pool whether it fit or not. When the pool runs dry
// before the fleet is complete the board is reset and placement starts
// over. The busy set is cleared at the end so the placement contours do
// not block shots. It returns how many resets it took.
func (fp FleetPlacer) Place(board *Board) (int, error) {
	var resets int
	candidates := allCoordinates(board.Size())

	for board.ShipCount() < len(fp.fleet) {
		if len(candidates) == 0 {
			resets++
			if fp.maxResets > 0 && resets > fp.maxResets {
				board.Reset()
				return resets, cerr.ErrPlacementResetsExceeded(fp.maxResets)
			}

			board.Reset()
			candidates = allCoordinates(board.Size())
			continue
		}

		idx := fp.rnd.IntInRange(0, len(candidates)-1)
		isVertical := fp.rnd.IntInRange(0, 1) == 0
		length := fp.fleet[board.ShipCount()]

		// a failed attempt only costs the candidate
		_ = board.PlaceShip(NewShip(length, candidates[idx], isVertical))
		candidates = slices.Delete(candidates, idx, idx+1)
	}

	board.ClearBusy()
	return resets, nil
}

func allCoordinates(size int) []Coordinates {
	coords := make([]Coordinates, 0, size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			coords = append(coords, NewCoordinates(x, y))
		}
	}
	return coords
}
