package battleship

import "fmt"

// DefaultFleet lists the ship lengths every side places, in placement order.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

type Ship struct {
	length      int
	bow         Coordinates
	isVertical  bool
	health      int
	coordinates []Coordinates
}

// NewShip lays out length cells from bow, down the rows when isVertical is
// set and along the columns otherwise. Bounds and collisions are checked
// by the board.
func NewShip(length int, bow Coordinates, isVertical bool) *Ship {
	coordinates := make([]Coordinates, length)
	for i := 0; i < length; i++ {
		if isVertical {
			coordinates[i] = NewCoordinates(bow.X+i, bow.Y)
		} else {
			coordinates[i] = NewCoordinates(bow.X, bow.Y+i)
		}
	}

	return &Ship{
		length:      length,
		bow:         bow,
		isVertical:  isVertical,
		health:      length,
		coordinates: coordinates,
	}
}

// GotHit takes one unit of health. The board only calls it for a fresh
// coordinate of this ship, so hitting a sunk ship is a bug.
func (sh *Ship) GotHit() {
	if sh.health == 0 {
		panic(fmt.Sprintf("hit on a sunk ship: %s", sh))
	}
	sh.health--
}

func (sh *Ship) IsSunk() bool {
	return sh.health == 0
}

func (sh *Ship) Health() int {
	return sh.health
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) IsVertical() bool {
	return sh.isVertical
}

func (sh *Ship) Coordinates() []Coordinates {
	return append([]Coordinates(nil), sh.coordinates...)
}

func (sh *Ship) Occupies(c Coordinates) bool {
	for _, own := range sh.coordinates {
		if own == c {
			return true
		}
	}
	return false
}

func (sh *Ship) String() string {
	return fmt.Sprintf("ship: length=%d bow=(%d, %d) vertical=%t health=%d",
		sh.length, sh.bow.X, sh.bow.Y, sh.isVertical, sh.health)
}
