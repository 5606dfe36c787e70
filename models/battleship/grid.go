package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

const DefaultGridSize int = 6

const (
	PositionStateEmpty uint8 = iota
	PositionStateShip
	PositionStateMiss
	PositionStateHit
)

// Glyphs used by Board.Rows, indexed by position state.
var positionStateGlyphs = [...]string{
	PositionStateEmpty: "0",
	PositionStateShip:  "■",
	PositionStateMiss:  ".",
	PositionStateHit:   "X",
}

// X is the row and Y the column, both zero based.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Offsets of the 8-neighbourhood including the coordinates themselves.
var contourOffsets = [...]Coordinates{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type Grid [][]uint8

// Creates a new default grid
// All indexes are zero/PositionStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}

// Board is one side's sea: the cell matrix, the ships placed on it and the
// set of busy coordinates. A coordinate is busy when it was shot at or when
// it lies in the contour of a placed ship. The same set serves placement
// (no overlap, no touching) and shooting (no repeated shot); FleetPlacer
// clears it between the two phases.
type Board struct {
	isVisible  bool
	size       int
	cells      Grid
	ships      []*Ship
	shipsAlive int
	busy       map[Coordinates]struct{}
}

// NewBoard creates an empty board. isVisible renders own ships on it.
func NewBoard(size int, isVisible bool) *Board {
	return &Board{
		isVisible: isVisible,
		size:      size,
		cells:     NewGrid(size),
		ships:     make([]*Ship, 0, len(DefaultFleet)),
		busy:      make(map[Coordinates]struct{}, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) IsVisible() bool {
	return b.isVisible
}

func (b *Board) ShipsAlive() int {
	return b.shipsAlive
}

// ShipCount is the number of placed ships, sunk ones included.
func (b *Board) ShipCount() int {
	return len(b.ships)
}

func (b *Board) Ships() []*Ship {
	return append([]*Ship(nil), b.ships...)
}

func (b *Board) IsBusy(c Coordinates) bool {
	_, prs := b.busy[c]
	return prs
}

func (b *Board) PositionState(c Coordinates) uint8 {
	return b.cells[c.X][c.Y]
}

func (b *Board) isOut(c Coordinates) bool {
	return c.X < 0 || c.X >= b.size || c.Y < 0 || c.Y >= b.size
}

// PlaceShip puts the ship on the board and marks its contour busy.
func (b *Board) PlaceShip(ship *Ship) error {
	for _, c := range ship.coordinates {
		if b.isOut(c) {
			return cerr.ErrXorYOutOfGridBound(c.X, c.Y)
		}
		if b.IsBusy(c) {
			return cerr.ErrShipPositionTaken(c.X, c.Y)
		}
	}

	for _, c := range ship.coordinates {
		b.busy[c] = struct{}{}
		if b.isVisible {
			b.cells[c.X][c.Y] = PositionStateShip
		}
	}
	b.ships = append(b.ships, ship)
	b.shipsAlive++
	b.MarkContour(ship, false)

	return nil
}

// MarkContour marks every free in-bound cell around the ship busy. With
// reveal set those cells are also drawn as misses, which is what happens
// once a ship is sunk.
func (b *Board) MarkContour(ship *Ship, reveal bool) {
	for _, c := range ship.coordinates {
		for _, off := range contourOffsets {
			near := NewCoordinates(c.X+off.X, c.Y+off.Y)
			if b.isOut(near) || b.IsBusy(near) {
				continue
			}

			b.busy[near] = struct{}{}
			if reveal {
				b.cells[near.X][near.Y] = PositionStateMiss
			}
		}
	}
}

// Shoot resolves a shot at c. It fails with ErrOutOfBounds or
// ErrAlreadyTargeted and leaves the board untouched in that case.
func (b *Board) Shoot(c Coordinates) (AttackOutcome, error) {
	if b.isOut(c) {
		return AttackOutcomeMiss, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	if b.IsBusy(c) {
		return AttackOutcomeMiss, cerr.ErrPositionAlreadyTargeted(c.X, c.Y)
	}

	b.busy[c] = struct{}{}
	for _, ship := range b.ships {
		if !ship.Occupies(c) {
			continue
		}

		ship.GotHit()
		b.cells[c.X][c.Y] = PositionStateHit
		if !ship.IsSunk() {
			return AttackOutcomeDamaged, nil
		}

		b.MarkContour(ship, true)
		b.shipsAlive--
		return AttackOutcomeSunk, nil
	}

	b.cells[c.X][c.Y] = PositionStateMiss
	return AttackOutcomeMiss, nil
}

// Rows renders the board: a header of 1-based column numbers followed by
// one line per row prefixed with its 1-based number.
func (b *Board) Rows() []string {
	rows := make([]string, 0, b.size+1)

	header := make([]string, b.size)
	for i := range header {
		header[i] = strconv.Itoa(i + 1)
	}
	rows = append(rows, " |"+strings.Join(header, "|")+"|")

	for i, row := range b.cells {
		glyphs := make([]string, len(row))
		for j, state := range row {
			glyphs[j] = positionStateGlyphs[state]
		}
		rows = append(rows, strconv.Itoa(i+1)+"|"+strings.Join(glyphs, "|")+"|")
	}
	return rows
}

// Reset brings the board back to its freshly created state.
func (b *Board) Reset() {
	b.cells = NewGrid(b.size)
	b.ships = b.ships[:0]
	b.shipsAlive = 0
	b.ClearBusy()
}

// ClearBusy forgets the busy coordinates but keeps ships and cells.
func (b *Board) ClearBusy() {
	clear(b.busy)
}
