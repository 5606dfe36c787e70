package battleship

import (
	"context"
	"io"
	"testing"
)

// scriptedRandomizer replays values, clamped to the asked range, then
// keeps answering low.
type scriptedRandomizer struct {
	values []int
	calls  int
}

func (sr *scriptedRandomizer) IntInRange(low, high int) int {
	if sr.calls >= len(sr.values) {
		return low
	}
	v := sr.values[sr.calls]
	sr.calls++

	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

type linesReader struct {
	lines []string
	reads int
}

func (lr *linesReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if lr.reads >= len(lr.lines) {
		return "", io.EOF
	}
	line := lr.lines[lr.reads]
	lr.reads++
	return line, nil
}

// scriptedPlayer shoots the given targets in order.
type scriptedPlayer struct {
	basePlayer
	targets []Coordinates
	next    int
}

func newScriptedPlayer(name string, own, enemy *Board, targets ...Coordinates) *scriptedPlayer {
	return &scriptedPlayer{
		basePlayer: basePlayer{name: name, ownBoard: own, enemyBoard: enemy},
		targets:    targets,
	}
}

func (sp *scriptedPlayer) ChooseTarget(ctx context.Context) (Coordinates, error) {
	if sp.next >= len(sp.targets) {
		return Coordinates{}, io.EOF
	}
	target := sp.targets[sp.next]
	sp.next++
	return target, nil
}

func mustPlace(t testing.TB, board *Board, ships ...*Ship) {
	t.Helper()
	for _, ship := range ships {
		if err := board.PlaceShip(ship); err != nil {
			t.Fatalf("failed to place %s: %v", ship, err)
		}
	}
}

func isAdjacent(a, b Coordinates) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}
