package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

func TestPlaceDefaultFleet(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		board := NewBoard(DefaultGridSize, true)
		placer := NewFleetPlacer(NewMathRandomizer(seed), DefaultFleet)

		if _, err := placer.Place(board); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		ships := board.Ships()
		if len(ships) != len(DefaultFleet) || board.ShipsAlive() != len(DefaultFleet) {
			t.Fatalf("seed %d: expected %d ships\tgot: %d placed %d alive", seed, len(DefaultFleet), len(ships), board.ShipsAlive())
		}

		for i, ship := range ships {
			if ship.Length() != DefaultFleet[i] {
				t.Fatalf("seed %d: expected ship %d length: %d\tgot: %d", seed, i, DefaultFleet[i], ship.Length())
			}
			for _, c := range ship.Coordinates() {
				if board.isOut(c) {
					t.Fatalf("seed %d: ship part out of bound: %v", seed, c)
				}
			}

			for _, other := range ships[i+1:] {
				for _, a := range ship.Coordinates() {
					for _, b := range other.Coordinates() {
						if isAdjacent(a, b) {
							t.Fatalf("seed %d: %s touches %s", seed, ship, other)
						}
					}
				}
			}
		}

		for _, c := range allCoordinates(board.Size()) {
			if board.IsBusy(c) {
				t.Fatalf("seed %d: placement left %v busy", seed, c)
			}
		}
	}
}

func TestPlaceUsesRandomCandidateAndOrientation(t *testing.T) {
	board := NewBoard(DefaultGridSize, false)
	// candidate 7 of the pool is (1, 1); orientation 1 is horizontal
	rnd := &scriptedRandomizer{values: []int{7, 1}}

	resets, err := NewFleetPlacer(rnd, []int{3}).Place(board)
	if err != nil {
		t.Fatal(err)
	}
	if resets != 0 {
		t.Fatalf("expected no resets\tgot: %d", resets)
	}

	ship := board.Ships()[0]
	if ship.Bow() != NewCoordinates(1, 1) || ship.IsVertical() {
		t.Fatalf("expected horizontal ship at (1, 1)\tgot: %s", ship)
	}
}

func TestPlaceDropsFailedCandidates(t *testing.T) {
	board := NewBoard(DefaultGridSize, false)
	// (0, 4) horizontal with length 3 sticks out, then the pool shifts and
	// index 4 is (0, 5) which fits vertically
	rnd := &scriptedRandomizer{values: []int{4, 1, 4, 0}}

	if _, err := NewFleetPlacer(rnd, []int{3}).Place(board); err != nil {
		t.Fatal(err)
	}

	ship := board.Ships()[0]
	if ship.Bow() != NewCoordinates(0, 5) || !ship.IsVertical() {
		t.Fatalf("expected vertical ship at (0, 5)\tgot: %s", ship)
	}
}

func TestPlaceResetsWhenCornered(t *testing.T) {
	// three full rows fit on the board, the fourth never does
	fleet := []int{6, 6, 6, 6}

	board := NewBoard(DefaultGridSize, true)
	resets, err := NewFleetPlacer(NewMathRandomizer(42), fleet, WithMaxResets(2)).Place(board)
	if !errors.Is(err, cerr.ErrFleetPlacementFailed) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrFleetPlacementFailed, err)
	}
	if resets != 3 {
		t.Fatalf("expected resets: %d\tgot: %d", 3, resets)
	}
	if board.ShipCount() != 0 {
		t.Fatalf("expected a clean board after failing\tgot: %d ships", board.ShipCount())
	}
}
