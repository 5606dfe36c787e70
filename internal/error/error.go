package error

import (
	"errors"
	"fmt"
)

// Sentinel errors of the board engine. Use errors.Is to match them;
// the constructors below wrap them with the offending coordinates.
var (
	ErrOutOfBounds          = errors.New("coordinates are out of grid bound")
	ErrPlacementConflict    = errors.New("ship position is taken or touches another ship")
	ErrAlreadyTargeted      = errors.New("position has already been targeted")
	ErrFleetPlacementFailed = errors.New("failed to place the fleet")
	ErrInvalidInput         = errors.New("invalid input")
	ErrGameOver             = errors.New("game is already over")
)

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrShipPositionTaken(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrPlacementConflict, x, y)
}

func ErrPositionAlreadyTargeted(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrAlreadyTargeted, x, y)
}

func ErrPlacementResetsExceeded(resets int) error {
	return fmt.Errorf("%w: board was reset %d times", ErrFleetPlacementFailed, resets)
}

func ErrInputTokenCount(got int) error {
	return fmt.Errorf("%w: enter two coordinates separated by a space, got %d value(s)", ErrInvalidInput, got)
}

func ErrInputNotNumber(token string, size int) error {
	return fmt.Errorf("%w: %q is not a number, enter numbers from 1 to %d", ErrInvalidInput, token, size)
}

func ErrInputOutOfRange(value, size int) error {
	return fmt.Errorf("%w: %d is out of range, enter numbers from 1 to %d", ErrInvalidInput, value, size)
}

// IsRecoverableShotErr reports whether a shot failed for a reason the
// shooter can fix by picking another target.
func IsRecoverableShotErr(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrAlreadyTargeted)
}
