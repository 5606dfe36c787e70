package error

import (
	"errors"
	"testing"
)

func TestErrorsWrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "out of bound", err: ErrXorYOutOfGridBound(10, 10), sentinel: ErrOutOfBounds},
		{name: "position taken", err: ErrShipPositionTaken(1, 2), sentinel: ErrPlacementConflict},
		{name: "already targeted", err: ErrPositionAlreadyTargeted(2, 2), sentinel: ErrAlreadyTargeted},
		{name: "resets exceeded", err: ErrPlacementResetsExceeded(3), sentinel: ErrFleetPlacementFailed},
		{name: "token count", err: ErrInputTokenCount(3), sentinel: ErrInvalidInput},
		{name: "not a number", err: ErrInputNotNumber("a", 6), sentinel: ErrInvalidInput},
		{name: "input out of range", err: ErrInputOutOfRange(7, 6), sentinel: ErrInvalidInput},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !errors.Is(test.err, test.sentinel) {
				t.Fatalf("expected %v to wrap %v", test.err, test.sentinel)
			}
		})
	}
}

func TestIsRecoverableShotErr(t *testing.T) {
	if !IsRecoverableShotErr(ErrXorYOutOfGridBound(6, 0)) {
		t.Fatal("out of bound shot must be recoverable")
	}
	if !IsRecoverableShotErr(ErrPositionAlreadyTargeted(0, 0)) {
		t.Fatal("repeated shot must be recoverable")
	}
	if IsRecoverableShotErr(ErrShipPositionTaken(0, 0)) {
		t.Fatal("placement conflict is not a shot error")
	}
	if IsRecoverableShotErr(errors.New("eof")) {
		t.Fatal("unrelated error must not be recoverable")
	}
}
