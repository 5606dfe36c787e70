package battleship

import (
	"context"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

const (
	PlayerNameUser     = "User"
	PlayerNameComputer = "Computer"
)

// Player picks where to shoot next. OwnBoard and EnemyBoard are lookups
// only; the game owns both boards.
type Player interface {
	Name() string
	OwnBoard() *Board
	EnemyBoard() *Board
	ChooseTarget(ctx context.Context) (Coordinates, error)
}

// LineReader supplies one line of user input per call.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type basePlayer struct {
	name       string
	ownBoard   *Board
	enemyBoard *Board
}

func (bp basePlayer) Name() string {
	return bp.name
}

func (bp basePlayer) OwnBoard() *Board {
	return bp.ownBoard
}

func (bp basePlayer) EnemyBoard() *Board {
	return bp.enemyBoard
}

type HumanPlayer struct {
	basePlayer
	input          LineReader
	onInvalidInput func(error)
}

var _ Player = (*HumanPlayer)(nil)

// NewHumanPlayer reads targets from input. onInvalidInput, when not nil,
// is told about every malformed line before the next one is read.
func NewHumanPlayer(ownBoard, enemyBoard *Board, input LineReader, onInvalidInput func(error)) *HumanPlayer {
	return &HumanPlayer{
		basePlayer:     basePlayer{name: PlayerNameUser, ownBoard: ownBoard, enemyBoard: enemyBoard},
		input:          input,
		onInvalidInput: onInvalidInput,
	}
}

func (hp *HumanPlayer) ChooseTarget(ctx context.Context) (Coordinates, error) {
	for {
		line, err := hp.input.ReadLine(ctx)
		if err != nil {
			return Coordinates{}, err
		}

		target, err := ParseCoordinates(line, hp.enemyBoard.Size())
		if err != nil {
			if hp.onInvalidInput != nil {
				hp.onInvalidInput(err)
			}
			continue
		}
		return target, nil
	}
}

type ComputerPlayer struct {
	basePlayer
	rnd Randomizer
}

var _ Player = (*ComputerPlayer)(nil)

func NewComputerPlayer(ownBoard, enemyBoard *Board, rnd Randomizer) *ComputerPlayer {
	return &ComputerPlayer{
		basePlayer: basePlayer{name: PlayerNameComputer, ownBoard: ownBoard, enemyBoard: enemyBoard},
		rnd:        rnd,
	}
}

func (cp *ComputerPlayer) ChooseTarget(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}

	size := cp.enemyBoard.Size()
	return NewCoordinates(cp.rnd.IntInRange(0, size-1), cp.rnd.IntInRange(0, size-1)), nil
}

// TakeTurn asks the player for targets until one of them can be shot at.
// Out of bound and repeated targets are handed to onRejected and asked
// again; only failures of the player itself are returned.
func TakeTurn(ctx context.Context, p Player, onRejected func(Coordinates, error)) (Coordinates, AttackOutcome, error) {
	for {
		target, err := p.ChooseTarget(ctx)
		if err != nil {
			return target, AttackOutcomeMiss, err
		}

		outcome, err := p.EnemyBoard().Shoot(target)
		if err != nil {
			if !cerr.IsRecoverableShotErr(err) {
				return target, outcome, err
			}
			if onRejected != nil {
				onRejected(target, err)
			}
			continue
		}
		return target, outcome, nil
	}
}

// ParseCoordinates turns "row column", both 1-based, into zero based
// coordinates on a board of the given size.
func ParseCoordinates(line string, size int) (Coordinates, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Coordinates{}, cerr.ErrInputTokenCount(len(fields))
	}

	var values [2]int
	for i, field := range fields {
		if !isDigits(field) {
			return Coordinates{}, cerr.ErrInputNotNumber(field, size)
		}

		v, err := strconv.Atoi(field)
		if err != nil {
			return Coordinates{}, cerr.ErrInputNotNumber(field, size)
		}
		if v < 1 || v > size {
			return Coordinates{}, cerr.ErrInputOutOfRange(v, size)
		}
		values[i] = v
	}

	return NewCoordinates(values[0]-1, values[1]-1), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
