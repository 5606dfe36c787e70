package battleship

import (
	"context"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

type MatchStatus int8

const (
	MatchStatusInProgress MatchStatus = iota
	MatchStatusUserWon
	MatchStatusComputerWon
)

func (s MatchStatus) String() string {
	switch s {
	case MatchStatusInProgress:
		return "InProgress"
	case MatchStatusUserWon:
		return "UserWon"
	case MatchStatusComputerWon:
		return "ComputerWon"
	default:
		return "Unknown"
	}
}

type Game struct {
	uuid     string
	user     Player
	computer Player

	// even turns belong to the user
	turn        int
	turnsPlayed int
	status      MatchStatus
	isStarted   bool
	repeatOnHit bool
	handlers    []EventHandler
}

type GameOption func(*Game)

// WithRepeatOnHit decides whether a hit earns the shooter another turn.
// It is on by default.
func WithRepeatOnHit(repeatOnHit bool) GameOption {
	return func(g *Game) {
		g.repeatOnHit = repeatOnHit
	}
}

func WithEventHandler(handler EventHandler) GameOption {
	return func(g *Game) {
		g.Subscribe(handler)
	}
}

// NewGame pits user against computer. Each player's enemy board must be
// the other one's own board.
func NewGame(user, computer Player, opts ...GameOption) *Game {
	game := &Game{
		uuid:        uuid.NewString()[:6],
		user:        user,
		computer:    computer,
		status:      MatchStatusInProgress,
		repeatOnHit: true,
	}
	for _, opt := range opts {
		opt(game)
	}
	return game
}

type Setup struct {
	Rnd                Randomizer
	Input              LineReader
	OnInvalidInput     func(error)
	MaxPlacementResets int
}

// NewStandardGame places the default fleet on two default sized boards,
// the user's board showing its ships, and sets a human against the
// computer.
func NewStandardGame(setup Setup, opts ...GameOption) (*Game, error) {
	userBoard := NewBoard(DefaultGridSize, true)
	computerBoard := NewBoard(DefaultGridSize, false)

	placer := NewFleetPlacer(setup.Rnd, DefaultFleet, WithMaxResets(setup.MaxPlacementResets))
	for _, board := range []*Board{userBoard, computerBoard} {
		if _, err := placer.Place(board); err != nil {
			return nil, err
		}
	}

	user := NewHumanPlayer(userBoard, computerBoard, setup.Input, setup.OnInvalidInput)
	computer := NewComputerPlayer(computerBoard, userBoard, setup.Rnd)
	return NewGame(user, computer, opts...), nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Status() MatchStatus {
	return g.status
}

func (g *Game) IsOver() bool {
	return g.status != MatchStatusInProgress
}

func (g *Game) IsUserTurn() bool {
	return g.turn%2 == 0
}

func (g *Game) TurnsPlayed() int {
	return g.turnsPlayed
}

// Players returns the user then the computer.
func (g *Game) Players() []Player {
	return []Player{g.user, g.computer}
}

func (g *Game) Subscribe(handler EventHandler) {
	if handler != nil {
		g.handlers = append(g.handlers, handler)
	}
}

// Play runs turns until one fleet is sunk or a player fails to produce a
// target.
func (g *Game) Play(ctx context.Context) (MatchStatus, error) {
	for !g.IsOver() {
		if _, err := g.PlayTurn(ctx); err != nil {
			return g.status, err
		}
	}
	return g.status, nil
}

// PlayTurn lets the side to move shoot once. The turn passes to the other
// side on a miss and stays on a hit unless repeat on hit is disabled.
func (g *Game) PlayTurn(ctx context.Context) (AttackOutcome, error) {
	if g.IsOver() {
		return AttackOutcomeMiss, cerr.ErrGameOver
	}
	if !g.isStarted {
		g.isStarted = true
		g.emit(Event{Code: EventGameStarted, Snapshot: g.snapshot()})
	}

	attacker := g.computer
	if g.IsUserTurn() {
		attacker = g.user
	}

	target, outcome, err := TakeTurn(ctx, attacker, func(c Coordinates, err error) {
		g.emit(Event{Code: EventShotRejected, Player: attacker.Name(), Target: c, Err: err})
	})
	if err != nil {
		return outcome, err
	}

	g.turnsPlayed++
	g.turn++
	if outcome.IsHit() && g.repeatOnHit {
		g.turn--
	}

	if attacker.EnemyBoard().ShipsAlive() == 0 {
		g.status = MatchStatusComputerWon
		if attacker == g.user {
			g.status = MatchStatusUserWon
		}
	}

	g.emit(Event{
		Code:     EventTurnPlayed,
		Player:   attacker.Name(),
		Target:   target,
		Outcome:  outcome,
		Snapshot: g.snapshot(),
	})
	if g.IsOver() {
		g.emit(Event{Code: EventGameOver, Player: attacker.Name(), Snapshot: g.snapshot()})
	}

	return outcome, nil
}

func (g *Game) snapshot() *Snapshot {
	return &Snapshot{
		UserRows:           g.user.OwnBoard().Rows(),
		ComputerRows:       g.computer.OwnBoard().Rows(),
		UserShipsAlive:     g.user.OwnBoard().ShipsAlive(),
		ComputerShipsAlive: g.computer.OwnBoard().ShipsAlive(),
	}
}

func (g *Game) emit(ev Event) {
	ev.GameUuid = g.uuid
	ev.Turn = g.turnsPlayed
	ev.Status = g.status
	for _, handler := range g.handlers {
		handler(ev)
	}
}
