package battleship

type EventCode uint8

const (
	EventGameStarted EventCode = iota
	EventShotRejected
	EventTurnPlayed
	EventGameOver
)

func (c EventCode) String() string {
	switch c {
	case EventGameStarted:
		return "GameStarted"
	case EventShotRejected:
		return "ShotRejected"
	case EventTurnPlayed:
		return "TurnPlayed"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Snapshot is a rendered copy of both boards, safe to hand to other
// goroutines.
type Snapshot struct {
	UserRows           []string
	ComputerRows       []string
	UserShipsAlive     int
	ComputerShipsAlive int
}

// Event describes something that happened in a game. Target, Outcome and
// Err are set for shots; Snapshot for every code but EventShotRejected.
type Event struct {
	Code     EventCode
	GameUuid string
	Turn     int
	Player   string
	Target   Coordinates
	Outcome  AttackOutcome
	Err      error
	Status   MatchStatus
	Snapshot *Snapshot
}

type EventHandler func(Event)
