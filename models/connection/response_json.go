package connection

import (
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespBoards struct {
	GameUuid           string   `json:"game_uuid"`
	UserBoard          []string `json:"user_board"`
	ComputerBoard      []string `json:"computer_board"`
	UserShipsAlive     int      `json:"user_ships_alive"`
	ComputerShipsAlive int      `json:"computer_ships_alive"`
}

// X and Y are 1-based, the way players type them.
type RespTurn struct {
	RespBoards
	Player  string `json:"player"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Outcome string `json:"outcome"`
	Turn    int    `json:"turn"`
}

type RespShotRejected struct {
	GameUuid string `json:"game_uuid"`
	Player   string `json:"player"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Reason   string `json:"reason"`
}

type RespEndGame struct {
	RespBoards
	MatchStatus string `json:"match_status"`
	Winner      string `json:"winner"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}

func NewRespBoards(gameUuid string, snapshot *mb.Snapshot) RespBoards {
	resp := RespBoards{GameUuid: gameUuid}
	if snapshot == nil {
		return resp
	}

	resp.UserBoard = snapshot.UserRows
	resp.ComputerBoard = snapshot.ComputerRows
	resp.UserShipsAlive = snapshot.UserShipsAlive
	resp.ComputerShipsAlive = snapshot.ComputerShipsAlive
	return resp
}

// NewEventMessage converts a game event into the message spectators get.
func NewEventMessage(ev mb.Event) any {
	switch ev.Code {
	case mb.EventGameStarted:
		msg := NewMessage[RespBoards](CodeGameStarted)
		msg.AddPayload(NewRespBoards(ev.GameUuid, ev.Snapshot))
		return msg

	case mb.EventTurnPlayed:
		msg := NewMessage[RespTurn](CodeTurnPlayed)
		msg.AddPayload(RespTurn{
			RespBoards: NewRespBoards(ev.GameUuid, ev.Snapshot),
			Player:     ev.Player,
			X:          ev.Target.X + 1,
			Y:          ev.Target.Y + 1,
			Outcome:    ev.Outcome.String(),
			Turn:       ev.Turn,
		})
		return msg

	case mb.EventShotRejected:
		msg := NewMessage[RespShotRejected](CodeShotRejected)
		resp := RespShotRejected{
			GameUuid: ev.GameUuid,
			Player:   ev.Player,
			X:        ev.Target.X + 1,
			Y:        ev.Target.Y + 1,
		}
		if ev.Err != nil {
			resp.Reason = ev.Err.Error()
		}
		msg.AddPayload(resp)
		return msg

	case mb.EventGameOver:
		msg := NewMessage[RespEndGame](CodeGameOver)
		msg.AddPayload(RespEndGame{
			RespBoards:  NewRespBoards(ev.GameUuid, ev.Snapshot),
			MatchStatus: ev.Status.String(),
			Winner:      ev.Player,
		})
		return msg

	default:
		return nil
	}
}
