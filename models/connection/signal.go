package connection

const (
	CodeSessionID uint8 = iota
	CodeGameStarted
	CodeTurnPlayed
	CodeShotRejected
	CodeGameOver

	// spectators are read only; anything they send gets this back
	CodeInvalidSignal
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
