package connection

import (
	"log"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8         = 2
	backOffFactor     time.Duration = time.Millisecond * 200
	writeWait         time.Duration = time.Second * 5
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

// Session is one spectator connection. Writes are serialized since the
// broadcaster and the read loop may both answer on it.
type Session struct {
	id        string
	conn      *websocket.Conn
	createdAt time.Time
	mu        sync.Mutex
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Println("high server load/traffic error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Println("close error:", err)
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		log.Println("critical error:", err)
		return ConnLoopBreak
	}

	log.Println("unexpected error:", err)
	return ConnLoopBreak
}

// WriteToConnWithRetry writes msg, retrying timeouts with a growing pause.
func (s *Session) WriteToConnWithRetry(msg any, msgType uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var retries uint8
	for {
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))

		var err error
		switch msgType {
		case MessageTypeJSON:
			err = s.conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = s.conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
		}

		if err == nil {
			return nil
		}

		if s.onConnErr(err) != ConnLoopRetry || retries >= maxWriteWsRetries {
			return NewConnErr(ConnLoopBreak).AddDesc("stop writing to ws [" + s.id + "] due to: " + err.Error())
		}
		retries++
		log.Printf("writing to ws [%s] failed; retrying... (retry no. %d)\n", s.id, retries)
		time.Sleep(time.Duration(retries) * backOffFactor)
	}
}

// ReadUntilClosed consumes incoming frames, handing each payload to
// onMessage, until the peer goes away.
func (s *Session) ReadUntilClosed(onMessage func(payload []byte)) {
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			// a failed read leaves the connection unusable, retrying is pointless
			s.onConnErr(err)
			return
		}

		if onMessage != nil {
			onMessage(payload)
		}
	}
}

func (s *Session) Close() error {
	return s.conn.Close()
}
