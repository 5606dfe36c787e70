package api

import (
	"context"
	"log"
	"sync"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
	mc "github.com/saeidalz13/battleship-console/models/connection"
)

const broadcastQueueSize = 64

// SpectatorHub fans game messages out to every connected spectator. The
// game loop only enqueues; Run does the writing.
type SpectatorHub struct {
	sessions  map[string]*mc.Session
	broadcast chan any
	mu        sync.RWMutex
}

func NewSpectatorHub() *SpectatorHub {
	return &SpectatorHub{
		sessions:  make(map[string]*mc.Session, 4),
		broadcast: make(chan any, broadcastQueueSize),
	}
}

func (h *SpectatorHub) Register(session *mc.Session) {
	h.mu.Lock()
	h.sessions[session.Id()] = session
	h.mu.Unlock()
}

func (h *SpectatorHub) Terminate(sessionId string) {
	h.mu.Lock()
	session, prs := h.sessions[sessionId]
	delete(h.sessions, sessionId)
	h.mu.Unlock()

	if prs {
		_ = session.Close()
		log.Printf("spectator session terminated: %s\n", sessionId)
	}
}

func (h *SpectatorHub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Publish queues msg for every spectator. It never blocks; when the queue
// is full the message is dropped.
func (h *SpectatorHub) Publish(msg any) bool {
	select {
	case h.broadcast <- msg:
		return true
	default:
		log.Println("spectator queue is full; dropping message")
		return false
	}
}

// GameEventHandler publishes every game event to spectators.
func (h *SpectatorHub) GameEventHandler() mb.EventHandler {
	return func(ev mb.Event) {
		if msg := mc.NewEventMessage(ev); msg != nil {
			h.Publish(msg)
		}
	}
}

// Run writes queued messages until ctx is done. Spectators whose
// connection fails are dropped.
func (h *SpectatorHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case msg := <-h.broadcast:
			h.mu.RLock()
			sessions := make([]*mc.Session, 0, len(h.sessions))
			for _, session := range h.sessions {
				sessions = append(sessions, session)
			}
			h.mu.RUnlock()

			for _, session := range sessions {
				if err := session.WriteToConnWithRetry(msg, mc.MessageTypeJSON); err != nil {
					log.Println(err)
					h.Terminate(session.Id())
				}
			}
		}
	}
}
