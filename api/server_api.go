package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	mc "github.com/saeidalz13/battleship-console/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

var (
	defaultPort = 7171
	upgrader    = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// probably more that enough but this is a good average size
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type Server struct {
	port  int
	stage string
	Hub   *SpectatorHub
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) *Server {
	var server Server
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	if server.port == 0 {
		server.port = defaultPort
	}
	if server.stage == "" {
		server.stage = StageDev
	}
	if server.Hub == nil {
		server.Hub = NewSpectatorHub()
	}

	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithHub(hub *SpectatorHub) Option {
	return func(s *Server) error {
		s.Hub = hub
		return nil
	}
}

func (s *Server) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", s.port)
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/battleship/spectate", s.HandleSpectate).Methods(http.MethodGet)
	r.HandleFunc("/battleship/health", s.HandleHealth).Methods(http.MethodGet)
	return r
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "ok %s %d spectators", s.stage, s.Hub.SessionCount())
}

func (s *Server) HandleSpectate(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	session := mc.NewSession(uuid.NewString(), conn)
	log.Println("a new spectator connected\tRemote Addr: ", conn.RemoteAddr().String())

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := session.WriteToConnWithRetry(resp, mc.MessageTypeJSON); err != nil {
		log.Println(err)
		_ = session.Close()
		return
	}

	s.Hub.Register(session)
	defer s.Hub.Terminate(session.Id())

	// spectators only watch; tell them when they try to talk
	session.ReadUntilClosed(func(payload []byte) {
		msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
		msg.AddError("", "spectators cannot send messages")
		if err := session.WriteToConnWithRetry(msg, mc.MessageTypeJSON); err != nil {
			log.Println(err)
		}
	})
}

// ListenAndServe serves the spectator routes until the server fails.
func (s *Server) ListenAndServe() error {
	log.Printf("spectators can watch on port %d\n", s.port)
	return http.ListenAndServe(s.Addr(), s.Router())
}
