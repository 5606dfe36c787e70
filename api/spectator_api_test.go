package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
	mc "github.com/saeidalz13/battleship-console/models/connection"
)

var dialer = websocket.Dialer{
	HandshakeTimeout: 10 * time.Second,
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	server := NewServer(WithStage(StageDev))
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go server.Hub.Run(ctx)

	return server, ts
}

func dialSpectator(t *testing.T, server *Server, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsUrl := "ws" + strings.TrimPrefix(ts.URL, "http") + "/battleship/spectate"
	conn, _, err := dialer.Dial(wsUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	var respSessionId mc.Message[mc.RespSessionId]
	if err := conn.ReadJSON(&respSessionId); err != nil {
		t.Fatal(err)
	}
	if respSessionId.Code != mc.CodeSessionID || respSessionId.Payload.SessionID == "" {
		t.Fatalf("expected session id message\tgot: %+v", respSessionId)
	}

	deadline := time.Now().Add(5 * time.Second)
	for server.Hub.SessionCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("spectator was never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}
	return conn
}

func TestSpectatorReceivesGameEvents(t *testing.T) {
	server, ts := newTestServer(t)
	conn := dialSpectator(t, server, ts)

	handler := server.Hub.GameEventHandler()
	handler(mb.Event{
		Code:     mb.EventTurnPlayed,
		GameUuid: "abc123",
		Player:   mb.PlayerNameComputer,
		Target:   mb.NewCoordinates(2, 3),
		Outcome:  mb.AttackOutcomeDamaged,
		Snapshot: &mb.Snapshot{UserShipsAlive: 7, ComputerShipsAlive: 6},
	})

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var respTurn mc.Message[mc.RespTurn]
	if err := conn.ReadJSON(&respTurn); err != nil {
		t.Fatal(err)
	}
	if respTurn.Code != mc.CodeTurnPlayed {
		t.Fatalf("expected code: %d\tgot: %d", mc.CodeTurnPlayed, respTurn.Code)
	}
	if respTurn.Payload.X != 3 || respTurn.Payload.Y != 4 || respTurn.Payload.Outcome != "Hit" {
		t.Fatalf("unexpected payload: %+v", respTurn.Payload)
	}
	if respTurn.Payload.GameUuid != "abc123" || respTurn.Payload.ComputerShipsAlive != 6 {
		t.Fatalf("unexpected boards: %+v", respTurn.Payload.RespBoards)
	}
}

func TestSpectatorCannotSend(t *testing.T) {
	server, ts := newTestServer(t)
	conn := dialSpectator(t, server, ts)

	if err := conn.WriteJSON(mc.NewSignal(mc.CodeTurnPlayed)); err != nil {
		t.Fatal(err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp mc.Message[mc.NoPayload]
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != mc.CodeInvalidSignal || !resp.HasError() {
		t.Fatalf("expected invalid signal with error\tgot: %+v", resp)
	}
}

func TestSpectatorIsDroppedOnClose(t *testing.T) {
	server, ts := newTestServer(t)
	conn := dialSpectator(t, server, ts)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for server.Hub.SessionCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("closed spectator was never removed")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewSpectatorHub()

	for i := 0; i < broadcastQueueSize; i++ {
		if !hub.Publish(mc.NewSignal(mc.CodeTurnPlayed)) {
			t.Fatalf("message %d dropped before the queue was full", i)
		}
	}
	if hub.Publish(mc.NewSignal(mc.CodeTurnPlayed)) {
		t.Fatal("expected message to be dropped on a full queue")
	}
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/battleship/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(string(body), "ok dev") {
		t.Fatalf("expected healthy dev server\tgot: %d %q", resp.StatusCode, body)
	}
}

func TestServerOptions(t *testing.T) {
	server := NewServer(WithPort(9090))
	if server.Addr() != "0.0.0.0:9090" {
		t.Fatalf("expected addr: %s\tgot: %s", "0.0.0.0:9090", server.Addr())
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected invalid stage to panic")
		}
	}()
	NewServer(WithStage("staging"))
}
