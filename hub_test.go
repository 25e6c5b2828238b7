package main

import (
	"encoding/json"
	"testing"
	"time"

	"lightcycle/arena"
)

func testClient(h *Hub, buffer int) *Client {
	return &Client{
		hub:  h,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
}

func nextMessage(t *testing.T, client *Client) *Message {
	t.Helper()
	select {
	case data := <-client.send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("Invalid message on send channel: %v", err)
		}
		return &msg
	case <-time.After(time.Second):
		t.Fatal("No message on send channel")
		return nil
	}
}

func TestHandleConnectSendsWelcome(t *testing.T) {
	h := newHub()
	client := testClient(h, 8)
	h.clients[client] = true

	h.handleConnect(client)

	msg := nextMessage(t, client)
	if msg.Type != "welcome" {
		t.Fatalf("Expected welcome, got %q", msg.Type)
	}
	if msg.UserID == "" || msg.Callsign == "" {
		t.Errorf("Welcome should carry identity: %+v", msg)
	}
	if _, ok := h.users[msg.UserID]; !ok {
		t.Error("Connected user should be registered on the hub")
	}
	if client.user == nil || client.user.InMatch {
		t.Error("New user should exist and not be in a match")
	}
}

func TestStartMatchAnnouncesGeometry(t *testing.T) {
	h := newHub()
	client := testClient(h, 64)
	h.clients[client] = true
	h.handleConnect(client)
	nextMessage(t, client) // welcome

	h.handleStartMatch(client, &Message{Type: "start_match", Seed: 1})
	defer func() {
		for _, session := range h.matches {
			session.cancel()
		}
	}()

	msg := nextMessage(t, client)
	if msg.Type != "match_start" {
		t.Fatalf("Expected match_start, got %q", msg.Type)
	}
	if msg.Rows != arena.DISPLAY_ROWS || msg.Cols != arena.BOARD_WIDTH {
		t.Errorf("Announced geometry %dx%d, want %dx%d",
			msg.Rows, msg.Cols, arena.DISPLAY_ROWS, arena.BOARD_WIDTH)
	}
	if len(msg.Agents) != 4 {
		t.Errorf("Expected 4 agents announced, got %d", len(msg.Agents))
	}
	if msg.MatchID == "" {
		t.Error("match_start should carry the match ID")
	}
	if !client.user.InMatch {
		t.Error("Starting a match should mark the user in-match")
	}
}

func TestStartMatchRejectsSecond(t *testing.T) {
	h := newHub()
	client := testClient(h, 8)
	h.clients[client] = true
	h.handleConnect(client)
	nextMessage(t, client) // welcome

	client.user.InMatch = true
	h.handleStartMatch(client, &Message{Type: "start_match"})

	msg := nextMessage(t, client)
	if msg.Type != "error" || msg.Error == "" {
		t.Errorf("Second start should be rejected with an error, got %+v", msg)
	}
	if len(h.matches) != 0 {
		t.Error("Rejected start should not register a match")
	}
}

func TestApplyKeySteersAndKills(t *testing.T) {
	h := newHub()
	client := testClient(h, 8)
	session := newMatchSession(h, client, arena.MatchConfig{Seed: 1})

	for _, code := range []string{"up", "down", "left", "right", "noop"} {
		if !session.applyKey(code) {
			t.Fatalf("Key %q should not end the session", code)
		}
	}

	done := make(chan *MatchSession, 1)
	go func() { done <- <-h.matchDone }()

	if session.applyKey("kill") {
		t.Error("Kill key should end the session")
	}
	select {
	case got := <-done:
		if got != session {
			t.Error("Kill should report this session done")
		}
	case <-time.After(time.Second):
		t.Fatal("Kill never reached the hub")
	}
}

func TestWsRowHostBounds(t *testing.T) {
	h := newHub()
	client := testClient(h, 8)
	host := &wsRowHost{client: client, allocated: 3}

	host.UpdateRow(-1, "below")
	host.UpdateRow(3, "beyond")
	if len(client.send) != 0 {
		t.Fatal("Out-of-range updates should be dropped")
	}

	host.UpdateRow(1, "row one")
	msg := nextMessage(t, client)
	if msg.Type != "row_update" || msg.Index == nil || *msg.Index != 1 || msg.Content != "row one" {
		t.Errorf("Unexpected row_update: %+v", msg)
	}
}

func TestWsRowHostAppendIndices(t *testing.T) {
	h := newHub()
	client := testClient(h, 8)
	host := &wsRowHost{client: client, allocated: arena.DISPLAY_ROWS}

	host.AppendRow("first")
	host.AppendRow("second")

	for i, want := range []string{"first", "second"} {
		msg := nextMessage(t, client)
		if msg.Type != "row_append" {
			t.Fatalf("Expected row_append, got %q", msg.Type)
		}
		if msg.Index == nil || *msg.Index != arena.DISPLAY_ROWS+i {
			t.Errorf("Append %d should land at index %d, got %v", i, arena.DISPLAY_ROWS+i, msg.Index)
		}
		if msg.Content != want {
			t.Errorf("Append %d content %q, want %q", i, msg.Content, want)
		}
	}
}

func TestWsRowHostDropsOnBackpressure(t *testing.T) {
	h := newHub()
	client := testClient(h, 1)
	host := &wsRowHost{client: client, allocated: 3}

	host.UpdateRow(0, "fills the buffer")
	host.UpdateRow(1, "dropped")

	if len(client.send) != 1 {
		t.Fatalf("Expected exactly 1 buffered message, got %d", len(client.send))
	}
}

func TestLifecycleSendWaitsOutBackpressure(t *testing.T) {
	h := newHub()
	client := testClient(h, 1)
	h.clients[client] = true
	client.send <- []byte("{}") // writer momentarily behind

	go func() {
		time.Sleep(50 * time.Millisecond)
		<-client.send
	}()

	h.handleConnect(client)

	msg := nextMessage(t, client)
	if msg.Type != "welcome" {
		t.Fatalf("Welcome must survive a briefly full buffer, got %q", msg.Type)
	}
}

func TestLifecycleSendReturnsForGoneClient(t *testing.T) {
	h := newHub()
	client := testClient(h, 1)
	client.send <- []byte("{}")
	close(client.done)

	returned := make(chan struct{})
	go func() {
		h.sendLifecycle(client, &Message{Type: "match_end"})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Lifecycle send should return once the client is gone")
	}
}

func TestGenerateRandomCallsign(t *testing.T) {
	for i := 0; i < 20; i++ {
		if GenerateRandomCallsign() == "" {
			t.Fatal("Callsign should never be empty")
		}
	}
}
