package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"lightcycle/arena"
)

// MessageWrapper wraps a message with its client
type MessageWrapper struct {
	client  *Client
	message *Message
}

// Hub maintains the set of active clients and their running matches
type Hub struct {
	clients       map[*Client]bool
	users         map[string]*User
	matches       map[string]*MatchSession
	register      chan *Client
	unregister    chan *Client
	handleMessage chan *MessageWrapper
	matchDone     chan *MatchSession
}

func newHub() *Hub {
	return &Hub{
		clients:       make(map[*Client]bool),
		users:         make(map[string]*User),
		matches:       make(map[string]*MatchSession),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		handleMessage: make(chan *MessageWrapper),
		matchDone:     make(chan *MatchSession),
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.handleConnect(client)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.handleDisconnect(client)
				delete(h.clients, client)
				close(client.done)
			}
		case wrapper := <-h.handleMessage:
			h.handleClientMessage(wrapper.client, wrapper.message)
		case session := <-h.matchDone:
			h.handleMatchDone(session)
		}
	}
}

func (h *Hub) handleConnect(client *Client) {
	callsign := GenerateRandomCallsign()
	userID := uuid.New().String()

	user := &User{
		ID:       userID,
		Callsign: callsign,
		Client:   client,
		InMatch:  false,
	}
	client.user = user
	h.users[userID] = user

	msg := Message{
		Type:     "welcome",
		UserID:   userID,
		Callsign: callsign,
	}
	h.sendLifecycle(client, &msg)

	log.Printf("Spectator connected: %s (%s)", callsign, userID)
}

func (h *Hub) handleDisconnect(client *Client) {
	if client.user == nil {
		return
	}

	user := client.user
	log.Printf("Spectator disconnected: %s (%s)", user.Callsign, user.ID)

	// Cancel any match owned by this client
	for matchID, session := range h.matches {
		if session.client == client {
			session.cancel()
			delete(h.matches, matchID)
		}
	}

	delete(h.users, user.ID)
}

func (h *Hub) handleClientMessage(client *Client, msg *Message) {
	switch msg.Type {
	case "start_match":
		h.handleStartMatch(client, msg)
	case "stop_match":
		h.handleStopMatch(client)
	case "key":
		h.handleKey(client, msg)
	default:
		log.Printf("Unknown message type: %s", msg.Type)
	}
}

func (h *Hub) handleStartMatch(client *Client, msg *Message) {
	if client.user == nil {
		return
	}
	if client.user.InMatch {
		h.sendLifecycle(client, &Message{Type: "error", Error: "match already running"})
		return
	}

	session := newMatchSession(h, client, arena.MatchConfig{
		Precision: msg.Precision,
		Seed:      msg.Seed,
	})
	h.matches[session.ID] = session
	client.user.InMatch = true

	agents := []AgentInfo{}
	for _, a := range session.ctrl.State().Agents {
		agents = append(agents, AgentInfo{ID: a.ID, Glyph: a.Glyph, Color: a.Color})
	}

	h.sendLifecycle(client, &Message{
		Type:    "match_start",
		MatchID: session.ID,
		Rows:    arena.DISPLAY_ROWS,
		Cols:    arena.BOARD_WIDTH,
		Agents:  agents,
	})

	go session.run()

	log.Printf("Match started: %s for %s (mode: %s)",
		session.ID, client.user.Callsign, session.ctrl.Mode())
}

func (h *Hub) handleStopMatch(client *Client) {
	for matchID, session := range h.matches {
		if session.client == client {
			session.cancel()
			delete(h.matches, matchID)
			if client.user != nil {
				client.user.InMatch = false
			}
		}
	}
}

func (h *Hub) handleKey(client *Client, msg *Message) {
	for _, session := range h.matches {
		if session.client == client {
			session.key(msg.Key)
		}
	}
}

func (h *Hub) handleMatchDone(session *MatchSession) {
	if _, ok := h.matches[session.ID]; !ok {
		return
	}
	delete(h.matches, session.ID)
	if session.client.user != nil {
		session.client.user.InMatch = false
	}
}

// lifecycleSendWait bounds how long a lifecycle send may wait on a slow
// client before giving up on it.
const lifecycleSendWait = time.Second

// sendLifecycle delivers messages a client must not miss (welcome,
// match_start, match_end, errors). Unlike row updates these wait out a
// momentarily full buffer, up to a deadline; a client that cannot drain one
// lifecycle message in that time is a lost cause and will be reaped by its
// pumps.
func (h *Hub) sendLifecycle(client *Client, msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	timer := time.NewTimer(lifecycleSendWait)
	defer timer.Stop()
	select {
	case client.send <- data:
	case <-client.done:
	case <-timer.C:
		log.Printf("Client too slow for lifecycle message %q, dropping", msg.Type)
	}
}

// ============================================================================
// Match sessions
// ============================================================================

// MatchSession drives one match on the fixed-interval simulation clock and
// owns its GameController exclusively. Key events and cancellation cross
// into the session via channels and are honored between ticks; the tick
// transition itself is atomic.
type MatchSession struct {
	ID     string
	hub    *Hub
	client *Client
	ctrl   *arena.GameController

	keys chan string
	stop chan struct{}
}

func newMatchSession(h *Hub, client *Client, cfg arena.MatchConfig) *MatchSession {
	return &MatchSession{
		ID:     uuid.New().String(),
		hub:    h,
		client: client,
		ctrl:   arena.NewGameController(cfg),
		keys:   make(chan string, 8),
		stop:   make(chan struct{}),
	}
}

// key forwards a key event without ever blocking the hub loop.
func (s *MatchSession) key(code string) {
	select {
	case s.keys <- code:
	default:
	}
}

// cancel requests early termination, honored between ticks.
func (s *MatchSession) cancel() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}

func (s *MatchSession) run() {
	host := &wsRowHost{client: s.client, allocated: arena.DISPLAY_ROWS}
	arena.RenderTo(host, s.ctrl.State())

	ticker := time.NewTicker(arena.TICK_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case code := <-s.keys:
			if !s.applyKey(code) {
				return
			}
		case <-ticker.C:
			s.ctrl.Step()
			arena.RenderTo(host, s.ctrl.State())

			if s.ctrl.State().Over {
				s.finish(host)
				return
			}
		}
	}
}

// applyKey maps a raw key code to a direction intent or the kill switch.
// Returns false when the session should end.
func (s *MatchSession) applyKey(code string) bool {
	switch code {
	case "up":
		s.ctrl.Steer(arena.UP)
	case "down":
		s.ctrl.Steer(arena.DOWN)
	case "left":
		s.ctrl.Steer(arena.LEFT)
	case "right":
		s.ctrl.Steer(arena.RIGHT)
	case "kill":
		s.hub.matchDone <- s
		return false
	}
	return true
}

func (s *MatchSession) finish(host arena.RowHost) {
	state := s.ctrl.State()
	for _, row := range arena.RenderSummary(state) {
		host.AppendRow(row)
	}

	winner := ""
	if state.Winner != nil {
		winner = state.Winner.Glyph
	}
	s.hub.sendLifecycle(s.client, &Message{
		Type:    "match_end",
		MatchID: s.ID,
		Winner:  winner,
		Ticks:   state.Tick,
	})

	s.hub.matchDone <- s
	log.Printf("Match ended: %s (winner: %q, ticks: %d)", s.ID, winner, state.Tick)
}

// wsRowHost implements arena.RowHost over the spectator's websocket. Updates
// to rows beyond the allocated count are dropped silently rather than
// faulting.
type wsRowHost struct {
	client    *Client
	allocated int
	appended  int
}

func (w *wsRowHost) UpdateRow(index int, content string) {
	if index < 0 || index >= w.allocated {
		return
	}
	i := index
	w.send(&Message{Type: "row_update", Index: &i, Content: content})
}

func (w *wsRowHost) AppendRow(content string) {
	i := w.allocated + w.appended
	w.appended++
	w.send(&Message{Type: "row_append", Index: &i, Content: content})
}

func (w *wsRowHost) send(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case w.client.send <- data:
	default:
	}
}
