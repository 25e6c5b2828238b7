package main

// Message types sent between client and server
type Message struct {
	Type      string      `json:"type"`
	UserID    string      `json:"userId,omitempty"`
	Callsign  string      `json:"callsign,omitempty"`
	MatchID   string      `json:"matchId,omitempty"`
	Precision bool        `json:"precision,omitempty"`
	Seed      int64       `json:"seed,omitempty"`
	Rows      int         `json:"rows,omitempty"`
	Cols      int         `json:"cols,omitempty"`
	Index     *int        `json:"index,omitempty"`
	Content   string      `json:"content,omitempty"`
	Key       string      `json:"key,omitempty"`
	Winner    string      `json:"winner,omitempty"`
	Ticks     int         `json:"ticks,omitempty"`
	Agents    []AgentInfo `json:"agents,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// AgentInfo describes one arena agent to the client at match start, so the
// frontend can theme glyphs without any simulation knowledge.
type AgentInfo struct {
	ID    int    `json:"id"`
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// User represents a connected spectator
type User struct {
	ID       string
	Callsign string
	Client   *Client
	InMatch  bool
}
