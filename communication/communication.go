package communication

import (
	"tron/game"
)

type MessageType string

const (
	Play  MessageType = "play"  // Host asks for a decision
	Act   MessageType = "act"   // Bot reports the best move at a depth
	Idle  MessageType = "idle"  // Bot finished the request
	Error MessageType = "error" // Request was rejected
)

// Request is one tick for one agent. MaxDepth falls back to the server
// default when omitted.
type Request struct {
	Type          MessageType   `json:"type"`
	CorrelationID string        `json:"correlationID"`
	Position      game.Position `json:"position"`
	Grid          game.Snapshot `json:"grid"`
	MaxDepth      *int          `json:"maxDepth,omitempty"`
}

// Message is everything the bot sends back. Depth is always sent, since 0 is
// a real depth for acts.
type Message struct {
	Type          MessageType `json:"type"`
	CorrelationID string      `json:"correlationID"`
	Direction     game.Move   `json:"direction,omitempty"`
	Depth         int         `json:"depth"`
	Error         string      `json:"error,omitempty"`
}

func NewRequest(correlationID string, pos game.Position, grid *game.Grid, maxDepth int) Request {
	return Request{
		Type:          Play,
		CorrelationID: correlationID,
		Position:      pos,
		Grid:          grid.Snapshot(),
		MaxDepth:      &maxDepth,
	}
}
