package client

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"tron/communication"
	"tron/experiments/metrics"
	"tron/game"
	"tron/searcher"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var ErrRejected = errors.New("request rejected by bot")

// RemoteAgent asks a bot behind a websocket for moves. Calls are serialised
// since the bot answers one request at a time.
type RemoteAgent struct {
	conn  *websocket.Conn
	depth int
	mutex sync.Mutex
}

func Dial(url string, depth int) (*RemoteAgent, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	return &RemoteAgent{conn: conn, depth: depth}, nil
}

// Play sends one tick and forwards every act to sink until the bot is idle.
func (a *RemoteAgent) Play(correlationID string, pos game.Position, grid *game.Grid, sink searcher.Emitter) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	request := communication.NewRequest(correlationID, pos, grid, a.depth)
	if err := a.conn.WriteJSON(request); err != nil {
		return fmt.Errorf("failed to send request %s: %w", correlationID, err)
	}

	for {
		var msg communication.Message
		if err := a.conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("failed to read reply to %s: %w", correlationID, err)
		}
		if msg.CorrelationID != correlationID && msg.Type != communication.Error {
			log.Debug().Msgf("Ignoring stale %s for %s", msg.Type, msg.CorrelationID)
			continue
		}

		switch msg.Type {
		case communication.Act:
			move, err := game.ParseMove(string(msg.Direction))
			if err != nil {
				return err
			}
			sink.Act(msg.CorrelationID, move, msg.Depth)
		case communication.Idle:
			return nil
		case communication.Error:
			return fmt.Errorf("%w: %s", ErrRejected, msg.Error)
		}
	}
}

// FindMove plays one tick and keeps the deepest decision. Transport failures
// fall back to Forward.
func (a *RemoteAgent) FindMove(correlationID string, pos game.Position, grid *game.Grid) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	latest := &searcher.Latest{}
	if err := a.Play(correlationID, pos, grid, latest); err != nil {
		log.Warn().Err(err).Msg("Remote move failed")
	}

	metric := metrics.SearchMetric{MaxDepth: a.depth, Duration: time.Since(start)}
	move, depth, ok := latest.Decision()
	if !ok {
		return game.Forward, metric
	}
	metric.Levels = depth + 1
	return move, metric
}

func (a *RemoteAgent) Close() error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	deadline := time.Now().Add(time.Second)
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := a.conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
		log.Debug().Err(err).Msg("Close handshake failed")
	}
	return a.conn.Close()
}
