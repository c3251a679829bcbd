package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"tron/communication"
	"tron/game"
	"tron/searcher"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const queueSize = 256

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Server hosts the bot over a websocket. Every connection is one agent and
// gets its own searcher, so its requests are played one after another.
type Server struct {
	newSearcher  func() *searcher.Searcher
	defaultDepth int
}

func New(newSearcher func() *searcher.Searcher, defaultDepth int) *Server {
	return &Server{newSearcher: newSearcher, defaultDepth: defaultDepth}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}

	c := &connection{
		conn:     conn,
		send:     make(chan communication.Message, queueSize),
		searcher: s.newSearcher(),
		depth:    s.defaultDepth,
	}
	log.Info().Msgf("Agent connected from %s", r.RemoteAddr)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.writer()
	}()
	c.reader()
	close(c.send)
	wg.Wait()
	conn.Close()
	log.Info().Msgf("Agent %s disconnected", r.RemoteAddr)
}

type connection struct {
	conn     *websocket.Conn
	send     chan communication.Message
	searcher *searcher.Searcher
	depth    int
}

func (c *connection) reader() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Msg("Read failed")
			}
			return
		}

		var request communication.Request
		if err := json.Unmarshal(data, &request); err != nil {
			c.send <- failure("", fmt.Errorf("failed to parse request: %w", err))
			continue
		}
		if err := c.play(request); err != nil {
			c.send <- failure(request.CorrelationID, err)
		}
	}
}

func (c *connection) writer() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			log.Debug().Err(err).Msg("Write failed")
		}
	}
}

func (c *connection) play(request communication.Request) error {
	if request.Type != communication.Play {
		return fmt.Errorf("unexpected message type %q", request.Type)
	}
	if err := request.Position.Validate(); err != nil {
		return err
	}
	depth := c.depth
	if request.MaxDepth != nil {
		depth = *request.MaxDepth
	}

	c.searcher.Play(request.CorrelationID, request.Position, request.Grid.Grid(), depth, queue(c.send))
	c.send <- communication.Message{Type: communication.Idle, CorrelationID: request.CorrelationID}
	return nil
}

// queue hands acts to the writer without waiting on the socket. A full queue
// drops the act; the host only keeps the latest one anyway.
type queue chan<- communication.Message

func (q queue) Act(correlationID string, move game.Move, depth int) {
	select {
	case q <- communication.Message{Type: communication.Act, CorrelationID: correlationID, Direction: move, Depth: depth}:
	default:
		log.Warn().Msgf("Dropped act for %s at depth %d", correlationID, depth)
	}
}

func failure(correlationID string, err error) communication.Message {
	log.Warn().Err(err).Msgf("Rejected request %s", correlationID)
	return communication.Message{Type: communication.Error, CorrelationID: correlationID, Error: err.Error()}
}
