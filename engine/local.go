package engine

import (
	"fmt"
	"time"

	"tron/experiments/metrics"
	"tron/game"
	"tron/meta"
	"tron/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Local struct {
	State    *game.State
	agents   map[string]agent.Agent
	maxTurns int
	frames   chan<- Frame
}

// LocalEngine seats one player per agent, named Player1, Player2 and so on.
func LocalEngine(agents []agent.Agent, width, height int) *Local {
	if len(agents) < 1 {
		panic("need at least one agent")
	}

	ids := make([]string, len(agents))
	seats := make(map[string]agent.Agent, len(agents))
	for i, a := range agents {
		ids[i] = fmt.Sprintf("Player%d", i+1)
		seats[ids[i]] = a
	}

	return &Local{
		State:    game.NewState(width, height, ids),
		agents:   seats,
		maxTurns: meta.MaxTurns,
	}
}

func (e *Local) WithMaxTurns(maxTurns int) *Local {
	if maxTurns > 0 {
		e.maxTurns = maxTurns
	}
	return e
}

// Observe publishes the starting arena and every following turn to frames.
// The channel is closed when Run returns.
func (e *Local) Observe(frames chan<- Frame) *Local {
	e.frames = frames
	return e
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	if e.frames != nil {
		defer close(e.frames)
		e.frames <- Frame{Turn: e.State.Turn, State: e.State}
	}

	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	for _, p := range e.State.Players {
		gameMetric.Players = append(gameMetric.Players, p.ID)
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("starting game with %d players on %dx%d", len(e.State.Players), e.State.Board.Width, e.State.Board.Height)

	for e.State.Winner() == "" && e.State.Turn < e.maxTurns {
		// All agents decide against the same snapshot
		grid := e.State.Board.Grid()
		moves := map[string]game.Move{}
		for _, p := range e.State.Alive() {
			correlationID := uuid.NewString()
			move, metric := e.agents[p.ID].FindMove(correlationID, p.Position, grid)
			moves[p.ID] = move
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         e.State.Turn + 1,
				Player:       p.ID,
				Move:         move.String(),
				SearchMetric: metric,
			})
			log.Debug().Str("correlationID", correlationID).Str("player", p.ID).Msgf("turn %d: %s", e.State.Turn+1, move)
		}

		e.State = e.State.Play(moves)
		for _, p := range e.State.Players {
			if !p.Alive && moves[p.ID] != "" {
				log.Info().Msgf("%s crashed on turn %d", p.ID, e.State.Turn)
			}
		}
		if e.frames != nil {
			e.frames <- Frame{Turn: e.State.Turn, State: e.State}
		}
	}

	winner := e.State.Winner()
	if winner == "" {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.State.Turn)
	} else {
		log.Info().Msgf("game ended on turn %d, winner: %s", e.State.Turn, winner)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Turns = e.State.Turn
	return winner, gameMetric, moveMetrics
}
