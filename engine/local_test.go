package engine

import (
	"testing"

	"tron/experiments/metrics"
	"tron/game"
	"tron/searcher"
	"tron/searcher/agent"

	"github.com/stretchr/testify/require"
)

// scripted replays a fixed list of moves and records the correlation ids it saw
type scripted struct {
	moves []game.Move
	seen  []string
}

func (s *scripted) FindMove(correlationID string, _ game.Position, _ *game.Grid) (game.Move, metrics.SearchMetric) {
	s.seen = append(s.seen, correlationID)
	if len(s.seen) > len(s.moves) {
		return game.Forward, metrics.SearchMetric{}
	}
	return s.moves[len(s.seen)-1], metrics.SearchMetric{}
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(nil, 5, 5)
		})
	})

	t.Run("lone forward player runs into the wall", func(t *testing.T) {
		a := &scripted{}
		e := LocalEngine([]agent.Agent{a}, 5, 5)

		winner, gameMetric, moveMetrics := e.Run()

		// Starts at (2,2) heading +y: (2,3), (2,4), then the wall
		require.Equal(t, game.Draw, winner)
		require.Equal(t, 3, gameMetric.Turns)
		require.Len(t, moveMetrics, 3)
		require.Equal(t, []string{"Player1"}, gameMetric.Players)
		require.Len(t, a.seen, 3)
		require.NotEqual(t, a.seen[0], a.seen[1], "Each tick should get a fresh correlation id")
	})

	t.Run("lookahead outlives forward-only player", func(t *testing.T) {
		smart := agent.NewLookaheadAgent(searcher.NewSearcher(searcher.WithSeed(1), searcher.WithMetrics()), 4)
		e := LocalEngine([]agent.Agent{smart, &scripted{}}, 11, 11)

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, "Player1", winner)
		require.Equal(t, "Player1", gameMetric.Winner)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
		for _, mm := range moveMetrics {
			if mm.Player == "Player1" {
				require.Equal(t, 5, mm.Levels)
			}
		}
	})

	t.Run("stops at max turns", func(t *testing.T) {
		smart := agent.NewLookaheadAgent(searcher.NewSearcher(searcher.WithSeed(2)), 3)
		e := LocalEngine([]agent.Agent{smart}, 20, 20).WithMaxTurns(4)

		winner, gameMetric, _ := e.Run()

		require.Empty(t, winner)
		require.Equal(t, 4, gameMetric.Turns)
	})

	t.Run("publishes a frame per turn", func(t *testing.T) {
		frames := make(chan Frame, 16)
		e := LocalEngine([]agent.Agent{&scripted{}}, 5, 5).Observe(frames)

		e.Run()

		var turns []int
		for f := range frames {
			turns = append(turns, f.Turn)
		}
		require.Equal(t, []int{0, 1, 2, 3}, turns)
	})
}
