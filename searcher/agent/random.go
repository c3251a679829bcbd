package agent

import (
	"tron/experiments/metrics"
	"tron/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand *rand.Rand
}

// NewRandomAgent returns the baseline agent: a random move among those that
// do not crash right away, or forward when every move crashes.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rand: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(_ string, pos game.Position, grid *game.Grid) (game.Move, metrics.SearchMetric) {
	possible := make([]game.Move, 0, len(game.Moves))
	for i, next := range pos.Successors() {
		if !grid.Blocked(next.Point()) {
			possible = append(possible, game.Moves[i])
		}
	}
	if len(possible) == 0 {
		return game.Forward, metrics.SearchMetric{}
	}
	return possible[a.rand.Intn(len(possible))], metrics.SearchMetric{}
}
