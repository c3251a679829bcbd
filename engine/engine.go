package engine

import (
	"tron/experiments/metrics"
	"tron/game"
)

// Frame is the arena after a turn has been played.
type Frame struct {
	Turn  int
	State *game.State
}

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var (
	_ Engine = (*Local)(nil)
	_ Engine = (*Remote)(nil)
)
