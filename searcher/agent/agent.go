package agent

import (
	"tron/experiments/metrics"
	"tron/game"
)

type Agent interface {
	// FindMove returns the move to play this tick and the search metrics (if collected)
	FindMove(correlationID string, pos game.Position, grid *game.Grid) (game.Move, metrics.SearchMetric)
}
