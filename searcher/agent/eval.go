package agent

import (
	"tron/experiments/metrics"
	"tron/game"
	"tron/searcher"
)

type lookaheadAgent struct {
	searcher *searcher.Searcher
	depth    int
	sinks    []searcher.Emitter
}

// NewLookaheadAgent returns an agent that plays the deepest decision of a
// depth-bounded search. Every decision is also forwarded to sinks.
func NewLookaheadAgent(s *searcher.Searcher, depth int, sinks ...searcher.Emitter) Agent {
	return lookaheadAgent{searcher: s, depth: depth, sinks: sinks}
}

func (a lookaheadAgent) FindMove(correlationID string, pos game.Position, grid *game.Grid) (game.Move, metrics.SearchMetric) {
	latest := &searcher.Latest{}
	sink := searcher.Tee(append([]searcher.Emitter{latest}, a.sinks...)...)

	report := a.searcher.Play(correlationID, pos, grid, a.depth, sink)

	move, _, ok := latest.Decision()
	if !ok {
		move = game.Forward
	}
	return move, report.Metric
}
