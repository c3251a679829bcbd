package searcher

import (
	"time"

	"tron/experiments/metrics"
	"tron/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher runs the level-by-level look-ahead. Calls for the same agent must
// be serialized: Play shares the searcher's random source and collector.
type Searcher struct {
	rand    *rand.Rand
	metrics metrics.Collector
}

// Report summarises one call to Play. The host-visible output is the sequence
// of decisions sent to the Emitter.
type Report struct {
	Move   game.Move
	Scores map[game.Move]int
	Metric metrics.SearchMetric
}

func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rand = rand.New(rand.NewSource(seed))
	}
}

func WithRand(r *rand.Rand) Option {
	return func(s *Searcher) {
		if r != nil {
			s.rand = r
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		rand:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Play searches levels 0 through maxDepth and reports one decision per level
// to sink. Level 0 decides on empty scores. Every later level expands the
// frontier by one move. There is no early exit: an exhausted frontier keeps
// reporting the scores it had. A negative maxDepth is treated as 0.
func (s *Searcher) Play(correlationID string, pos game.Position, grid *game.Grid, maxDepth int, sink Emitter) Report {
	if maxDepth < 0 {
		maxDepth = 0
	}
	if grid == nil {
		grid = game.NewGridFromPoints(0, 0)
	}
	if sink == nil {
		sink = Discard
	}

	board := newScoreboard()
	frontier := []*node{{position: pos}}
	var decision game.Move

	s.metrics.Start(maxDepth)
	for depth := 0; depth <= maxDepth; depth++ {
		if depth > 0 {
			frontier = s.expand(board, frontier, grid)
		}
		decision = board.evaluateContext()
		s.metrics.AddLevel()

		log.Debug().
			Str("correlationID", correlationID).
			Int("depth", depth).
			Int("frontier", len(frontier)).
			Str("move", decision.String()).
			Msg("level decided")
		sink.Act(correlationID, decision, depth)
	}

	return Report{
		Move:   decision,
		Scores: board.snapshot(),
		Metric: s.metrics.Complete(),
	}
}

// expand grows the frontier by one level, scores the new nodes in random
// order and returns the nodes that claimed a cell.
func (s *Searcher) expand(board *scoreboard, frontier []*node, grid *game.Grid) []*node {
	children := make([]*node, 0, len(game.Moves)*len(frontier))
	for _, parent := range frontier {
		children = append(children, parent.children(grid)...)
	}
	s.metrics.AddExpanded(len(children))
	s.metrics.AddPruned(len(game.Moves)*len(frontier) - len(children))

	// Order only matters when nodes of different origins meet on a cell
	s.rand.Shuffle(len(children), func(i, j int) {
		children[i], children[j] = children[j], children[i]
	})

	for _, child := range children {
		switch board.evaluateNode(child) {
		case dropped:
			s.metrics.AddDropped()
		case replaced:
			s.metrics.AddReplaced()
		}
	}
	return board.retained(children)
}
