package searcher

import (
	"tron/game"
)

type outcome int

const (
	credited outcome = iota // First node to reach the cell
	replaced                // Shallower node took the cell over
	dropped                 // Cell already held at the same or a shallower depth
)

// scoreboard is the per-tick search state. It is discarded after the last
// decision of the tick.
type scoreboard struct {
	scores   map[game.Move]int
	explored map[game.Point]*node
}

func newScoreboard() *scoreboard {
	scores := make(map[game.Move]int, len(game.Moves))
	for _, m := range game.Moves {
		scores[m] = 0
	}
	return &scoreboard{
		scores:   scores,
		explored: map[game.Point]*node{},
	}
}

// evaluateNode credits n's origin with n's depth when n is the first node on
// its cell. A strictly shallower node moves the credit over to its own origin.
// Every other node is dropped without touching the scores.
func (s *scoreboard) evaluateNode(n *node) outcome {
	key := n.position.Point()
	old, ok := s.explored[key]
	switch {
	case !ok:
		s.scores[n.origin] += n.depth
		s.explored[key] = n
		return credited
	case n.depth < old.depth:
		s.scores[old.origin] -= old.depth
		s.scores[n.origin] += n.depth
		s.explored[key] = n
		return replaced
	default:
		return dropped
	}
}

// evaluateContext returns the move with the strictly highest score. Ties go
// to the earliest move in game.Moves.
func (s *scoreboard) evaluateContext() game.Move {
	best := game.Moves[0]
	for _, m := range game.Moves[1:] {
		if s.scores[m] > s.scores[best] {
			best = m
		}
	}
	return best
}

// retained keeps the nodes that still hold their cell. They form the next
// frontier. Dropped and replaced nodes are not expanded again.
func (s *scoreboard) retained(nodes []*node) []*node {
	frontier := make([]*node, 0, len(nodes))
	for _, n := range nodes {
		if s.explored[n.position.Point()] == n {
			frontier = append(frontier, n)
		}
	}
	return frontier
}

func (s *scoreboard) snapshot() map[game.Move]int {
	scores := make(map[game.Move]int, len(s.scores))
	for m, score := range s.scores {
		scores[m] = score
	}
	return scores
}
