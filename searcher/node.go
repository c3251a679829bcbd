package searcher

import (
	"tron/game"
)

type node struct {
	position game.Position
	depth    int
	move     game.Move // Move taken from the parent
	origin   game.Move // Root move credited with this node, "" at the root
}

// children returns the successors of n that land on free cells. The origin is
// fixed at the first hop and inherited unchanged afterwards.
func (n *node) children(grid *game.Grid) []*node {
	successors := n.position.Successors()
	children := make([]*node, 0, len(successors))
	for i, pos := range successors {
		if grid.Blocked(pos.Point()) {
			continue
		}
		move := game.Moves[i]
		origin := n.origin
		if origin == "" {
			origin = move
		}
		children = append(children, &node{
			position: pos,
			depth:    n.depth + 1,
			move:     move,
			origin:   origin,
		})
	}
	return children
}
