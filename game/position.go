package game

import (
	"errors"
	"fmt"
)

var ErrInvalidHeading = errors.New("previous cell is not one orthogonal step away")

// Point is a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return Key(p)
}

// Position is a cell together with the cell the agent arrived from.
// The heading is the unit vector from Prev to the current cell.
type Position struct {
	X    int   `json:"x"`
	Y    int   `json:"y"`
	Prev Point `json:"prev"`
}

// NewPosition builds a position and rejects headings that are not a single
// orthogonal step.
func NewPosition(x, y, prevX, prevY int) (Position, error) {
	p := Position{X: x, Y: y, Prev: Point{X: prevX, Y: prevY}}
	if err := p.Validate(); err != nil {
		return Position{}, err
	}
	return p, nil
}

func (p Position) Validate() error {
	dx, dy := p.Heading()
	if abs(dx)+abs(dy) != 1 {
		return fmt.Errorf("position (%d,%d) from (%d,%d): %w", p.X, p.Y, p.Prev.X, p.Prev.Y, ErrInvalidHeading)
	}
	return nil
}

func (p Position) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

func (p Position) Heading() (dx, dy int) {
	return p.X - p.Prev.X, p.Y - p.Prev.Y
}

// Successors returns the FORWARD, STARBOARD and LARBOARD successors, in the
// order of Moves. A horizontal heading takes precedence over a vertical one.
func (p Position) Successors() [3]Position {
	cur := p.Point()
	var next [3]Position
	if dx := p.X - p.Prev.X; dx != 0 {
		next[0] = Position{X: p.X + dx, Y: p.Y, Prev: cur}
		next[1] = Position{X: p.X, Y: p.Y + dx, Prev: cur}
		next[2] = Position{X: p.X, Y: p.Y - dx, Prev: cur}
		return next
	}
	dy := p.Y - p.Prev.Y
	next[0] = Position{X: p.X, Y: p.Y + dy, Prev: cur}
	next[1] = Position{X: p.X - dy, Y: p.Y, Prev: cur}
	next[2] = Position{X: p.X + dy, Y: p.Y, Prev: cur}
	return next
}

func (p Position) Next(m Move) Position {
	return p.Successors()[m.index()]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
