package game

import "fmt"

// Move is a turn relative to the current heading.
type Move string

const (
	Forward   Move = "FORWARD"
	Starboard Move = "STARBOARD"
	Larboard  Move = "LARBOARD"
)

// Moves is the fixed enumeration order. Successors and tie-breaks follow it.
var Moves = [3]Move{Forward, Starboard, Larboard}

func ParseMove(s string) (Move, error) {
	switch m := Move(s); m {
	case Forward, Starboard, Larboard:
		return m, nil
	}
	return "", fmt.Errorf("unknown move %q", s)
}

func (m Move) index() int {
	switch m {
	case Starboard:
		return 1
	case Larboard:
		return 2
	default:
		return 0
	}
}

func (m Move) String() string {
	return string(m)
}
