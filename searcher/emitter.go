package searcher

import (
	"sync"

	"tron/game"
)

// Emitter receives the best root move after each depth level. Implementations
// must return promptly: the search calls them synchronously.
type Emitter interface {
	Act(correlationID string, move game.Move, depth int)
}

type EmitterFunc func(correlationID string, move game.Move, depth int)

func (f EmitterFunc) Act(correlationID string, move game.Move, depth int) {
	f(correlationID, move, depth)
}

var Discard Emitter = EmitterFunc(func(string, game.Move, int) {})

// Latest keeps the most recent decision. Deeper levels overwrite shallower ones.
type Latest struct {
	mu    sync.Mutex
	move  game.Move
	depth int
	set   bool
}

func (l *Latest) Act(_ string, move game.Move, depth int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.move = move
	l.depth = depth
	l.set = true
}

// Decision returns the last move received and its depth. ok is false until
// the first decision arrives.
func (l *Latest) Decision() (move game.Move, depth int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.move, l.depth, l.set
}

type tee []Emitter

// Tee forwards every decision to each emitter in order.
func Tee(emitters ...Emitter) Emitter {
	return tee(emitters)
}

func (t tee) Act(correlationID string, move game.Move, depth int) {
	for _, e := range t {
		e.Act(correlationID, move, depth)
	}
}
