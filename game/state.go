package game

import "slices"

// Draw is the winner of a game in which the last players crashed together.
const Draw = "draw"

// Player is one light cycle in the arena.
type Player struct {
	ID       string
	Position Position
	Alive    bool
	Length   int // Cells in the trail, head included
}

// State is an immutable snapshot of the arena. Play always returns a new copy.
type State struct {
	Board   *Board
	Players []Player
	Turn    int
}

// NewState spreads the players along the horizontal midline, alternating
// between heading up and heading down.
func NewState(width, height int, ids []string) *State {
	board := NewBoard(width, height)
	players := make([]Player, len(ids))
	y := height / 2
	for i, id := range ids {
		x := (i + 1) * width / (len(ids) + 1)
		prevY := y - 1
		if i%2 == 1 {
			prevY = y + 1
		}
		players[i] = Player{
			ID:       id,
			Position: Position{X: x, Y: y, Prev: Point{X: x, Y: prevY}},
			Alive:    true,
			Length:   1,
		}
		board.Occupy(id, players[i].Position.Point())
	}
	return &State{Board: board, Players: players}
}

func (s *State) Copy() *State {
	players := make([]Player, len(s.Players))
	copy(players, s.Players)
	return &State{
		Board:   s.Board.Copy(),
		Players: players,
		Turn:    s.Turn,
	}
}

func (s *State) Player(id string) (Player, bool) {
	i := slices.IndexFunc(s.Players, func(p Player) bool { return p.ID == id })
	if i < 0 {
		return Player{}, false
	}
	return s.Players[i], true
}

func (s *State) Alive() []Player {
	alive := make([]Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	return alive
}

// Play moves every living player at once. Players without an entry in moves
// keep going forward. A player crashes into walls, into any occupied cell and
// into another player entering the same cell on the same turn.
func (s *State) Play(moves map[string]Move) *State {
	next := s.Copy()
	next.Turn++

	targets := map[Point]int{}
	heads := make([]Position, len(next.Players))
	for i, p := range next.Players {
		if !p.Alive {
			continue
		}
		move, ok := moves[p.ID]
		if !ok {
			move = Forward
		}
		heads[i] = p.Position.Next(move)
		targets[heads[i].Point()]++
	}

	for i := range next.Players {
		p := &next.Players[i]
		if !p.Alive {
			continue
		}
		head := heads[i].Point()
		if s.Board.Blocked(head) || targets[head] > 1 {
			p.Alive = false
			continue
		}
		p.Position = heads[i]
		p.Length++
	}

	for _, p := range next.Players {
		if p.Alive {
			next.Board.Occupy(p.ID, p.Position.Point())
		}
	}
	return next
}

// Over reports whether no more than one player is left, or nobody at all in a
// single-player game.
func (s *State) Over() bool {
	alive := len(s.Alive())
	if len(s.Players) == 1 {
		return alive == 0
	}
	return alive <= 1
}

// Winner is "" while the game runs, the survivor's id, or Draw.
func (s *State) Winner() string {
	if !s.Over() {
		return ""
	}
	if alive := s.Alive(); len(alive) == 1 {
		return alive[0].ID
	}
	return Draw
}
