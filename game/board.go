package game

import "encoding/json"

// Board is the mutable arena: every cell ever visited keeps the ids of the
// players that passed through it.
type Board struct {
	Width  int
	Height int
	cells  map[Point][]string
}

func NewBoard(width, height int) *Board {
	return &Board{
		Width:  width,
		Height: height,
		cells:  map[Point][]string{},
	}
}

func (b *Board) Occupy(owner string, p Point) {
	b.cells[p] = append(b.cells[p], owner)
}

func (b *Board) Owners(p Point) []string {
	return b.cells[p]
}

func (b *Board) Blocked(p Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= b.Width || p.Y >= b.Height {
		return true
	}
	_, ok := b.cells[p]
	return ok
}

func (b *Board) Copy() *Board {
	cells := make(map[Point][]string, len(b.cells))
	for p, owners := range b.cells {
		ownersCopy := make([]string, len(owners))
		copy(ownersCopy, owners)
		cells[p] = ownersCopy
	}
	return &Board{Width: b.Width, Height: b.Height, cells: cells}
}

// Grid freezes the current occupancy into a read-only grid.
func (b *Board) Grid() *Grid {
	g := NewGridFromPoints(b.Width, b.Height)
	for p := range b.cells {
		g.filled[p] = struct{}{}
	}
	return g
}

func (b *Board) Snapshot() Snapshot {
	cells := make(map[string][]string, len(b.cells))
	for p, owners := range b.cells {
		cells[Key(p)] = owners
	}
	filled, _ := json.Marshal(cells)
	return Snapshot{SizeX: b.Width, SizeY: b.Height, Filled: filled}
}

func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Snapshot())
}
