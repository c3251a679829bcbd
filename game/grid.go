package game

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Grid is a read-only occupancy snapshot. Build it once per tick.
type Grid struct {
	SizeX  int
	SizeY  int
	filled map[Point]struct{}
}

// Snapshot is the wire form of a grid: cell keys ("x-y") mapped to the ids
// that occupy them. Only key presence matters for occupancy.
type Snapshot struct {
	SizeX  int             `json:"sizeX"`
	SizeY  int             `json:"sizeY"`
	Filled json.RawMessage `json:"filled"`
}

func Key(p Point) string {
	return fmt.Sprintf("%d-%d", p.X, p.Y)
}

// ParseKey reverses Key. Negative coordinates are accepted.
func ParseKey(key string) (Point, bool) {
	if len(key) < 3 {
		return Point{}, false
	}
	sep := strings.Index(key[1:], "-")
	if sep < 0 {
		return Point{}, false
	}
	sep++
	x, err := strconv.Atoi(key[:sep])
	if err != nil {
		return Point{}, false
	}
	y, err := strconv.Atoi(key[sep+1:])
	if err != nil {
		return Point{}, false
	}
	p := Point{X: x, Y: y}
	// Only the canonical form names a cell: "01-2" and "+1-2" do not
	if Key(p) != key {
		return Point{}, false
	}
	return p, true
}

// NewGrid parses the filled-cell map of a snapshot. Every value must be a list
// of occupants. A malformed map yields a grid with no occupied cells rather
// than an error.
func NewGrid(sizeX, sizeY int, filled []byte) *Grid {
	var cells map[string][]json.RawMessage
	if err := json.Unmarshal(filled, &cells); err != nil {
		log.Debug().Err(err).Msg("malformed grid snapshot, treating every cell as free")
		cells = nil
	}

	g := &Grid{SizeX: sizeX, SizeY: sizeY, filled: make(map[Point]struct{}, len(cells))}
	for key := range cells {
		// Keys that are not coordinates can never match a lookup
		if p, ok := ParseKey(key); ok {
			g.filled[p] = struct{}{}
		}
	}
	return g
}

func NewGridFromPoints(sizeX, sizeY int, filled ...Point) *Grid {
	g := &Grid{SizeX: sizeX, SizeY: sizeY, filled: make(map[Point]struct{}, len(filled))}
	for _, p := range filled {
		g.filled[p] = struct{}{}
	}
	return g
}

func (s Snapshot) Grid() *Grid {
	return NewGrid(s.SizeX, s.SizeY, s.Filled)
}

// Snapshot encodes the grid in wire form. Occupant ids are not retained by a
// Grid, so every list is empty.
func (g *Grid) Snapshot() Snapshot {
	cells := make(map[string][]string, len(g.filled))
	for p := range g.filled {
		cells[Key(p)] = []string{}
	}
	filled, _ := json.Marshal(cells)
	return Snapshot{SizeX: g.SizeX, SizeY: g.SizeY, Filled: filled}
}

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.SizeX && p.Y < g.SizeY
}

func (g *Grid) Filled(p Point) bool {
	_, ok := g.filled[p]
	return ok
}

// Blocked reports whether p is occupied or out of bounds.
func (g *Grid) Blocked(p Point) bool {
	return !g.InBounds(p) || g.Filled(p)
}

func (g *Grid) Len() int {
	return len(g.filled)
}
