package searcher

import (
	"testing"

	"tron/game"

	"github.com/stretchr/testify/require"
)

func TestLatest(t *testing.T) {
	t.Run("empty until the first decision", func(t *testing.T) {
		var latest Latest

		_, _, ok := latest.Decision()

		require.False(t, ok)
	})

	t.Run("keeps the deepest decision of a search", func(t *testing.T) {
		var latest Latest
		grid := game.NewGridFromPoints(5, 5, game.Point{X: 2, Y: 3})

		NewSearcher().Play("corr", center, grid, 1, &latest)

		move, depth, ok := latest.Decision()
		require.True(t, ok)
		require.Equal(t, game.Starboard, move)
		require.Equal(t, 1, depth)
	})
}

func TestTee(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	var calls int
	counter := EmitterFunc(func(string, game.Move, int) { calls++ })

	NewSearcher().Play("corr", center, game.NewGridFromPoints(5, 5), 3, Tee(first, counter, second))

	require.Len(t, first.decisions, 4)
	require.Equal(t, first.decisions, second.decisions)
	require.Equal(t, 4, calls)
}
