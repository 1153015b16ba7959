// Package gametest runs the same property suite against every game.Board
// implementation.
package gametest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cerke/game"
)

// RunBoardContract checks the peek/pop/put/assert contract. newBoard must
// return an empty board; coords must hold at least two distinct squares and
// pieces at least two distinct non-zero pieces.
func RunBoardContract[C comparable, P comparable](t *testing.T, newBoard func() game.Board[C, P], coords []C, pieces []P) {
	t.Helper()
	require.GreaterOrEqual(t, len(coords), 2)
	require.GreaterOrEqual(t, len(pieces), 2)
	var none P

	t.Run("fresh board is empty everywhere", func(t *testing.T) {
		b := newBoard()
		for _, c := range coords {
			p, ok := b.Peek(c)
			require.False(t, ok, "square %v should be empty", c)
			require.Equal(t, none, p)
		}
	})

	t.Run("put then peek", func(t *testing.T) {
		b := newBoard()
		b.Put(coords[0], pieces[0])

		p, ok := b.Peek(coords[0])
		require.True(t, ok)
		require.Equal(t, pieces[0], p)

		_, ok = b.Peek(coords[1])
		require.False(t, ok, "other squares should stay empty")
	})

	t.Run("peek has no side effect", func(t *testing.T) {
		b := newBoard()
		b.Put(coords[0], pieces[0])
		b.Peek(coords[0])
		b.Peek(coords[0])

		p, ok := b.Peek(coords[0])
		require.True(t, ok)
		require.Equal(t, pieces[0], p)
	})

	t.Run("put overwrites unconditionally", func(t *testing.T) {
		b := newBoard()
		b.Put(coords[0], pieces[0])
		b.Put(coords[0], pieces[1])

		p, ok := b.Peek(coords[0])
		require.True(t, ok)
		require.Equal(t, pieces[1], p)
	})

	t.Run("put of the zero piece clears", func(t *testing.T) {
		b := newBoard()
		b.Put(coords[0], pieces[0])
		b.Put(coords[0], none)

		_, ok := b.Peek(coords[0])
		require.False(t, ok)
	})

	t.Run("pop is idempotent", func(t *testing.T) {
		b := newBoard()
		b.Put(coords[1], pieces[1])

		p, ok := b.Pop(coords[1])
		require.True(t, ok)
		require.Equal(t, pieces[1], p)

		p, ok = b.Pop(coords[1])
		require.False(t, ok, "second pop should find nothing")
		require.Equal(t, none, p)

		_, ok = b.Peek(coords[1])
		require.False(t, ok)
	})

	t.Run("every square holds its own piece", func(t *testing.T) {
		b := newBoard()
		for i, c := range coords {
			b.Put(c, pieces[i%len(pieces)])
		}
		for i, c := range coords {
			p, ok := b.Peek(c)
			require.True(t, ok)
			require.Equal(t, pieces[i%len(pieces)], p)
		}
	})

	t.Run("assertions", func(t *testing.T) {
		b := newBoard()
		b.Put(coords[0], pieces[0])

		require.NotPanics(t, func() { b.AssertOccupied(coords[0]) })
		require.NotPanics(t, func() { b.AssertEmpty(coords[1]) })
		require.Panics(t, func() { b.AssertEmpty(coords[0]) })
		require.Panics(t, func() { b.AssertOccupied(coords[1]) })
	})
}
