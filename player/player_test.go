package player

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cerke/absolute"
	"cerke/game"
)

func TestCandidates(t *testing.T) {
	t.Run("initial field has no parachutes", func(t *testing.T) {
		f := absolute.InitialField()
		moves := Candidates(f, game.IASide)

		require.NotEmpty(t, moves)
		for _, m := range moves {
			src, ok := m.(game.NonTamMoveSrcDst[absolute.Coord])
			require.True(t, ok, "unexpected move %T", m)
			p, _ := f.Board.Peek(src.Src)
			require.True(t, p.HasSide(game.IASide))
		}
	})

	t.Run("every candidate is accepted", func(t *testing.T) {
		f := absolute.InitialField()
		f, err := f.MoveNonTam2Piece(absolute.MustParseCoord("KI"), absolute.MustParseCoord("KAI"), game.ASide)
		require.NoError(t, err)

		parachutes := 0
		for _, m := range Candidates(f, game.ASide) {
			switch m := m.(type) {
			case game.NonTamMoveSrcDst[absolute.Coord]:
				_, err := f.MoveNonTam2Piece(m.Src, m.Dest, game.ASide)
				require.NoError(t, err, "%+v", m)
			case game.NonTamMoveFromHopZuo[absolute.Coord]:
				parachutes++
				_, ok := f.Parachute(m.Color, m.Prof, game.ASide, m.Dest)
				require.True(t, ok, "%+v", m)
			default:
				t.Fatalf("unexpected move %T", m)
			}
		}
		require.Equal(t, 81-f.Board.Len(), parachutes)
	})

	t.Run("duplicate hand pieces are offered once", func(t *testing.T) {
		f := absolute.Field{Board: absolute.NewBoard()}
		f.InsertIntoHand(game.Kok1, game.Kauk2, game.IASide)
		f.InsertIntoHand(game.Kok1, game.Kauk2, game.IASide)

		require.Len(t, Candidates(f, game.IASide), 81)
		require.Empty(t, Candidates(f, game.ASide))
	})
}

func TestRandom(t *testing.T) {
	f := absolute.InitialField()

	a := NewRandom(game.ASide, 42)
	b := NewRandom(game.ASide, 42)
	require.Equal(t, game.ASide, a.Side())
	for i := 0; i < 10; i++ {
		ma, ok := a.Choose(f)
		require.True(t, ok)
		mb, _ := b.Choose(f)
		require.Equal(t, ma, mb, "same seed should give the same choices")
	}

	_, ok := NewRandom(game.IASide, 1).Choose(absolute.Field{Board: absolute.NewBoard()})
	require.False(t, ok)
}
