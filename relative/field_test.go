package relative

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"cerke/game"
)

func TestMoveNonTam2Piece(t *testing.T) {
	tests := []struct {
		name      string
		src, dest Coord
		side      Side
		wantErr   error
	}{
		{"empty src", Coord{3, 0}, Coord{4, 0}, Upward, game.ErrEmptySource},
		{"Tam2 at src", Coord{4, 4}, Coord{3, 3}, Upward, game.ErrSourceIsTam2},
		{"opponent's piece at src", Coord{2, 0}, Coord{3, 0}, Upward, game.ErrSourceIsOpponentOwned},
		{"capturing Tam2", Coord{6, 4}, Coord{4, 4}, Upward, game.ErrCannotCaptureTam2},
		{"capturing an ally", Coord{6, 0}, Coord{6, 1}, Upward, game.ErrCannotCaptureOwn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := InitialField()
			before := f.Clone()

			_, err := f.MoveNonTam2Piece(tt.src, tt.dest, tt.side)

			require.ErrorIs(t, err, tt.wantErr)
			require.True(t, before.Equal(f), "input should be untouched")
		})
	}

	t.Run("onto an empty square", func(t *testing.T) {
		f := InitialField()
		piece, _ := f.Board.Peek(Coord{6, 0})

		got, err := f.MoveNonTam2Piece(Coord{6, 0}, Coord{5, 0}, Upward)

		require.NoError(t, err)
		_, ok := got.Board.Peek(Coord{6, 0})
		require.False(t, ok)
		moved, _ := got.Board.Peek(Coord{5, 0})
		require.Equal(t, piece, moved)
		require.Empty(t, got.UpwardHand)
		require.Empty(t, got.DownwardHand)

		_, ok = f.Board.Peek(Coord{6, 0})
		require.True(t, ok, "input should be untouched")
	})

	t.Run("capture goes into the mover's hand", func(t *testing.T) {
		f := InitialField()

		got, err := f.MoveNonTam2Piece(Coord{2, 1}, Coord{6, 1}, Downward)

		require.NoError(t, err)
		require.Equal(t, game.Hand{{Color: game.Kok1, Prof: game.Kauk2}}, got.DownwardHand)
		require.Empty(t, got.UpwardHand)
		require.Equal(t, f.Board.Len()-1, got.Board.Len())
		require.Equal(t, f.Count(), got.Count())
	})
}

func TestParachute(t *testing.T) {
	f := InitialField()
	f.InsertIntoHand(game.Kok1, game.Dau2, Upward)

	_, ok := f.Parachute(game.Huok2, game.Dau2, Upward, Coord{4, 0})
	require.False(t, ok, "no matching color")

	_, ok = f.Parachute(game.Kok1, game.Dau2, Downward, Coord{4, 0})
	require.False(t, ok, "piece belongs to the other hand")

	_, ok = f.Parachute(game.Kok1, game.Dau2, Upward, Coord{6, 0})
	require.False(t, ok, "occupied destination")

	got, ok := f.Parachute(game.Kok1, game.Dau2, Upward, Coord{4, 0})
	require.True(t, ok)
	require.Empty(t, got.UpwardHand)
	p, _ := got.Board.Peek(Coord{4, 0})
	require.Equal(t, NewPiece(game.Kok1, game.Dau2, Upward), p)
	require.Len(t, f.UpwardHand, 1, "input should be untouched")
}

func TestRandomActionsKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	all := AllCoords()
	f := InitialField()
	total := f.Count()
	side := Upward

	for i := 0; i < 5000; i++ {
		dest := all[r.Intn(len(all))]
		if hand := f.HandOf(side); hand.Len() > 0 && r.Intn(4) == 0 {
			cp := hand[r.Intn(hand.Len())]
			if next, ok := f.Parachute(cp.Color, cp.Prof, side, dest); ok {
				f = next
				side = side.Opponent()
			}
			continue
		}
		next, err := f.MoveNonTam2Piece(all[r.Intn(len(all))], dest, side)
		if err != nil {
			continue
		}
		f = next
		side = side.Opponent()

		require.Equal(t, 1, f.Board.CountTam2())
		require.Equal(t, total, f.Count())
	}
}
