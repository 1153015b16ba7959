package perspective

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"cerke/absolute"
	"cerke/game"
	"cerke/relative"
)

func TestCoordExamples(t *testing.T) {
	require.Equal(t, absolute.Coord{Row: absolute.I, Column: absolute.Z},
		ToAbsoluteCoord(relative.Coord{2, 4}, IaIsDownAndPointsUpward))
	require.Equal(t, relative.Coord{2, 4},
		ToRelativeCoord(absolute.Coord{Row: absolute.I, Column: absolute.Z}, IaIsDownAndPointsUpward))
	require.Equal(t, relative.Coord{0, 0},
		ToRelativeCoord(absolute.Coord{Row: absolute.IA, Column: absolute.P}, IaIsUpAndPointsDownward))
}

func TestCoordRoundTrip(t *testing.T) {
	for _, p := range Perspectives() {
		seen := map[relative.Coord]bool{}
		for _, c := range absolute.AllCoords() {
			rel := ToRelativeCoord(c, p)
			require.True(t, rel.Valid())
			require.False(t, seen[rel], "%v maps to an already used square", c)
			seen[rel] = true
			require.Equal(t, c, ToAbsoluteCoord(rel, p))
		}
		for _, c := range relative.AllCoords() {
			require.Equal(t, c, ToRelativeCoord(ToAbsoluteCoord(c, p), p))
		}
	}
}

func TestFlippingPerspectiveRotates(t *testing.T) {
	for _, c := range absolute.AllCoords() {
		require.Equal(t,
			relative.RotateCoord(ToRelativeCoord(c, IaIsDownAndPointsUpward)),
			ToRelativeCoord(c, IaIsUpAndPointsDownward))
	}
}

func TestDistanceAgrees(t *testing.T) {
	all := absolute.AllCoords()
	for _, p := range Perspectives() {
		for _, a := range all {
			for _, b := range all[:20] {
				require.Equal(t,
					absolute.Distance(a, b),
					relative.Distance(ToRelativeCoord(a, p), ToRelativeCoord(b, p)))
			}
		}
	}
}

func TestSide(t *testing.T) {
	require.Equal(t, relative.Upward, ToRelativeSide(game.IASide, IaIsDownAndPointsUpward))
	require.Equal(t, relative.Downward, ToRelativeSide(game.ASide, IaIsDownAndPointsUpward))
	require.Equal(t, relative.Downward, ToRelativeSide(game.IASide, IaIsUpAndPointsDownward))
	require.Equal(t, relative.Upward, ToRelativeSide(game.ASide, IaIsUpAndPointsDownward))

	for _, p := range Perspectives() {
		for _, s := range []game.AbsoluteSide{game.IASide, game.ASide} {
			require.Equal(t, s, ToAbsoluteSide(ToRelativeSide(s, p), p))
			require.Equal(t, ToRelativeSide(s, p).Opponent(), ToRelativeSide(s, p.Flip()),
				"flipping the perspective swaps the mapping")
		}
	}
}

func TestPieceRoundTrip(t *testing.T) {
	pieces := []absolute.Piece{absolute.Tam2, {}}
	for _, c := range game.Colors() {
		for _, prof := range game.Professions() {
			pieces = append(pieces,
				absolute.NewPiece(c, prof, game.IASide),
				absolute.NewPiece(c, prof, game.ASide))
		}
	}
	for _, p := range Perspectives() {
		for _, piece := range pieces {
			rel := ToRelativePiece(piece, p)
			require.Equal(t, piece, ToAbsolutePiece(rel, p))
			require.Equal(t, piece.IsTam2(), rel.IsTam2())
		}
	}
	require.Equal(t,
		relative.NewPiece(game.Kok1, game.Uai1, relative.Upward),
		ToRelativePiece(absolute.NewPiece(game.Kok1, game.Uai1, game.IASide), IaIsDownAndPointsUpward))
}

func TestInitialBoardsAgree(t *testing.T) {
	require.True(t, absolute.InitialBoard().Equal(
		ToAbsoluteBoard(relative.InitialBoardBlackKingUpward(), IaIsDownAndPointsUpward)))
	require.Equal(t, relative.InitialBoardRedKingUpward(),
		ToRelativeBoard(absolute.InitialBoard(), IaIsUpAndPointsDownward))
}

func TestBoardRoundTrip(t *testing.T) {
	b := absolute.InitialBoard()
	b.Pop(absolute.Coord{Row: absolute.A, Column: absolute.K})
	b.Put(absolute.Coord{Row: absolute.U, Column: absolute.K}, absolute.NewPiece(game.Huok2, game.Dau2, game.ASide))

	for _, p := range Perspectives() {
		rel := ToRelativeBoard(b, p)
		require.Equal(t, b.Len(), rel.Len())
		require.True(t, b.Equal(ToAbsoluteBoard(rel, p)))
		require.Equal(t, rel, ToRelativeBoard(ToAbsoluteBoard(rel, p), p))
	}
}

func TestFieldRoundTrip(t *testing.T) {
	f := absolute.InitialField()
	f.InsertIntoHand(game.Kok1, game.Maun1, game.IASide)
	f.InsertIntoHand(game.Huok2, game.Kua2, game.ASide)
	f.InsertIntoHand(game.Huok2, game.Kua2, game.ASide)

	t.Run("IA down", func(t *testing.T) {
		rel := ToRelativeField(f, IaIsDownAndPointsUpward)
		require.Equal(t, game.Hand{{Color: game.Kok1, Prof: game.Maun1}}, rel.UpwardHand)
		require.Len(t, rel.DownwardHand, 2)
		require.True(t, f.Equal(ToAbsoluteField(rel, IaIsDownAndPointsUpward)))
	})

	t.Run("IA up swaps the hands", func(t *testing.T) {
		rel := ToRelativeField(f, IaIsUpAndPointsDownward)
		require.Equal(t, game.Hand{{Color: game.Kok1, Prof: game.Maun1}}, rel.DownwardHand)
		require.Len(t, rel.UpwardHand, 2)
		require.True(t, f.Equal(ToAbsoluteField(rel, IaIsUpAndPointsDownward)))
		require.True(t, rel.Equal(ToRelativeField(ToAbsoluteField(rel, IaIsUpAndPointsDownward), IaIsUpAndPointsDownward)))
	})

	t.Run("conversion does not alias hands", func(t *testing.T) {
		rel := ToRelativeField(f, IaIsDownAndPointsUpward)
		rel.UpwardHand[0] = game.ColorAndProf{Color: game.Huok2, Prof: game.Io}
		require.Equal(t, game.Maun1, f.IASideHand[0].Prof)
	})
}

func TestMoveRoundTrip(t *testing.T) {
	m := game.TamMoveStepsDuringLatter[absolute.Coord]{
		Src:        absolute.MustParseCoord("KE"),
		FirstDest:  absolute.MustParseCoord("KI"),
		Step:       absolute.MustParseCoord("LI"),
		SecondDest: absolute.MustParseCoord("LE"),
	}
	for _, p := range Perspectives() {
		require.Equal(t, game.Move[absolute.Coord](m), ToAbsoluteMove(ToRelativeMove(m, p), p))
	}
	require.Equal(t,
		game.Move[relative.Coord](game.TamMoveStepsDuringLatter[relative.Coord]{
			Src: relative.Coord{1, 0}, FirstDest: relative.Coord{2, 0}, Step: relative.Coord{2, 1}, SecondDest: relative.Coord{1, 1},
		}),
		ToRelativeMove(m, IaIsDownAndPointsUpward))
}

// Applying a move in either representation gives the same result.
func TestMoveApplicationCommutes(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	all := absolute.AllCoords()

	for _, p := range Perspectives() {
		abs := absolute.InitialField()
		side := game.ASide
		for i := 0; i < 3000; i++ {
			src, dest := all[r.Intn(len(all))], all[r.Intn(len(all))]
			rel := ToRelativeField(abs, p)

			nextAbs, errAbs := abs.MoveNonTam2Piece(src, dest, side)
			nextRel, errRel := rel.MoveNonTam2Piece(ToRelativeCoord(src, p), ToRelativeCoord(dest, p), ToRelativeSide(side, p))

			if errAbs != nil {
				require.Error(t, errRel)
				var a, b *game.MoveError
				require.True(t, errors.As(errAbs, &a))
				require.True(t, errors.As(errRel, &b))
				require.Equal(t, a.Err, b.Err)
				continue
			}
			require.NoError(t, errRel)
			require.True(t, nextAbs.Equal(ToAbsoluteField(nextRel, p)))
			abs = nextAbs
			side = side.Opponent()
		}
	}
}
