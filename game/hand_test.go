package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHand(t *testing.T) {
	redKing := ColorAndProf{Color: Kok1, Prof: Io}
	blackPawn := ColorAndProf{Color: Huok2, Prof: Kauk2}

	t.Run("insert keeps duplicates", func(t *testing.T) {
		h := Hand{}.Insert(blackPawn).Insert(blackPawn)
		require.Equal(t, 2, h.Count(blackPawn))
		require.Equal(t, 2, h.Len())
	})

	t.Run("remove drops exactly one match", func(t *testing.T) {
		h := Hand{blackPawn, redKing, blackPawn}
		got, ok := h.Remove(blackPawn)

		require.True(t, ok)
		require.Equal(t, 1, got.Count(blackPawn))
		require.Equal(t, 1, got.Count(redKing))
		require.Equal(t, Hand{blackPawn, redKing, blackPawn}, h, "receiver should be unchanged")
	})

	t.Run("remove without a match", func(t *testing.T) {
		h := Hand{redKing}
		got, ok := h.Remove(blackPawn)

		require.False(t, ok)
		require.Equal(t, h, got)
	})

	t.Run("insert does not write into a shared backing array", func(t *testing.T) {
		base := make(Hand, 1, 4)
		base[0] = redKing
		a := base.Insert(blackPawn)
		b := base.Insert(redKing)

		require.Equal(t, Hand{redKing, blackPawn}, a)
		require.Equal(t, Hand{redKing, redKing}, b)
	})

	t.Run("equal ignores order", func(t *testing.T) {
		require.True(t, Hand{redKing, blackPawn}.Equal(Hand{blackPawn, redKing}))
		require.False(t, Hand{redKing, redKing}.Equal(Hand{redKing, blackPawn}))
		require.True(t, Hand{}.Equal(nil))
	})
}

func TestParseColorAndProfession(t *testing.T) {
	for _, c := range Colors() {
		got, err := ParseColor(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)

		got, err = ParseColor(c.Glyph())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
	for _, p := range Professions() {
		got, err := ParseProfession(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)

		got, err = ParseProfession(p.Glyph())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}

	_, err := ParseColor("kok1")
	require.ErrorIs(t, err, ErrUnknownColor)
	_, err = ParseProfession("")
	require.ErrorIs(t, err, ErrUnknownProfession)
	require.Len(t, Professions(), 10)
}

func TestAbsoluteSideOpponentIsInvolution(t *testing.T) {
	for _, s := range []AbsoluteSide{IASide, ASide} {
		require.NotEqual(t, s, s.Opponent())
		require.Equal(t, s, s.Opponent().Opponent())
	}
}

func TestMapMoveKeepsVariant(t *testing.T) {
	double := func(c int) int { return c * 2 }

	moves := []Move[int]{
		NonTamMoveSrcDst[int]{Src: 1, Dest: 2, IsWaterEntryCiurl: true},
		NonTamMoveSrcStepDstFinite[int]{Src: 1, Step: 2, Dest: 3},
		NonTamMoveFromHopZuo[int]{Color: Huok2, Prof: Gua2, Dest: 4},
		InfAfterStep[int]{Src: 1, Step: 2, PlannedDirection: 3},
		TamMoveNoStep[int]{Src: 1, FirstDest: 2, SecondDest: 3},
		TamMoveStepsDuringFormer[int]{Src: 1, Step: 2, FirstDest: 3, SecondDest: 4},
		TamMoveStepsDuringLatter[int]{Src: 1, FirstDest: 2, Step: 3, SecondDest: 4},
	}
	expected := []Move[int]{
		NonTamMoveSrcDst[int]{Src: 2, Dest: 4, IsWaterEntryCiurl: true},
		NonTamMoveSrcStepDstFinite[int]{Src: 2, Step: 4, Dest: 6},
		NonTamMoveFromHopZuo[int]{Color: Huok2, Prof: Gua2, Dest: 8},
		InfAfterStep[int]{Src: 2, Step: 4, PlannedDirection: 6},
		TamMoveNoStep[int]{Src: 2, FirstDest: 4, SecondDest: 6},
		TamMoveStepsDuringFormer[int]{Src: 2, Step: 4, FirstDest: 6, SecondDest: 8},
		TamMoveStepsDuringLatter[int]{Src: 2, FirstDest: 4, Step: 6, SecondDest: 8},
	}
	for i, m := range moves {
		require.Equal(t, expected[i], MapMove(m, double))
	}
	require.True(t, IsTamMove[int](moves[4]))
	require.False(t, IsTamMove[int](moves[0]))
}
