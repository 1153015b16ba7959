package communication

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"cerke/absolute"
	"cerke/game"
	"cerke/perspective"
)

func c(s string) absolute.Coord {
	return absolute.MustParseCoord(s)
}

func TestMoveRequest(t *testing.T) {
	moves := []game.Move[absolute.Coord]{
		game.NonTamMoveSrcDst[absolute.Coord]{Src: c("KA"), Dest: c("LE"), IsWaterEntryCiurl: true},
		game.NonTamMoveSrcStepDstFinite[absolute.Coord]{Src: c("KA"), Step: c("LE"), Dest: c("NI")},
		game.NonTamMoveFromHopZuo[absolute.Coord]{Color: game.Huok2, Prof: game.Gua2, Dest: c("TU")},
		game.InfAfterStep[absolute.Coord]{Src: c("ZI"), Step: c("ZU"), PlannedDirection: c("ZY")},
		game.TamMoveNoStep[absolute.Coord]{Src: c("ZO"), FirstDest: c("ZU"), SecondDest: c("ZI")},
		game.TamMoveStepsDuringFormer[absolute.Coord]{Src: c("ZO"), Step: c("TU"), FirstDest: c("NI"), SecondDest: c("NU")},
		game.TamMoveStepsDuringLatter[absolute.Coord]{Src: c("ZO"), FirstDest: c("TU"), Step: c("NI"), SecondDest: c("KA")},
	}
	for _, m := range moves {
		req := NewMoveRequest(m, game.ASide)
		t.Run(req.Kind, func(t *testing.T) {
			b, err := json.Marshal(req)
			require.NoError(t, err)

			var decoded MoveRequest
			require.NoError(t, json.Unmarshal(b, &decoded))

			got, side, err := decoded.Move()
			require.NoError(t, err)
			require.Equal(t, m, got)
			require.Equal(t, game.ASide, side)
		})
	}
}

func TestMoveRequestWireFormat(t *testing.T) {
	var req MoveRequest
	err := json.Unmarshal([]byte(`{"side":"IASide","kind":"from_hop1zuo1","color":"赤","prof":"Kauk2","dest":"LIA"}`), &req)
	require.NoError(t, err)

	m, side, err := req.Move()
	require.NoError(t, err)
	require.Equal(t, game.NonTamMoveFromHopZuo[absolute.Coord]{Color: game.Kok1, Prof: game.Kauk2, Dest: c("LIA")}, m)
	require.Equal(t, game.IASide, side)
}

func TestMoveRequestErrors(t *testing.T) {
	tests := []struct {
		name string
		req  MoveRequest
	}{
		{"unknown kind", MoveRequest{Side: ptr(game.ASide), Kind: "teleport"}},
		{"missing side", MoveRequest{Kind: KindSrcDst, Src: ptr(c("ZI")), Dest: ptr(c("ZU"))}},
		{"missing dest", MoveRequest{Side: ptr(game.ASide), Kind: KindSrcDst, Src: ptr(c("KA"))}},
		{"missing step", MoveRequest{Side: ptr(game.ASide), Kind: KindSrcStepDstFinite, Src: ptr(c("KA")), Dest: ptr(c("KE"))}},
		{"missing prof", MoveRequest{Side: ptr(game.ASide), Kind: KindFromHopZuo, Dest: ptr(c("KA")), Color: ptr(game.Kok1)}},
		{"missing second dest", MoveRequest{Side: ptr(game.ASide), Kind: KindTamNoStep, Src: ptr(c("ZO")), FirstDest: ptr(c("ZU"))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.req.Move()
			require.ErrorIs(t, err, ErrBadMove)
		})
	}

	t.Run("side absent on the wire", func(t *testing.T) {
		var req MoveRequest
		require.NoError(t, json.Unmarshal([]byte(`{"kind":"src_dst","src":"ZI","dest":"ZU"}`), &req))
		_, _, err := req.Move()
		require.ErrorIs(t, err, ErrBadMove)
		require.ErrorContains(t, err, "side")
	})
}

func TestRelativeField(t *testing.T) {
	f := absolute.InitialField()
	f, err := f.MoveNonTam2Piece(c("KI"), c("KAI"), game.ASide)
	require.NoError(t, err)

	for _, p := range perspective.Perspectives() {
		t.Run(p.String(), func(t *testing.T) {
			rf := NewRelativeField(f, p)
			require.Len(t, rf.Rows, 9)

			b, err := json.Marshal(rf)
			require.NoError(t, err)
			var decoded RelativeField
			require.NoError(t, json.Unmarshal(b, &decoded))

			got, err := decoded.Field()
			require.NoError(t, err)
			require.True(t, perspective.ToRelativeField(f, p).Equal(got))
			require.True(t, f.Equal(perspective.ToAbsoluteField(got, p)))
		})
	}
}
