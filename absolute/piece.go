package absolute

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cerke/game"
)

type pieceKind uint8

const (
	noPiece pieceKind = iota
	tam2
	nonTam2
)

// Piece is either Tam2 or a piece owned by one side. The zero Piece is the
// empty square.
type Piece struct {
	kind  pieceKind
	color game.Color
	prof  game.Profession
	side  game.AbsoluteSide
}

// Tam2 belongs to neither side; both players can move it.
var Tam2 = Piece{kind: tam2}

func NewPiece(color game.Color, prof game.Profession, side game.AbsoluteSide) Piece {
	return Piece{kind: nonTam2, color: color, prof: prof, side: side}
}

func (p Piece) IsZero() bool {
	return p.kind == noPiece
}

func (p Piece) IsTam2() bool {
	return p.kind == tam2
}

// HasColor is false for Tam2, which has no color.
func (p Piece) HasColor(c game.Color) bool {
	return p.kind == nonTam2 && p.color == c
}

func (p Piece) HasProf(prof game.Profession) bool {
	return p.kind == nonTam2 && p.prof == prof
}

// HasSide is false for Tam2, which belongs to neither side.
func (p Piece) HasSide(side game.AbsoluteSide) bool {
	return p.kind == nonTam2 && p.side == side
}

// NonTam2 splits an owned piece into its parts. ok is false for Tam2 and for
// the empty square.
func (p Piece) NonTam2() (cp game.ColorAndProf, side game.AbsoluteSide, ok bool) {
	if p.kind != nonTam2 {
		return game.ColorAndProf{}, 0, false
	}
	return game.ColorAndProf{Color: p.color, Prof: p.prof}, p.side, true
}

// Flip hands an owned piece to the other side. Tam2 and the empty square are
// returned as they are.
func (p Piece) Flip() Piece {
	if p.kind != nonTam2 {
		return p
	}
	p.side = p.side.Opponent()
	return p
}

func (p Piece) String() string {
	switch p.kind {
	case tam2:
		return "皇"
	case nonTam2:
		return fmt.Sprintf("%s%s(%s)", p.color.Glyph(), p.prof.Glyph(), p.side)
	}
	return "."
}

type pieceJSON struct {
	Color game.Color        `json:"color"`
	Prof  game.Profession   `json:"prof"`
	Side  game.AbsoluteSide `json:"side"`
}

func (p Piece) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case tam2:
		return []byte(`"Tam2"`), nil
	case nonTam2:
		return json.Marshal(pieceJSON{Color: p.color, Prof: p.prof, Side: p.side})
	}
	return []byte("null"), nil
}

func (p *Piece) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*p = Piece{}
		return nil
	case bytes.Equal(b, []byte(`"Tam2"`)):
		*p = Tam2
		return nil
	}
	var v pieceJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decode piece: %w", err)
	}
	*p = NewPiece(v.Color, v.Prof, v.Side)
	return nil
}
