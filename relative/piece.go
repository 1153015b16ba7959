package relative

import (
	"fmt"

	"cerke/game"
)

// Side is relative to the viewer.
type Side uint8

const (
	Upward   Side = iota // the viewer's pieces
	Downward             // the opponent's pieces
)

func (s Side) Opponent() Side {
	if s == Upward {
		return Downward
	}
	return Upward
}

func (s Side) String() string {
	if s == Upward {
		return "Upward"
	}
	return "Downward"
}

func (s Side) arrow() string {
	if s == Upward {
		return "↑"
	}
	return "↓"
}

type pieceKind uint8

const (
	noPiece pieceKind = iota
	tam2
	nonTam2
)

// Piece mirrors absolute.Piece with a relative owner. The zero Piece is the
// empty square.
type Piece struct {
	kind  pieceKind
	color game.Color
	prof  game.Profession
	side  Side
}

var Tam2 = Piece{kind: tam2}

func NewPiece(color game.Color, prof game.Profession, side Side) Piece {
	return Piece{kind: nonTam2, color: color, prof: prof, side: side}
}

func (p Piece) IsZero() bool { return p.kind == noPiece }
func (p Piece) IsTam2() bool { return p.kind == tam2 }

func (p Piece) HasColor(c game.Color) bool {
	return p.kind == nonTam2 && p.color == c
}

func (p Piece) HasProf(prof game.Profession) bool {
	return p.kind == nonTam2 && p.prof == prof
}

func (p Piece) HasSide(side Side) bool {
	return p.kind == nonTam2 && p.side == side
}

func (p Piece) NonTam2() (cp game.ColorAndProf, side Side, ok bool) {
	if p.kind != nonTam2 {
		return game.ColorAndProf{}, 0, false
	}
	return game.ColorAndProf{Color: p.color, Prof: p.prof}, p.side, true
}

// Flip turns an owned piece around; Tam2 and the empty square stay as they are.
func (p Piece) Flip() Piece {
	if p.kind != nonTam2 {
		return p
	}
	p.side = p.side.Opponent()
	return p
}

// String renders e.g. "赤将↓", "皇", or "." for the empty square.
func (p Piece) String() string {
	switch p.kind {
	case tam2:
		return "皇"
	case nonTam2:
		return p.color.Glyph() + p.prof.Glyph() + p.side.arrow()
	}
	return "."
}

// ParsePiece reads the form produced by Piece.String.
func ParsePiece(s string) (Piece, error) {
	switch s {
	case ".":
		return Piece{}, nil
	case "皇":
		return Tam2, nil
	}
	runes := []rune(s)
	if len(runes) != 3 {
		return Piece{}, fmt.Errorf("bad piece %q", s)
	}
	color, err := game.ParseColor(string(runes[0]))
	if err != nil {
		return Piece{}, err
	}
	prof, err := game.ParseProfession(string(runes[1]))
	if err != nil {
		return Piece{}, err
	}
	var side Side
	switch runes[2] {
	case '↑':
		side = Upward
	case '↓':
		side = Downward
	default:
		return Piece{}, fmt.Errorf("bad side in piece %q", s)
	}
	return NewPiece(color, prof, side), nil
}
