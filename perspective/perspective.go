// Package perspective converts between the absolute and the relative
// representations. Fixing a Perspective fixes where the IA row is drawn and
// therefore which absolute side points upward.
package perspective

import (
	"errors"
	"fmt"

	"cerke/absolute"
	"cerke/game"
	"cerke/relative"
)

var ErrUnknownPerspective = errors.New("unknown perspective")

type Perspective uint8

const (
	// IA is the lowermost row; IASide's pieces point upward (the viewer).
	IaIsDownAndPointsUpward Perspective = iota
	// IA is the uppermost row; IASide's pieces point downward (the opponent).
	IaIsUpAndPointsDownward
)

func (p Perspective) IaIsDown() bool {
	return p == IaIsDownAndPointsUpward
}

// Flip returns the view from the other seat.
func (p Perspective) Flip() Perspective {
	if p.IaIsDown() {
		return IaIsUpAndPointsDownward
	}
	return IaIsDownAndPointsUpward
}

func (p Perspective) String() string {
	if p.IaIsDown() {
		return "IaIsDownAndPointsUpward"
	}
	return "IaIsUpAndPointsDownward"
}

func (p Perspective) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Perspective) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Parse accepts the full names or the short forms "ia-down" and "ia-up".
func Parse(s string) (Perspective, error) {
	switch s {
	case "IaIsDownAndPointsUpward", "ia-down":
		return IaIsDownAndPointsUpward, nil
	case "IaIsUpAndPointsDownward", "ia-up":
		return IaIsUpAndPointsDownward, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPerspective, s)
}

// Perspectives lists both values.
func Perspectives() []Perspective {
	return []Perspective{IaIsDownAndPointsUpward, IaIsUpAndPointsDownward}
}

func ToRelativeCoord(c absolute.Coord, p Perspective) relative.Coord {
	row, col := int(c.Row), int(c.Column)
	if p.IaIsDown() {
		return relative.Coord{row, col}
	}
	return relative.Coord{8 - row, 8 - col}
}

func ToAbsoluteCoord(c relative.Coord, p Perspective) absolute.Coord {
	row, col := c[0], c[1]
	if !p.IaIsDown() {
		row, col = 8-row, 8-col
	}
	return absolute.Coord{Row: absolute.Row(row), Column: absolute.Column(col)}
}

func ToRelativeSide(s game.AbsoluteSide, p Perspective) relative.Side {
	if (s == game.IASide) == p.IaIsDown() {
		return relative.Upward
	}
	return relative.Downward
}

func ToAbsoluteSide(s relative.Side, p Perspective) game.AbsoluteSide {
	if (s == relative.Upward) == p.IaIsDown() {
		return game.IASide
	}
	return game.ASide
}

func ToRelativePiece(piece absolute.Piece, p Perspective) relative.Piece {
	if piece.IsTam2() {
		return relative.Tam2
	}
	cp, side, ok := piece.NonTam2()
	if !ok {
		return relative.Piece{}
	}
	return relative.NewPiece(cp.Color, cp.Prof, ToRelativeSide(side, p))
}

func ToAbsolutePiece(piece relative.Piece, p Perspective) absolute.Piece {
	if piece.IsTam2() {
		return absolute.Tam2
	}
	cp, side, ok := piece.NonTam2()
	if !ok {
		return absolute.Piece{}
	}
	return absolute.NewPiece(cp.Color, cp.Prof, ToAbsoluteSide(side, p))
}

func ToRelativeBoard(b absolute.Board, p Perspective) relative.Board {
	var out relative.Board
	for c, piece := range b {
		out.Put(ToRelativeCoord(c, p), ToRelativePiece(piece, p))
	}
	return out
}

func ToAbsoluteBoard(b relative.Board, p Perspective) absolute.Board {
	out := absolute.NewBoard()
	for _, c := range relative.AllCoords() {
		if piece, ok := b.Peek(c); ok {
			out.Put(ToAbsoluteCoord(c, p), ToAbsolutePiece(piece, p))
		}
	}
	return out
}

func ToRelativeField(f absolute.Field, p Perspective) relative.Field {
	return relative.Field{
		Board:        ToRelativeBoard(f.Board, p),
		UpwardHand:   f.HandOf(ToAbsoluteSide(relative.Upward, p)).Clone(),
		DownwardHand: f.HandOf(ToAbsoluteSide(relative.Downward, p)).Clone(),
	}
}

func ToAbsoluteField(f relative.Field, p Perspective) absolute.Field {
	return absolute.Field{
		Board:      ToAbsoluteBoard(f.Board, p),
		ASideHand:  f.HandOf(ToRelativeSide(game.ASide, p)).Clone(),
		IASideHand: f.HandOf(ToRelativeSide(game.IASide, p)).Clone(),
	}
}

func ToRelativeMove(m game.Move[absolute.Coord], p Perspective) game.Move[relative.Coord] {
	return game.MapMove(m, func(c absolute.Coord) relative.Coord { return ToRelativeCoord(c, p) })
}

func ToAbsoluteMove(m game.Move[relative.Coord], p Perspective) game.Move[absolute.Coord] {
	return game.MapMove(m, func(c relative.Coord) absolute.Coord { return ToAbsoluteCoord(c, p) })
}
