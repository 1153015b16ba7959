// Package absolute describes positions the way the notation does: squares
// are named by row and column and sides are IASide and ASide, so nothing
// depends on who is looking at the board.
package absolute

import (
	"fmt"

	"cerke/game"
)

type Row uint8

const (
	A Row = iota
	E
	I
	U
	O
	Y
	AI
	AU
	IA
)

type Column uint8

const (
	K Column = iota
	L
	N
	T
	Z
	X
	C
	M
	P
)

var rowTokens = [...]string{"A", "E", "I", "U", "O", "Y", "AI", "AU", "IA"}
var columnTokens = [...]string{"K", "L", "N", "T", "Z", "X", "C", "M", "P"}

// Rows lists the rows from A to IA.
func Rows() []Row {
	return []Row{A, E, I, U, O, Y, AI, AU, IA}
}

// Columns lists the columns from K to P.
func Columns() []Column {
	return []Column{K, L, N, T, Z, X, C, M, P}
}

func (r Row) String() string {
	if int(r) < len(rowTokens) {
		return rowTokens[r]
	}
	return fmt.Sprintf("Row(%d)", uint8(r))
}

func (c Column) String() string {
	if int(c) < len(columnTokens) {
		return columnTokens[c]
	}
	return fmt.Sprintf("Column(%d)", uint8(c))
}

// Coord is an absolute square.
type Coord struct {
	Row    Row
	Column Column
}

// AllCoords returns the 81 squares row by row, A row first.
func AllCoords() []Coord {
	out := make([]Coord, 0, 81)
	for _, r := range Rows() {
		for _, c := range Columns() {
			out = append(out, Coord{r, c})
		}
	}
	return out
}

func (c Coord) Valid() bool {
	return int(c.Row) < len(rowTokens) && int(c.Column) < len(columnTokens)
}

// indices numbers the square with A as row 0 and K as column 0. Every
// viewpoint-independent metric is computed on these.
func (c Coord) indices() (int, int) {
	return int(c.Row), int(c.Column)
}

// String gives the column token followed by the row token, e.g. "LIA".
func (c Coord) String() string {
	return c.Column.String() + c.Row.String()
}

func (c Coord) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %v", game.ErrMalformedCoord, [2]uint8{uint8(c.Row), uint8(c.Column)})
	}
	return []byte(c.String()), nil
}

func (c *Coord) UnmarshalText(b []byte) error {
	parsed, err := ParseCoord(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCoord reads a token produced by Coord.String. Parsing is case-sensitive
// and all-or-nothing.
func ParseCoord(s string) (Coord, error) {
	if len(s) < 2 || len(s) > 3 {
		return Coord{}, fmt.Errorf("%w: %q", game.ErrMalformedCoord, s)
	}
	col := -1
	for i, tok := range columnTokens {
		if s[:1] == tok {
			col = i
			break
		}
	}
	row := -1
	for i, tok := range rowTokens {
		if s[1:] == tok {
			row = i
			break
		}
	}
	if col < 0 || row < 0 {
		return Coord{}, fmt.Errorf("%w: %q", game.ErrMalformedCoord, s)
	}
	return Coord{Row(row), Column(col)}, nil
}

// MustParseCoord is ParseCoord for literals known to be valid.
func MustParseCoord(s string) Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance is the larger of the row and column differences.
func Distance(a, b Coord) int {
	ar, ac := a.indices()
	br, bc := b.indices()
	return max(abs(ar-br), abs(ac-bc))
}

// SameDirection reports whether a and b lie on the same ray from origin.
// It is false whenever a or b equals origin.
func SameDirection(origin, a, b Coord) bool {
	or, oc := origin.indices()
	ar, ac := a.indices()
	br, bc := b.indices()
	au, av := ar-or, ac-oc
	bu, bv := br-or, bc-oc
	return au*bu+av*bv > 0 && au*bv-av*bu == 0
}

// Rotate turns the square 180 degrees about ZO.
func Rotate(c Coord) Coord {
	return Coord{Row: IA - c.Row, Column: P - c.Column}
}

// IsWater reports whether c is one of the nine tam2 nua2 squares.
func IsWater(c Coord) bool {
	switch c.Row {
	case O:
		return c.Column >= N && c.Column <= C
	case I, U, Y, AI:
		return c.Column == Z
	}
	return false
}
