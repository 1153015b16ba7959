// Package relative describes positions as seen by one player: squares are
// [row, col] indices with row 0 at the top, and sides are Upward (the
// viewer) and Downward (the opponent).
package relative

import (
	"fmt"

	"cerke/game"
)

// Coord is [row, col], each in [0, 9).
type Coord [2]int

const Size = 9

func (c Coord) Row() int { return c[0] }
func (c Coord) Col() int { return c[1] }

func (c Coord) Valid() bool {
	return c[0] >= 0 && c[0] < Size && c[1] >= 0 && c[1] < Size
}

// String gives the JSON-style form, e.g. "[5,6]".
func (c Coord) String() string {
	return fmt.Sprintf("[%d,%d]", c[0], c[1])
}

// ParseCoord reads the form produced by Coord.String.
func ParseCoord(s string) (Coord, error) {
	var c Coord
	n, _ := fmt.Sscanf(s, "[%d,%d]", &c[0], &c[1])
	if n != 2 || !c.Valid() || s != c.String() {
		return Coord{}, fmt.Errorf("%w: %q", game.ErrMalformedCoord, s)
	}
	return c, nil
}

// AllCoords returns the 81 squares row by row.
func AllCoords() []Coord {
	out := make([]Coord, 0, Size*Size)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out = append(out, Coord{i, j})
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance is the larger of the row and column differences.
func Distance(a, b Coord) int {
	return max(abs(a[0]-b[0]), abs(a[1]-b[1]))
}

// SameDirection reports whether a and b lie on the same ray from origin.
func SameDirection(origin, a, b Coord) bool {
	au, av := a[0]-origin[0], a[1]-origin[1]
	bu, bv := b[0]-origin[0], b[1]-origin[1]
	return au*bu+av*bv > 0 && au*bv-av*bu == 0
}

// RotateCoord turns the square 180 degrees about the center.
func RotateCoord(c Coord) Coord {
	return Coord{Size - 1 - c[0], Size - 1 - c[1]}
}

// IsWater reports whether c is one of the nine tam2 nua2 squares.
func IsWater(c Coord) bool {
	switch {
	case c[0] == 4:
		return c[1] >= 2 && c[1] <= 6
	case c[0] == 2, c[0] == 3, c[0] == 5, c[0] == 6:
		return c[1] == 4
	}
	return false
}
