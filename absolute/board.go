package absolute

import (
	"encoding/json"
	"fmt"
	"maps"

	"cerke/game"
)

// Board is the sparse representation: only occupied squares have entries.
type Board map[Coord]Piece

var _ game.Board[Coord, Piece] = Board{}

func NewBoard() Board {
	return make(Board)
}

func (b Board) Peek(c Coord) (Piece, bool) {
	p, ok := b[c]
	return p, ok
}

func (b Board) Pop(c Coord) (Piece, bool) {
	p, ok := b[c]
	delete(b, c)
	return p, ok
}

// Put sets c to p; the zero Piece clears the square.
func (b Board) Put(c Coord, p Piece) {
	if p.IsZero() {
		delete(b, c)
		return
	}
	b[c] = p
}

func (b Board) AssertEmpty(c Coord) {
	if _, ok := b[c]; ok {
		panic(fmt.Sprintf("expected the square %v to be empty, but it was occupied", c))
	}
}

func (b Board) AssertOccupied(c Coord) {
	if _, ok := b[c]; !ok {
		panic(fmt.Sprintf("expected the square %v to be occupied, but it was empty", c))
	}
}

func (b Board) Clone() Board {
	if b == nil {
		return NewBoard()
	}
	return maps.Clone(b)
}

func (b Board) Equal(other Board) bool {
	return maps.Equal(b, other)
}

func (b Board) Len() int {
	return len(b)
}

// Occupied lists the occupied squares in AllCoords order.
func (b Board) Occupied() []Coord {
	out := make([]Coord, 0, len(b))
	for _, c := range AllCoords() {
		if _, ok := b[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// CountTam2 counts Tam2 pieces; a reachable position always has exactly one.
func (b Board) CountTam2() int {
	n := 0
	for _, p := range b {
		if p.IsTam2() {
			n++
		}
	}
	return n
}

// UnmarshalJSON drops null squares so that only occupied squares have entries.
func (b *Board) UnmarshalJSON(data []byte) error {
	var raw map[Coord]Piece
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Board, len(raw))
	for c, p := range raw {
		if !p.IsZero() {
			out[c] = p
		}
	}
	*b = out
	return nil
}
