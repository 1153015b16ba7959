package relative

import (
	"fmt"
	"strings"

	"cerke/game"
)

// Board is the dense representation, indexed [row][col]. Indexing outside
// [0, 9) panics.
type Board [Size][Size]Piece

var _ game.Board[Coord, Piece] = (*Board)(nil)

func (b *Board) Peek(c Coord) (Piece, bool) {
	p := b[c[0]][c[1]]
	return p, !p.IsZero()
}

func (b *Board) Pop(c Coord) (Piece, bool) {
	p, ok := b.Peek(c)
	b[c[0]][c[1]] = Piece{}
	return p, ok
}

// Put sets c to p; the zero Piece clears the square.
func (b *Board) Put(c Coord, p Piece) {
	b[c[0]][c[1]] = p
}

func (b *Board) AssertEmpty(c Coord) {
	if _, ok := b.Peek(c); ok {
		panic(fmt.Sprintf("expected the square %v to be empty, but it was occupied", c))
	}
}

func (b *Board) AssertOccupied(c Coord) {
	if _, ok := b.Peek(c); !ok {
		panic(fmt.Sprintf("expected the square %v to be occupied, but it was empty", c))
	}
}

func (b Board) Len() int {
	n := 0
	for _, row := range b {
		for _, p := range row {
			if !p.IsZero() {
				n++
			}
		}
	}
	return n
}

func (b Board) CountTam2() int {
	n := 0
	for _, row := range b {
		for _, p := range row {
			if p.IsTam2() {
				n++
			}
		}
	}
	return n
}

// Rotate views the board from the other player's seat: every square turns
// 180 degrees and every owned piece changes hands.
func Rotate(b Board) Board {
	var out Board
	for i := range b {
		for j := range b[i] {
			out[Size-1-i][Size-1-j] = b[i][j].Flip()
		}
	}
	return out
}

// String renders one line per row, squares separated by a space.
func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, p := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(p.String())
		}
	}
	return sb.String()
}

// ParseBoard reads the form produced by Board.String.
func ParseBoard(s string) (Board, error) {
	var b Board
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != Size {
		return Board{}, fmt.Errorf("expected %d rows, got %d", Size, len(lines))
	}
	for i, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) != Size {
			return Board{}, fmt.Errorf("row %d: expected %d squares, got %d", i, Size, len(tokens))
		}
		for j, tok := range tokens {
			p, err := ParsePiece(tok)
			if err != nil {
				return Board{}, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			b[i][j] = p
		}
	}
	return b, nil
}
