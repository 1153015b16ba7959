// Package player proposes actions for one side. It knows nothing about
// movement rules: any action the field operations accept is a candidate.
package player

import (
	"golang.org/x/exp/rand"

	"cerke/absolute"
	"cerke/game"
)

// Player decides on an action for its side.
type Player interface {
	Side() game.AbsoluteSide
	Choose(f absolute.Field) (game.Move[absolute.Coord], bool)
}

// Candidates enumerates every move of an own non-Tam2 piece to a square that
// holds neither Tam2 nor an ally, followed by every parachute of a distinct
// hop1zuo1 piece onto an empty square.
func Candidates(f absolute.Field, side game.AbsoluteSide) []game.Move[absolute.Coord] {
	var moves []game.Move[absolute.Coord]
	coords := absolute.AllCoords()

	for _, src := range f.Board.Occupied() {
		piece, _ := f.Board.Peek(src)
		if !piece.HasSide(side) {
			continue
		}
		for _, dest := range coords {
			if dest == src {
				continue
			}
			if target, ok := f.Board.Peek(dest); ok && (target.IsTam2() || target.HasSide(side)) {
				continue
			}
			moves = append(moves, game.NonTamMoveSrcDst[absolute.Coord]{Src: src, Dest: dest})
		}
	}

	seen := map[game.ColorAndProf]bool{}
	for _, cp := range f.HandOf(side) {
		if seen[cp] {
			continue
		}
		seen[cp] = true
		for _, dest := range coords {
			if _, ok := f.Board.Peek(dest); ok {
				continue
			}
			moves = append(moves, game.NonTamMoveFromHopZuo[absolute.Coord]{Color: cp.Color, Prof: cp.Prof, Dest: dest})
		}
	}
	return moves
}

// Random picks uniformly among the candidates.
type Random struct {
	side game.AbsoluteSide
	rng  *rand.Rand
}

var _ Player = (*Random)(nil)

func NewRandom(side game.AbsoluteSide, seed uint64) *Random {
	return &Random{
		side: side,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Side() game.AbsoluteSide {
	return r.side
}

// Choose returns false when the side has nothing left to do.
func (r *Random) Choose(f absolute.Field) (game.Move[absolute.Coord], bool) {
	moves := Candidates(f, r.side)
	if len(moves) == 0 {
		return nil, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
