package absolute

import "cerke/game"

// Field is a board plus each side's hop1zuo1.
type Field struct {
	Board      Board     `json:"board"`
	ASideHand  game.Hand `json:"a_side_hop1zuo1"`
	IASideHand game.Hand `json:"ia_side_hop1zuo1"`
}

var _ game.Field[Coord, game.AbsoluteSide, Field] = (*Field)(nil)

// Clone returns a copy that shares no storage with f.
func (f Field) Clone() Field {
	return Field{
		Board:      f.Board.Clone(),
		ASideHand:  f.ASideHand.Clone(),
		IASideHand: f.IASideHand.Clone(),
	}
}

func (f Field) Equal(other Field) bool {
	return f.Board.Equal(other.Board) &&
		f.ASideHand.Equal(other.ASideHand) &&
		f.IASideHand.Equal(other.IASideHand)
}

func (f Field) HandOf(side game.AbsoluteSide) game.Hand {
	if side == game.ASide {
		return f.ASideHand
	}
	return f.IASideHand
}

func (f *Field) setHand(side game.AbsoluteSide, h game.Hand) {
	if side == game.ASide {
		f.ASideHand = h
		return
	}
	f.IASideHand = h
}

// InsertIntoHand adds a piece to the hop1zuo1 of side.
func (f *Field) InsertIntoHand(color game.Color, prof game.Profession, side game.AbsoluteSide) {
	f.setHand(side, f.HandOf(side).Insert(game.ColorAndProf{Color: color, Prof: prof}))
}

// MoveNonTam2Piece moves side's piece from src to dest and, if dest held an
// opponent's piece, puts it into side's hop1zuo1. f itself is never modified.
func (f Field) MoveNonTam2Piece(src, dest Coord, side game.AbsoluteSide) (Field, error) {
	fail := func(err error) (Field, error) {
		return Field{}, game.NewMoveError(src, dest, side, err)
	}

	piece, ok := f.Board.Peek(src)
	if !ok {
		return fail(game.ErrEmptySource)
	}
	if piece.IsTam2() {
		return fail(game.ErrSourceIsTam2)
	}
	if !piece.HasSide(side) {
		return fail(game.ErrSourceIsOpponentOwned)
	}

	next := f.Clone()
	next.Board.Pop(src)
	captured, hasCaptured := next.Board.Pop(dest)
	next.Board.Put(dest, piece)

	if hasCaptured {
		if captured.IsTam2() {
			return fail(game.ErrCannotCaptureTam2)
		}
		cp, capturedSide, _ := captured.NonTam2()
		if capturedSide == side {
			return fail(game.ErrCannotCaptureOwn)
		}
		next.InsertIntoHand(cp.Color, cp.Prof, side)
	}
	return next, nil
}

// Parachute takes one matching piece out of side's hop1zuo1 and drops it on
// dest. It reports false if there is no such piece or dest is occupied.
func (f Field) Parachute(color game.Color, prof game.Profession, side game.AbsoluteSide, dest Coord) (Field, bool) {
	hand, ok := f.HandOf(side).Remove(game.ColorAndProf{Color: color, Prof: prof})
	if !ok {
		return Field{}, false
	}
	if _, occupied := f.Board.Peek(dest); occupied {
		return Field{}, false
	}

	next := f.Clone()
	next.setHand(side, hand)
	next.Board.Put(dest, NewPiece(color, prof, side))
	return next, true
}

// Count returns the number of non-Tam2 pieces on the board and in both hands.
func (f Field) Count() int {
	n := f.ASideHand.Len() + f.IASideHand.Len()
	for _, p := range f.Board {
		if !p.IsTam2() {
			n++
		}
	}
	return n
}
