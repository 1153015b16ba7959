package relative

import "cerke/game"

// Field is a board plus each side's hop1zuo1.
type Field struct {
	Board        Board
	UpwardHand   game.Hand
	DownwardHand game.Hand
}

var _ game.Field[Coord, Side, Field] = (*Field)(nil)

func (f Field) Clone() Field {
	return Field{
		Board:        f.Board,
		UpwardHand:   f.UpwardHand.Clone(),
		DownwardHand: f.DownwardHand.Clone(),
	}
}

func (f Field) Equal(other Field) bool {
	return f.Board == other.Board &&
		f.UpwardHand.Equal(other.UpwardHand) &&
		f.DownwardHand.Equal(other.DownwardHand)
}

func (f Field) HandOf(side Side) game.Hand {
	if side == Upward {
		return f.UpwardHand
	}
	return f.DownwardHand
}

func (f *Field) setHand(side Side, h game.Hand) {
	if side == Upward {
		f.UpwardHand = h
		return
	}
	f.DownwardHand = h
}

func (f *Field) InsertIntoHand(color game.Color, prof game.Profession, side Side) {
	f.setHand(side, f.HandOf(side).Insert(game.ColorAndProf{Color: color, Prof: prof}))
}

// MoveNonTam2Piece moves side's piece from src to dest and, if dest held an
// opponent's piece, puts it into side's hop1zuo1.
func (f Field) MoveNonTam2Piece(src, dest Coord, side Side) (Field, error) {
	fail := func(err error) (Field, error) {
		return Field{}, game.NewMoveError(src, dest, side, err)
	}

	piece, ok := f.Board.Peek(src)
	switch {
	case !ok:
		return fail(game.ErrEmptySource)
	case piece.IsTam2():
		return fail(game.ErrSourceIsTam2)
	case !piece.HasSide(side):
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
func (f Field) Parachute(color game.Color, prof game.Profession, side Side, dest Coord) (Field, bool) {
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

func (f Field) Count() int {
	return f.Board.Len() - f.Board.CountTam2() + f.UpwardHand.Len() + f.DownwardHand.Len()
}
