// Package game holds the vocabulary shared by the absolute and the relative
// representations of a cerke position: colors, professions, sides, hands,
// the board and field contracts, the move shapes and the error taxonomy of
// the move-application protocol.
package game

// Board is implemented by both physical board shapes. The zero value of P
// stands for an empty square, so Put(c, zero) clears c.
type Board[C comparable, P comparable] interface {
	Peek(c C) (P, bool)
	Pop(c C) (P, bool)
	Put(c C, p P)
	AssertEmpty(c C)
	AssertOccupied(c C)
}

// Field should be immutable - operations on a Field always return a new copy
// and leave the receiver untouched.
type Field[C comparable, S comparable, F any] interface {
	MoveNonTam2Piece(src, dest C, side S) (F, error)
	Parachute(color Color, prof Profession, side S, dest C) (F, bool)
	InsertIntoHand(color Color, prof Profession, side S)
}
