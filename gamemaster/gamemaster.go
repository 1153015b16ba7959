// Package gamemaster turns fully determined moves into field updates and
// keeps track of whose turn it is.
package gamemaster

import (
	"errors"
	"fmt"

	"cerke/absolute"
	"cerke/game"
)

var (
	ErrGameOver          = errors.New("game is over - no moves allowed")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrUnsupportedMove   = errors.New("move shape is not executed here")
	ErrParachuteRejected = errors.New("no matching piece in hop1zuo1, or destination occupied")
)

// Apply picks the operation a move shape stands for and runs it against f.
// Stepping and water-entry legality are the caller's business: only the
// endpoints of a move are used. Tam2 moves and InfAfterStep are not executed.
func Apply(f absolute.Field, move game.Move[absolute.Coord], side game.AbsoluteSide) (absolute.Field, error) {
	switch m := move.(type) {
	case game.NonTamMoveSrcDst[absolute.Coord]:
		return f.MoveNonTam2Piece(m.Src, m.Dest, side)
	case game.NonTamMoveSrcStepDstFinite[absolute.Coord]:
		return f.MoveNonTam2Piece(m.Src, m.Dest, side)
	case game.NonTamMoveFromHopZuo[absolute.Coord]:
		next, ok := f.Parachute(m.Color, m.Prof, side, m.Dest)
		if !ok {
			return absolute.Field{}, fmt.Errorf("parachute %s%s to %v by %v: %w",
				m.Color.Glyph(), m.Prof.Glyph(), m.Dest, side, ErrParachuteRejected)
		}
		return next, nil
	case game.InfAfterStep[absolute.Coord],
		game.TamMoveNoStep[absolute.Coord],
		game.TamMoveStepsDuringFormer[absolute.Coord],
		game.TamMoveStepsDuringLatter[absolute.Coord]:
		return absolute.Field{}, fmt.Errorf("%T: %w", move, ErrUnsupportedMove)
	}
	return absolute.Field{}, fmt.Errorf("unknown move %T: %w", move, ErrUnsupportedMove)
}
