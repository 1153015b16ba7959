package game

import (
	"errors"
	"fmt"
)

// Errors returned by the move-application protocol. Callers match them with
// errors.Is; the concrete value is a *MoveError.
var (
	ErrEmptySource           = errors.New("src does not contain a piece")
	ErrSourceIsTam2          = errors.New("expected a non-Tam2 piece at src, but found Tam2")
	ErrSourceIsOpponentOwned = errors.New("found the opponent's piece at src")
	ErrCannotCaptureTam2     = errors.New("tried to capture Tam2")
	ErrCannotCaptureOwn      = errors.New("tried to capture an ally")
)

// ErrMalformedCoord is returned for any coordinate token that does not parse.
var ErrMalformedCoord = errors.New("malformed coordinate")

type MoveError struct {
	Src  string
	Dest string
	Side string
	Err  error
}

func NewMoveError[C fmt.Stringer, S fmt.Stringer](src, dest C, side S, err error) *MoveError {
	return &MoveError{Src: src.String(), Dest: dest.String(), Side: side.String(), Err: err}
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s to %s by %s: %v", e.Src, e.Dest, e.Side, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
