package game

import (
	"errors"
	"fmt"
)

var ErrUnknownSide = errors.New("unknown side")

// AbsoluteSide names a player independently of who is looking at the board.
type AbsoluteSide uint8

const (
	IASide AbsoluteSide = iota // occupied the IA row at the start of the game
	ASide                      // occupied the A row at the start of the game
)

func (s AbsoluteSide) Opponent() AbsoluteSide {
	if s == IASide {
		return ASide
	}
	return IASide
}

func (s AbsoluteSide) String() string {
	switch s {
	case IASide:
		return "IASide"
	case ASide:
		return "ASide"
	}
	return fmt.Sprintf("AbsoluteSide(%d)", uint8(s))
}

func (s AbsoluteSide) MarshalText() ([]byte, error) {
	if s != IASide && s != ASide {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSide, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *AbsoluteSide) UnmarshalText(b []byte) error {
	parsed, err := ParseAbsoluteSide(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func ParseAbsoluteSide(s string) (AbsoluteSide, error) {
	switch s {
	case "IASide", "IA":
		return IASide, nil
	case "ASide", "A":
		return ASide, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSide, s)
}
