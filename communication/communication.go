// Package communication defines the JSON documents exchanged over HTTP.
package communication

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cerke/absolute"
	"cerke/game"
	"cerke/perspective"
	"cerke/relative"
)

var ErrBadMove = errors.New("malformed move")

// Move kinds as they appear on the wire.
const (
	KindSrcDst               = "src_dst"
	KindSrcStepDstFinite     = "src_step_dst_finite"
	KindFromHopZuo           = "from_hop1zuo1"
	KindInfAfterStep         = "inf_after_step"
	KindTamNoStep            = "tam_no_step"
	KindTamStepsDuringFormer = "tam_steps_during_former"
	KindTamStepsDuringLatter = "tam_steps_during_latter"
)

// MoveRequest is a flattened game.Move plus the side making it.
type MoveRequest struct {
	Side              *game.AbsoluteSide `json:"side"`
	Kind              string             `json:"kind"`
	Src               *absolute.Coord    `json:"src,omitempty"`
	Step              *absolute.Coord    `json:"step,omitempty"`
	Dest              *absolute.Coord    `json:"dest,omitempty"`
	FirstDest         *absolute.Coord    `json:"first_dest,omitempty"`
	SecondDest        *absolute.Coord    `json:"second_dest,omitempty"`
	PlannedDirection  *absolute.Coord    `json:"planned_direction,omitempty"`
	Color             *game.Color        `json:"color,omitempty"`
	Prof              *game.Profession   `json:"prof,omitempty"`
	IsWaterEntryCiurl bool               `json:"is_water_entry_ciurl,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

// NewMoveRequest flattens move.
func NewMoveRequest(move game.Move[absolute.Coord], side game.AbsoluteSide) MoveRequest {
	r := MoveRequest{Side: ptr(side)}
	switch m := move.(type) {
	case game.NonTamMoveSrcDst[absolute.Coord]:
		r.Kind, r.Src, r.Dest, r.IsWaterEntryCiurl = KindSrcDst, ptr(m.Src), ptr(m.Dest), m.IsWaterEntryCiurl
	case game.NonTamMoveSrcStepDstFinite[absolute.Coord]:
		r.Kind, r.Src, r.Step, r.Dest, r.IsWaterEntryCiurl = KindSrcStepDstFinite, ptr(m.Src), ptr(m.Step), ptr(m.Dest), m.IsWaterEntryCiurl
	case game.NonTamMoveFromHopZuo[absolute.Coord]:
		r.Kind, r.Color, r.Prof, r.Dest = KindFromHopZuo, ptr(m.Color), ptr(m.Prof), ptr(m.Dest)
	case game.InfAfterStep[absolute.Coord]:
		r.Kind, r.Src, r.Step, r.PlannedDirection = KindInfAfterStep, ptr(m.Src), ptr(m.Step), ptr(m.PlannedDirection)
	case game.TamMoveNoStep[absolute.Coord]:
		r.Kind, r.Src, r.FirstDest, r.SecondDest = KindTamNoStep, ptr(m.Src), ptr(m.FirstDest), ptr(m.SecondDest)
	case game.TamMoveStepsDuringFormer[absolute.Coord]:
		r.Kind, r.Src, r.Step, r.FirstDest, r.SecondDest = KindTamStepsDuringFormer, ptr(m.Src), ptr(m.Step), ptr(m.FirstDest), ptr(m.SecondDest)
	case game.TamMoveStepsDuringLatter[absolute.Coord]:
		r.Kind, r.Src, r.FirstDest, r.Step, r.SecondDest = KindTamStepsDuringLatter, ptr(m.Src), ptr(m.FirstDest), ptr(m.Step), ptr(m.SecondDest)
	default:
		panic(fmt.Sprintf("unknown move %T", move))
	}
	return r
}

// Move rebuilds the move and the side making it, checking that every field
// the kind needs is set.
func (r MoveRequest) Move() (game.Move[absolute.Coord], game.AbsoluteSide, error) {
	var missing []string
	var side game.AbsoluteSide
	if r.Side == nil {
		missing = append(missing, "side")
	} else {
		side = *r.Side
	}
	need := func(name string, c *absolute.Coord) absolute.Coord {
		if c == nil {
			missing = append(missing, name)
			return absolute.Coord{}
		}
		return *c
	}

	var move game.Move[absolute.Coord]
	switch r.Kind {
	case KindSrcDst:
		move = game.NonTamMoveSrcDst[absolute.Coord]{Src: need("src", r.Src), Dest: need("dest", r.Dest), IsWaterEntryCiurl: r.IsWaterEntryCiurl}
	case KindSrcStepDstFinite:
		move = game.NonTamMoveSrcStepDstFinite[absolute.Coord]{Src: need("src", r.Src), Step: need("step", r.Step), Dest: need("dest", r.Dest), IsWaterEntryCiurl: r.IsWaterEntryCiurl}
	case KindFromHopZuo:
		m := game.NonTamMoveFromHopZuo[absolute.Coord]{Dest: need("dest", r.Dest)}
		if r.Color == nil {
			missing = append(missing, "color")
		} else {
			m.Color = *r.Color
		}
		if r.Prof == nil {
			missing = append(missing, "prof")
		} else {
			m.Prof = *r.Prof
		}
		move = m
	case KindInfAfterStep:
		move = game.InfAfterStep[absolute.Coord]{Src: need("src", r.Src), Step: need("step", r.Step), PlannedDirection: need("planned_direction", r.PlannedDirection)}
	case KindTamNoStep:
		move = game.TamMoveNoStep[absolute.Coord]{Src: need("src", r.Src), FirstDest: need("first_dest", r.FirstDest), SecondDest: need("second_dest", r.SecondDest)}
	case KindTamStepsDuringFormer:
		move = game.TamMoveStepsDuringFormer[absolute.Coord]{Src: need("src", r.Src), Step: need("step", r.Step), FirstDest: need("first_dest", r.FirstDest), SecondDest: need("second_dest", r.SecondDest)}
	case KindTamStepsDuringLatter:
		move = game.TamMoveStepsDuringLatter[absolute.Coord]{Src: need("src", r.Src), FirstDest: need("first_dest", r.FirstDest), Step: need("step", r.Step), SecondDest: need("second_dest", r.SecondDest)}
	default:
		return nil, side, fmt.Errorf("%w: unknown kind %q", ErrBadMove, r.Kind)
	}
	if len(missing) > 0 {
		return nil, side, fmt.Errorf("%w: %s needs %s", ErrBadMove, r.Kind, strings.Join(missing, ", "))
	}
	return move, side, nil
}

type GameResponse struct {
	ID        string            `json:"id"`
	Turn      game.AbsoluteSide `json:"turn"`
	Moves     int               `json:"moves"`
	Field     absolute.Field    `json:"field"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// RelativeField is a field as seen by one player. Rows are listed top to
// bottom in relative.Board text form.
type RelativeField struct {
	Perspective  perspective.Perspective `json:"perspective"`
	Rows         []string                `json:"rows"`
	UpwardHand   game.Hand               `json:"upward_hop1zuo1"`
	DownwardHand game.Hand               `json:"downward_hop1zuo1"`
}

func NewRelativeField(f absolute.Field, p perspective.Perspective) RelativeField {
	rf := perspective.ToRelativeField(f, p)
	return RelativeField{
		Perspective:  p,
		Rows:         strings.Split(rf.Board.String(), "\n"),
		UpwardHand:   rf.UpwardHand.Clone(),
		DownwardHand: rf.DownwardHand.Clone(),
	}
}

// Field parses the rows back.
func (r RelativeField) Field() (relative.Field, error) {
	b, err := relative.ParseBoard(strings.Join(r.Rows, "\n"))
	if err != nil {
		return relative.Field{}, err
	}
	return relative.Field{Board: b, UpwardHand: r.UpwardHand, DownwardHand: r.DownwardHand}, nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}
