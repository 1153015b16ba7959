package game

import "fmt"

// Move describes a fully determined move in coordinates of type C. The set
// of variants is closed; consumers switch over all seven.
type Move[C comparable] interface {
	isMove()
}

// NonTamMoveSrcDst moves a non-Tam2 piece from Src to Dest without stepping.
type NonTamMoveSrcDst[C comparable] struct {
	Src               C
	Dest              C
	IsWaterEntryCiurl bool
}

// NonTamMoveSrcStepDstFinite moves a non-Tam2 piece from Src to Dest, stepping over Step.
type NonTamMoveSrcStepDstFinite[C comparable] struct {
	Src               C
	Step              C
	Dest              C
	IsWaterEntryCiurl bool
}

// NonTamMoveFromHopZuo parachutes a piece from the hand onto Dest.
type NonTamMoveFromHopZuo[C comparable] struct {
	Color Color
	Prof  Profession
	Dest  C
}

// InfAfterStep declares an infinite move after stepping; its outcome depends on
// the ciurl thrown afterwards.
type InfAfterStep[C comparable] struct {
	Src              C
	Step             C
	PlannedDirection C
}

// TamMoveNoStep moves Tam2 twice without stepping.
type TamMoveNoStep[C comparable] struct {
	Src        C
	FirstDest  C
	SecondDest C
}

// TamMoveStepsDuringFormer moves Tam2 twice, stepping during the first half.
type TamMoveStepsDuringFormer[C comparable] struct {
	Src        C
	Step       C
	FirstDest  C
	SecondDest C
}

// TamMoveStepsDuringLatter moves Tam2 twice, stepping during the second half.
type TamMoveStepsDuringLatter[C comparable] struct {
	Src        C
	FirstDest  C
	Step       C
	SecondDest C
}

func (NonTamMoveSrcDst[C]) isMove()           {}
func (NonTamMoveSrcStepDstFinite[C]) isMove() {}
func (NonTamMoveFromHopZuo[C]) isMove()       {}
func (InfAfterStep[C]) isMove()               {}
func (TamMoveNoStep[C]) isMove()              {}
func (TamMoveStepsDuringFormer[C]) isMove()   {}
func (TamMoveStepsDuringLatter[C]) isMove()   {}

// IsTamMove reports whether m is one of the two-destination Tam2 shapes.
func IsTamMove[C comparable](m Move[C]) bool {
	switch m.(type) {
	case TamMoveNoStep[C], TamMoveStepsDuringFormer[C], TamMoveStepsDuringLatter[C]:
		return true
	}
	return false
}

// MapMove rewrites every coordinate of m with f, keeping the variant.
func MapMove[C, D comparable](m Move[C], f func(C) D) Move[D] {
	switch m := m.(type) {
	case NonTamMoveSrcDst[C]:
		return NonTamMoveSrcDst[D]{Src: f(m.Src), Dest: f(m.Dest), IsWaterEntryCiurl: m.IsWaterEntryCiurl}
	case NonTamMoveSrcStepDstFinite[C]:
		return NonTamMoveSrcStepDstFinite[D]{Src: f(m.Src), Step: f(m.Step), Dest: f(m.Dest), IsWaterEntryCiurl: m.IsWaterEntryCiurl}
	case NonTamMoveFromHopZuo[C]:
		return NonTamMoveFromHopZuo[D]{Color: m.Color, Prof: m.Prof, Dest: f(m.Dest)}
	case InfAfterStep[C]:
		return InfAfterStep[D]{Src: f(m.Src), Step: f(m.Step), PlannedDirection: f(m.PlannedDirection)}
	case TamMoveNoStep[C]:
		return TamMoveNoStep[D]{Src: f(m.Src), FirstDest: f(m.FirstDest), SecondDest: f(m.SecondDest)}
	case TamMoveStepsDuringFormer[C]:
		return TamMoveStepsDuringFormer[D]{Src: f(m.Src), Step: f(m.Step), FirstDest: f(m.FirstDest), SecondDest: f(m.SecondDest)}
	case TamMoveStepsDuringLatter[C]:
		return TamMoveStepsDuringLatter[D]{Src: f(m.Src), FirstDest: f(m.FirstDest), Step: f(m.Step), SecondDest: f(m.SecondDest)}
	}
	panic(fmt.Sprintf("unknown move variant %T", m))
}
