package metrics

import (
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step        int
	Side        string
	Kind        string // "move" or "parachute"
	Captured    bool
	BoardPieces int
	ASideHand   int
	IASideHand  int
	Duration    time.Duration
}

type GameMetric struct {
	Seed         uint64
	StartingSide string
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Captures     int
	Parachutes   int
	Rejected     int
}

// Collector counts what happens during one soak game.
type Collector interface {
	Start(seed uint64, startingSide string)
	AddMove(m MoveMetric)
	AddRejected()
	Complete() GameMetric
}

type collector struct {
	seed         uint64
	startingSide string
	startTime    time.Time
	moves        atomic.Int32
	captures     atomic.Int32
	parachutes   atomic.Int32
	rejected     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(seed uint64, startingSide string) {
	m.startTime = time.Now()
	m.seed = seed
	m.startingSide = startingSide
	m.moves.Store(0)
	m.captures.Store(0)
	m.parachutes.Store(0)
	m.rejected.Store(0)
}

func (m *collector) AddMove(mm MoveMetric) {
	m.moves.Add(1)
	if mm.Captured {
		m.captures.Add(1)
	}
	if mm.Kind == KindParachute {
		m.parachutes.Add(1)
	}
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) Complete() GameMetric {
	end := time.Now()
	return GameMetric{
		Seed:         m.seed,
		StartingSide: m.startingSide,
		StartTime:    m.startTime,
		EndTime:      end,
		Duration:     end.Sub(m.startTime),
		TotalMoves:   int(m.moves.Load()),
		Captures:     int(m.captures.Load()),
		Parachutes:   int(m.parachutes.Load()),
		Rejected:     int(m.rejected.Load()),
	}
}

const (
	KindMove      = "move"
	KindParachute = "parachute"
)

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(seed uint64, startingSide string) {}
func (m *dummyCollector) AddMove(mm MoveMetric)                  {}
func (m *dummyCollector) AddRejected()                           {}
func (m *dummyCollector) Complete() GameMetric                   { return GameMetric{} }
