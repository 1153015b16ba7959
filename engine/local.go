package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"cerke/absolute"
	"cerke/experiments/metrics"
	"cerke/game"
	"cerke/gamemaster"
	"cerke/player"
)

var ErrInvariantViolated = errors.New("field invariant violated")

type Option func(*LocalEngine)

func WithMaxMoves(n int) Option {
	return func(e *LocalEngine) {
		e.maxMoves = n
	}
}

// WithSeed seeds both random players; the ASide player uses seed+1.
func WithSeed(seed uint64) Option {
	return func(e *LocalEngine) {
		e.seed = seed
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *LocalEngine) {
		e.collector = c
	}
}

func WithFirst(side game.AbsoluteSide) Option {
	return func(e *LocalEngine) {
		e.first = side
	}
}

// LocalEngine runs a soak game between two random players.
type LocalEngine struct {
	maxMoves  int
	seed      uint64
	first     game.AbsoluteSide
	collector metrics.Collector
	players   map[game.AbsoluteSide]player.Player
}

var _ Engine = (*LocalEngine)(nil)

func NewLocalEngine(opts ...Option) *LocalEngine {
	e := &LocalEngine{
		maxMoves:  MaxMoves,
		first:     game.IASide,
		collector: metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.players = map[game.AbsoluteSide]player.Player{
		game.IASide: player.NewRandom(game.IASide, e.seed),
		game.ASide:  player.NewRandom(game.ASide, e.seed+1),
	}
	return e
}

// Run executes the game loop. Any invariant violation aborts the game.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gm := gamemaster.NewLocalEngine(e.first)
	field, getUpdate := gm.Init()
	total := field.Count()

	e.collector.Start(e.seed, e.first.String())
	log.Info().Uint64("seed", e.seed).Str("first", e.first.String()).Msg("soak game starting")

	var moveMetrics []metrics.MoveMetric
	for step := 1; step <= e.maxMoves; step++ {
		side := gm.Turn()
		start := time.Now()

		move, ok := e.players[side].Choose(field)
		if !ok {
			log.Info().Int("step", step).Str("side", side.String()).Msg("no candidates left")
			break
		}

		err := gm.Play(move, side)
		if err != nil {
			e.collector.AddRejected()
			return e.collector.Complete(), moveMetrics, fmt.Errorf("step %d: candidate rejected: %w", step, err)
		}

		_, next := getUpdate()
		if next == nil {
			return e.collector.Complete(), moveMetrics, fmt.Errorf("step %d: no update after accepted move", step)
		}
		if err := checkInvariants(*next, total); err != nil {
			return e.collector.Complete(), moveMetrics, fmt.Errorf("step %d after %+v: %w", step, move, err)
		}

		mm := metrics.MoveMetric{
			Step:        step,
			Side:        side.String(),
			Kind:        metrics.KindMove,
			Captured:    next.HandOf(side).Len() > field.HandOf(side).Len(),
			BoardPieces: next.Board.Len(),
			ASideHand:   next.ASideHand.Len(),
			IASideHand:  next.IASideHand.Len(),
			Duration:    time.Since(start),
		}
		if _, isParachute := move.(game.NonTamMoveFromHopZuo[absolute.Coord]); isParachute {
			mm.Kind = metrics.KindParachute
		}
		e.collector.AddMove(mm)
		moveMetrics = append(moveMetrics, mm)
		field = *next
	}

	gm.Close()
	result := e.collector.Complete()
	log.Info().Int("moves", len(moveMetrics)).Dur("duration", result.Duration).Msg("soak game finished")
	return result, moveMetrics, nil
}

func checkInvariants(f absolute.Field, total int) error {
	if n := f.Board.CountTam2(); n != 1 {
		return fmt.Errorf("%d Tam2 on board: %w", n, ErrInvariantViolated)
	}
	if n := f.Count(); n != total {
		return fmt.Errorf("%d pieces instead of %d: %w", n, total, ErrInvariantViolated)
	}
	return nil
}
