package gamemaster

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"cerke/absolute"
	"cerke/game"
)

// UpdateGetter returns the most recent unseen update, or nils if there is
// none. After the game is closed it keeps returning nils.
type UpdateGetter func() (game.Move[absolute.Coord], *absolute.Field)

type Engine interface {
	Init() (absolute.Field, UpdateGetter)
	Play(move game.Move[absolute.Coord], side game.AbsoluteSide) error
}

type update struct {
	move  game.Move[absolute.Coord]
	field absolute.Field
}

// LocalEngine plays one game in memory.
type LocalEngine struct {
	mu       sync.Mutex
	first    game.AbsoluteSide
	field    absolute.Field
	turn     game.AbsoluteSide
	moves    []game.Move[absolute.Coord]
	history  []absolute.Field
	updateCh chan update
	gameOver bool
}

var _ Engine = (*LocalEngine)(nil)

// NewLocalEngine creates an engine in which first makes the opening move.
func NewLocalEngine(first game.AbsoluteSide) *LocalEngine {
	return &LocalEngine{first: first}
}

func (e *LocalEngine) Init() (absolute.Field, UpdateGetter) {
	return e.InitFrom(absolute.InitialField(), e.first)
}

// InitFrom starts the game from an arbitrary field, e.g. one loaded from disk.
func (e *LocalEngine) InitFrom(f absolute.Field, turn game.AbsoluteSide) (absolute.Field, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.field = f.Clone()
	e.turn = turn
	e.moves = nil
	e.history = nil
	e.gameOver = false
	e.updateCh = make(chan update, 1)
	ch := e.updateCh

	log.Debug().Str("turn", turn.String()).Int("pieces", e.field.Board.Len()).Msg("game initialised")

	return e.field.Clone(), func() (game.Move[absolute.Coord], *absolute.Field) {
		select {
		case u, ok := <-ch:
			if !ok { // Game over
				return nil, nil
			}
			f := u.field.Clone()
			return u.move, &f
		default:
			return nil, nil
		}
	}
}

// Play applies move for side. The field is only replaced when the move is
// accepted.
func (e *LocalEngine) Play(move game.Move[absolute.Coord], side game.AbsoluteSide) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.updateCh == nil {
		return fmt.Errorf("engine not initialised")
	}
	if e.gameOver {
		return ErrGameOver
	}
	if side != e.turn {
		return fmt.Errorf("%v tried to move during %v's turn: %w", side, e.turn, ErrNotYourTurn)
	}

	next, err := Apply(e.field, move, side)
	if err != nil {
		log.Info().Err(err).Str("side", side.String()).Msgf("rejected move %+v", move)
		return err
	}

	e.history = append(e.history, e.field)
	e.moves = append(e.moves, move)
	e.field = next
	e.turn = side.Opponent()
	log.Debug().Str("side", side.String()).Int("ply", len(e.moves)).Msgf("played %+v", move)

	e.publish(update{move: move, field: next})
	return nil
}

// publish keeps only the latest update in the channel.
func (e *LocalEngine) publish(u update) {
	select {
	case <-e.updateCh:
	default:
	}
	e.updateCh <- u
}

// Undo takes back the last accepted move. An unread update for that move is
// discarded.
func (e *LocalEngine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.history) == 0 || e.gameOver {
		return false
	}
	e.field = e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.moves = e.moves[:len(e.moves)-1]
	e.turn = e.turn.Opponent()

	select {
	case <-e.updateCh:
	default:
	}
	return true
}

// Close ends the game; pending updates stay readable once.
func (e *LocalEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gameOver || e.updateCh == nil {
		return
	}
	e.gameOver = true
	close(e.updateCh)
}

// Snapshot is the engine state read under a single lock.
type Snapshot struct {
	Field absolute.Field
	Turn  game.AbsoluteSide
	Moves int
	Over  bool
}

func (e *LocalEngine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Field: e.field.Clone(),
		Turn:  e.turn,
		Moves: len(e.moves),
		Over:  e.gameOver,
	}
}

// Field returns a copy of the current field.
func (e *LocalEngine) Field() absolute.Field {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.field.Clone()
}

func (e *LocalEngine) Turn() game.AbsoluteSide {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.turn
}

func (e *LocalEngine) Moves() []game.Move[absolute.Coord] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]game.Move[absolute.Coord](nil), e.moves...)
}

func (e *LocalEngine) IsOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gameOver
}
