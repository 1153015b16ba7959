package gamemaster

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"cerke/absolute"
	"cerke/game"
)

var ErrGameNotFound = errors.New("game not found")

type Game struct {
	ID        string
	Engine    *LocalEngine
	CreatedAt time.Time

	mu        sync.Mutex
	updatedAt time.Time
}

func (g *Game) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt
}

func (g *Game) touch() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updatedAt = time.Now()
}

// Manager keeps the games served by one process.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Game)}
}

func (m *Manager) NewGame(first game.AbsoluteSide) *Game {
	engine := NewLocalEngine(first)
	engine.Init()

	now := time.Now()
	g := &Game{
		ID:        uuid.NewString(),
		Engine:    engine,
		CreatedAt: now,
		updatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return g
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Play forwards to the game's engine and returns the resulting field.
func (m *Manager) Play(id string, move game.Move[absolute.Coord], side game.AbsoluteSide) (absolute.Field, error) {
	g, err := m.Get(id)
	if err != nil {
		return absolute.Field{}, err
	}
	if err := g.Engine.Play(move, side); err != nil {
		return absolute.Field{}, err
	}

	g.touch()
	return g.Engine.Field(), nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	g.Engine.Close()
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
