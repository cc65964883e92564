package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"janggi/internal/engine"
	"janggi/internal/janggi"
)

var ErrGameNotFound = errors.New("game: not found")

type Manager struct {
	mu     sync.RWMutex
	games  map[string]*GameState
	logger *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{games: make(map[string]*GameState), logger: logger}
}

// NewGame 建会话并直接开局。
func (m *Manager) NewGame(han, cho janggi.Setup) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := &GameState{
		ID:        id,
		CreatedAt: time.Now(),
		match:     janggi.NewMatch(),
		subs:      make(map[chan engine.Event]struct{}),
		updatedAt: time.Now(),
		logger:    m.logger,
	}
	g.match.Start(han, cho)
	m.games[id] = g
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// CloseAll 关停所有会话，关不干净的错误攒在一起返回。
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	games := make([]*GameState, 0, len(m.games))
	for id, g := range m.games {
		games = append(games, g)
		delete(m.games, id)
	}
	m.mu.Unlock()

	var result *multierror.Error
	for _, g := range games {
		if err := g.Close(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "close game %s", g.ID))
		}
	}
	return result.ErrorOrNil()
}
