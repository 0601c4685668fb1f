package memory

import (
	"context"
	"sync"

	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu    sync.RWMutex
	games map[model.GameCode]*model.Game
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameCode]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.Code] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[code]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, code model.GameCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, code)
	return nil
}

func (s *Storage) GameExists(ctx context.Context, code model.GameCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.games[code]
	return ok, nil
}
