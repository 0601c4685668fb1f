package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/storage"
)

// codePattern guards against game codes escaping the data directory.
// Codes are numeric, but this storage is also reachable from tests.
var codePattern = regexp.MustCompile(`^[0-9]+$`)

// Storage persists each game record as <code>.json under a data directory
type Storage struct {
	dir string
}

// New creates a file storage rooted at dir, creating it if needed
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) path(code model.GameCode) (string, error) {
	if !codePattern.MatchString(string(code)) {
		return "", model.ErrGameNotFound
	}
	return filepath.Join(s.dir, string(code)+".json"), nil
}

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	path, err := s.path(game.Code)
	if err != nil {
		return err
	}

	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	// Write via a temp file so a crash mid-write never leaves a truncated record
	tmp, err := os.CreateTemp(s.dir, "."+string(game.Code)+"-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *Storage) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	path, err := s.path(code)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrCorruptGameRecord, err)
	}
	if err := game.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrCorruptGameRecord, err)
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, code model.GameCode) error {
	path, err := s.path(code)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Storage) GameExists(ctx context.Context, code model.GameCode) (bool, error) {
	path, err := s.path(code)
	if err != nil {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
