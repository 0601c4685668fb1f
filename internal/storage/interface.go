package storage

import (
	"context"

	"github.com/jpmeyers/santaswap/internal/model"
)

// Storage defines the interface for game record persistence.
// Records are immutable once saved; SaveGame overwriting an existing code is
// only done internally right after code generation, never from user input.
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, code model.GameCode) (*model.Game, error)
	DeleteGame(ctx context.Context, code model.GameCode) error
	GameExists(ctx context.Context, code model.GameCode) (bool, error)
}
