package game

import (
	"context"
	"log/slog"

	"github.com/jpmeyers/santaswap/internal/dependencies/clock"
	"github.com/jpmeyers/santaswap/internal/dependencies/random"
	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/storage"
)

const (
	// CodeLength is the number of decimal digits in a game code
	CodeLength = 8
	// maxCodeAttempts bounds the unique-code retry loop. The code space is
	// finite, so retrying forever against a full store would never return.
	maxCodeAttempts = 100
)

// Controller owns game record creation and retrieval
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateGame validates the roster and assignment, mints a unique code, and
// persists the record. The record is immutable once this returns.
func (c *Controller) CreateGame(ctx context.Context, participants []model.Participant, assignment model.Assignment) (*model.Game, error) {
	game := &model.Game{
		Participants: participants,
		Assignment:   assignment,
		CreatedAt:    c.clock.Now(),
	}
	if err := game.Validate(); err != nil {
		return nil, err
	}

	code, err := c.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}
	game.Code = code

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("code", string(code)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("code", string(code)),
		slog.Int("participant_count", len(participants)),
	)

	return game, nil
}

// GetGame retrieves a game record by code
func (c *Controller) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	return c.storage.GetGame(ctx, code)
}

// generateUniqueCode draws fixed-length numeric codes until one is free.
// The loop is iterative and bounded rather than retry-by-recursion.
func (c *Controller) generateUniqueCode(ctx context.Context) (model.GameCode, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		// Leading digit is non-zero so codes survive integer round-trips
		code := model.GameCode(
			c.random.String(1, "123456789") + c.random.String(CodeLength-1, random.Digits),
		)

		exists, err := c.storage.GameExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	c.logger.Error("game code space exhausted",
		slog.Int("attempts", maxCodeAttempts),
	)
	return "", model.ErrCodeSpaceExhausted
}
