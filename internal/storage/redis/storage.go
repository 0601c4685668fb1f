package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, gameKey(game.Code), data, s.cfg.GameTTL).Err()
}

func (s *Storage) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
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
	return s.client.Del(ctx, gameKey(code)).Err()
}

func (s *Storage) GameExists(ctx context.Context, code model.GameCode) (bool, error) {
	exists, err := s.client.Exists(ctx, gameKey(code)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
