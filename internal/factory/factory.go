package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jpmeyers/santaswap/internal/dependencies/clock"
	"github.com/jpmeyers/santaswap/internal/dependencies/random"
	"github.com/jpmeyers/santaswap/internal/services/assignment"
	"github.com/jpmeyers/santaswap/internal/services/auth"
	"github.com/jpmeyers/santaswap/internal/services/game"
	"github.com/jpmeyers/santaswap/internal/services/gifts"
	"github.com/jpmeyers/santaswap/internal/services/setup"
	"github.com/jpmeyers/santaswap/internal/storage"
	filestorage "github.com/jpmeyers/santaswap/internal/storage/file"
	"github.com/jpmeyers/santaswap/internal/storage/memory"
	redisstorage "github.com/jpmeyers/santaswap/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeFile   = "file"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AssignmentService *assignment.Service
	GameController    *game.Controller
	AuthService       *auth.Service
	SetupOrchestrator *setup.Orchestrator
	GiftsService      *gifts.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "file")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// DataDir is the game record directory (required if StorageType is "file")
	DataDir string
	// GiftsConfig holds gift-suggestion AI settings (optional)
	// If zero value, defaults to gifts.DefaultConfig()
	GiftsConfig *gifts.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeFile:
		if cfg.DataDir == "" {
			return nil, errors.New("DataDir required when StorageType is file")
		}
		fileStore, err := filestorage.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'file'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	giftsCfg := gifts.DefaultConfig()
	if cfg.GiftsConfig != nil {
		giftsCfg = *cfg.GiftsConfig
	}

	return newWithDependencies(store, clk, rnd, giftsCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, giftsCfg gifts.Config, logger *slog.Logger) *App {
	// Create services
	assignmentService := assignment.New(rnd, logger)
	gameController := game.NewController(store, clk, rnd, logger)
	authService := auth.New()
	setupOrchestrator := setup.New(assignmentService, gameController, authService, logger)
	giftsService := gifts.New(giftsCfg, clk, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		AssignmentService: assignmentService,
		GameController:    gameController,
		AuthService:       authService,
		SetupOrchestrator: setupOrchestrator,
		GiftsService:      giftsService,
	}
}
