package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jpmeyers/santaswap/internal/api"
	"github.com/jpmeyers/santaswap/internal/factory"
	redisstorage "github.com/jpmeyers/santaswap/internal/storage/redis"
)

type config struct {
	bind        string
	port        int
	storageType string
	redisURL    string
	dataDir     string
	verbose     bool
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.storageType == factory.StorageTypeRedis && c.redisURL == "" {
		return fmt.Errorf("--redis-url is required when --storage is redis")
	}
	if c.storageType == factory.StorageTypeFile && c.dataDir == "" {
		return fmt.Errorf("--data-dir is required when --storage is file")
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SANTASWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Secret Santa gift exchange server",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "", "address to bind to (env: SANTASWAP_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: SANTASWAP_PORT)")
	fs.StringVar(&cfg.storageType, "storage", factory.StorageTypeMemory, "storage backend: memory, redis or file (env: SANTASWAP_STORAGE)")
	fs.StringVar(&cfg.redisURL, "redis-url", "", "redis connection URL (env: SANTASWAP_REDIS_URL)")
	fs.StringVar(&cfg.dataDir, "data-dir", "", "game record directory for file storage (env: SANTASWAP_DATA_DIR)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging (env: SANTASWAP_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	return cmd
}

func run(ctx context.Context, cfg *config) error {
	// Set up logging with JSON output
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.storageType,
		DataDir:     cfg.dataDir,
	}

	if cfg.storageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.redisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		GameController: app.GameController,
		GiftsService:   app.GiftsService,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.bind
	serverConfig.Port = cfg.port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}

func main() {
	cfg := &config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}
