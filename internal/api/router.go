package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jpmeyers/santaswap/internal/api/handler"
	"github.com/jpmeyers/santaswap/internal/middleware"
	"github.com/jpmeyers/santaswap/internal/services/auth"
	"github.com/jpmeyers/santaswap/internal/services/game"
	"github.com/jpmeyers/santaswap/internal/services/gifts"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	GameController *game.Controller
	GiftsService   *gifts.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.AuthService)
	giftsHandler := handler.NewGiftsHandler(cfg.GameController, cfg.AuthService, cfg.GiftsService)
	shareHandler := handler.NewShareHandler(cfg.GameController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Single game endpoint dispatching on the action field, matching the
	// wire contract existing clients already speak
	api.HandleFunc("/game", gameHandler.Action).Methods(http.MethodPost)

	// Reveal, share and gift-idea endpoints for thin clients
	api.HandleFunc("/game/{code}/reveal", gameHandler.Reveal).Methods(http.MethodPost)
	api.HandleFunc("/game/{code}/qr", shareHandler.QR).Methods(http.MethodGet)
	api.HandleFunc("/gifts", giftsHandler.Suggest).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
