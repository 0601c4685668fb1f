package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jpmeyers/santaswap/internal/api/apierr"
	"github.com/jpmeyers/santaswap/internal/api/request"
	"github.com/jpmeyers/santaswap/internal/api/response"
	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/services/auth"
	"github.com/jpmeyers/santaswap/internal/services/game"
	"github.com/jpmeyers/santaswap/internal/services/gifts"
)

// GiftsHandler handles gift suggestion endpoints
type GiftsHandler struct {
	games *game.Controller
	auth  *auth.Service
	gifts *gifts.Service
}

// NewGiftsHandler creates a new gifts handler
func NewGiftsHandler(games *game.Controller, auth *auth.Service, gifts *gifts.Service) *GiftsHandler {
	return &GiftsHandler{
		games: games,
		auth:  auth,
		gifts: gifts,
	}
}

// Suggest handles POST /api/gifts: credentials plus a game code, returning
// gift ideas for the caller's assigned recipient. The recipient is resolved
// server-side so a giver can only ever request ideas for their own match.
func (h *GiftsHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req request.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.GameCode == "" || req.Name == "" || req.Secret == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("gameCode, name and secret are required"))
		return
	}

	loaded, err := h.games.GetGame(r.Context(), model.GameCode(req.GameCode))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	identity, err := h.auth.Authenticate(loaded, model.ParticipantID(req.Name), req.Secret)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	recipient, err := loaded.RecipientOf(identity.ParticipantID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	suggestions, err := h.gifts.Suggest(r.Context(), recipient)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Suggestions{Suggestions: suggestions})
}
