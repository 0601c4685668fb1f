package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jpmeyers/santaswap/internal/api/apierr"
	"github.com/jpmeyers/santaswap/internal/api/request"
	"github.com/jpmeyers/santaswap/internal/api/response"
	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/services/auth"
	"github.com/jpmeyers/santaswap/internal/services/game"
)

// GameHandler handles game record endpoints
type GameHandler struct {
	games *game.Controller
	auth  *auth.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *game.Controller, auth *auth.Service) *GameHandler {
	return &GameHandler{
		games: games,
		auth:  auth,
	}
}

// Action handles POST /api/game, dispatching on the action field
func (h *GameHandler) Action(w http.ResponseWriter, r *http.Request) {
	var req request.GameActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	switch req.Action {
	case request.ActionCreate:
		h.create(w, r, req)
	case request.ActionLoad:
		h.load(w, r, req)
	default:
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid action"))
	}
}

// create persists a new game record and returns its code
func (h *GameHandler) create(w http.ResponseWriter, r *http.Request, req request.GameActionRequest) {
	if req.GameData == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("gameData is required"))
		return
	}

	participants, assignment := req.GameData.ToModel()

	created, err := h.games.CreateGame(r.Context(), participants, assignment)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameCreated{GameCode: string(created.Code)})
}

// load returns the stored payload for a game code
func (h *GameHandler) load(w http.ResponseWriter, r *http.Request, req request.GameActionRequest) {
	if req.GameCode == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("gameCode is required"))
		return
	}

	loaded, err := h.games.GetGame(r.Context(), model.GameCode(req.GameCode))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamePayloadFromModel(loaded))
}

// Reveal handles POST /api/game/{code}/reveal: a stateless credential check
// followed by a lookup of the giver's assigned recipient
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	var req request.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" || req.Secret == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name and secret are required"))
		return
	}

	loaded, err := h.games.GetGame(r.Context(), code)
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

	response.JSON(w, http.StatusOK, response.Reveal{
		Participant: string(identity.ParticipantID),
		Recipient:   response.RecipientFromModel(recipient),
	})
}
