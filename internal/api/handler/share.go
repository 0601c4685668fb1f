package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/jpmeyers/santaswap/internal/api/apierr"
	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/services/game"
)

// qrSize is the rendered QR image edge length in pixels, sized for phones
const qrSize = 320

// ShareHandler serves join links as QR images
type ShareHandler struct {
	games *game.Controller
}

// NewShareHandler creates a new share handler
func NewShareHandler(games *game.Controller) *ShareHandler {
	return &ShareHandler{games: games}
}

// QR handles GET /api/game/{code}/qr, returning a PNG QR code that encodes
// the join URL for the game. The game must exist; the link itself carries
// only the code, so no participant data is exposed.
func (h *ShareHandler) QR(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	if _, err := h.games.GetGame(r.Context(), code); err != nil {
		apierr.WriteError(w, err)
		return
	}

	url := joinURL(r, code)

	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// joinURL builds the shareable login link for a game, deriving the scheme
// from TLS state and X-Forwarded-Proto so links survive a reverse proxy
func joinURL(r *http.Request, code model.GameCode) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host + "/?code=" + string(code)
}
