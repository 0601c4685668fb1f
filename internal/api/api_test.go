package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmeyers/santaswap/internal/api"
	"github.com/jpmeyers/santaswap/internal/api/request"
	"github.com/jpmeyers/santaswap/internal/api/response"
	"github.com/jpmeyers/santaswap/internal/factory"
	"github.com/jpmeyers/santaswap/internal/services/gifts"
	"github.com/jpmeyers/santaswap/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock.
	// Gift suggestions run with an unconfigured API so the canned fallback is used.
	app, err := factory.New(factory.Config{
		Logger:      logger,
		GiftsConfig: &gifts.Config{},
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		GameController: app.GameController,
		GiftsService:   app.GiftsService,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// threePersonPayload builds a valid game payload: a three-cycle over
// Alice, Bob and Carol with birth-year secrets
func threePersonPayload() *request.GamePayload {
	return &request.GamePayload{
		Matches: map[string]string{
			"Alice": "Bob",
			"Bob":   "Carol",
			"Carol": "Alice",
		},
		UserDemographics: map[string]request.Demographics{
			"Alice": {BirthYear: 1990, Interests: []string{"hiking", "cooking"}},
			"Bob":   {BirthYear: 1985, Interests: []string{"chess"}, GiftPreferences: "no candles"},
			"Carol": {BirthYear: 2001, Interests: []string{"painting"}},
		},
		Users: map[string]string{
			"Alice": "1990",
			"Bob":   "1985",
			"Carol": "2001",
		},
	}
}

// createGame drives the create action and returns the minted code
func createGame(t *testing.T, ts *testServer) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/game", request.GameActionRequest{
		Action:   request.ActionCreate,
		GameData: threePersonPayload(),
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp response.GameCreated
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.GameCode, 8)
	return resp.GameCode
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateAndLoadGame(t *testing.T) {
	ts := newTestServer(t)

	code := createGame(t, ts)

	rr := ts.request(http.MethodPost, "/api/game", request.GameActionRequest{
		Action:   request.ActionLoad,
		GameCode: code,
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var loaded response.GamePayload
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loaded))

	assert.Equal(t, "Bob", loaded.Matches["Alice"])
	assert.Equal(t, "Carol", loaded.Matches["Bob"])
	assert.Equal(t, "Alice", loaded.Matches["Carol"])
	assert.Equal(t, 1985, loaded.UserDemographics["Bob"].BirthYear)
	assert.Equal(t, "no candles", loaded.UserDemographics["Bob"].GiftPreferences)
	assert.Equal(t, "1990", loaded.Users["Alice"])
}

func TestLoadUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/game", request.GameActionRequest{
		Action:   request.ActionLoad,
		GameCode: "00000000",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "Game not found"}`, rr.Body.String())
}

func TestInvalidAction(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/game", request.GameActionRequest{
		Action: "destroy",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid action")
}

func TestCreateRejectsSelfAssignment(t *testing.T) {
	ts := newTestServer(t)

	payload := threePersonPayload()
	payload.Matches = map[string]string{
		"Alice": "Alice",
		"Bob":   "Carol",
		"Carol": "Bob",
	}

	rr := ts.request(http.MethodPost, "/api/game", request.GameActionRequest{
		Action:   request.ActionCreate,
		GameData: payload,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateRequiresGameData(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/game", request.GameActionRequest{
		Action: request.ActionCreate,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReveal(t *testing.T) {
	ts := newTestServer(t)

	code := createGame(t, ts)

	rr := ts.request(http.MethodPost, "/api/game/"+code+"/reveal", request.CredentialsRequest{
		Name:   "Alice",
		Secret: "1990",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Reveal
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "Alice", resp.Participant)
	assert.Equal(t, "Bob", resp.Recipient.Name)
	assert.Equal(t, 1985, resp.Recipient.BirthYear)
	assert.Equal(t, []string{"chess"}, resp.Recipient.Interests)
}

func TestRevealRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)

	code := createGame(t, ts)

	// Wrong secret and unknown name produce identical responses
	wrongSecret := ts.request(http.MethodPost, "/api/game/"+code+"/reveal", request.CredentialsRequest{
		Name:   "Alice",
		Secret: "1991",
	})
	unknownName := ts.request(http.MethodPost, "/api/game/"+code+"/reveal", request.CredentialsRequest{
		Name:   "Mallory",
		Secret: "1990",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongSecret.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownName.Code)
	assert.Equal(t, wrongSecret.Body.String(), unknownName.Body.String())
}

func TestRevealUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/game/99999999/reveal", request.CredentialsRequest{
		Name:   "Alice",
		Secret: "1990",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "Game not found"}`, rr.Body.String())
}

func TestGiftSuggestions(t *testing.T) {
	ts := newTestServer(t)

	code := createGame(t, ts)

	rr := ts.request(http.MethodPost, "/api/gifts", request.CredentialsRequest{
		GameCode: code,
		Name:     "Alice",
		Secret:   "1990",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Suggestions
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Suggestions)
}

func TestGiftSuggestionsRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	code := createGame(t, ts)

	rr := ts.request(http.MethodPost, "/api/gifts", request.CredentialsRequest{
		GameCode: code,
		Name:     "Alice",
		Secret:   "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestShareQR(t *testing.T) {
	ts := newTestServer(t)

	code := createGame(t, ts)

	rr := ts.request(http.MethodGet, "/api/game/"+code+"/qr", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Body.Bytes())
}

func TestShareQRUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/game/12345678/qr", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
