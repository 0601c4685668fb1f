package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/services/auth"
	"github.com/jpmeyers/santaswap/internal/services/setup"
)

// ErrorResponse is the wire shape for failures: a single error string,
// e.g. {"error": "Game not found"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// httpError combines an HTTP status code with a user-facing message
type httpError struct {
	status  int
	message string
}

// Error implements the error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.message})
}

// toHTTPError maps application errors to HTTP statuses and messages
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var verr *setup.ValidationError
	if errors.As(err, &verr) {
		return &httpError{http.StatusBadRequest, verr.Error()}
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, "Game not found"}
	case errors.Is(err, auth.ErrInvalidCredentials):
		// Uniform message: never hint whether the name or the secret was wrong
		return &httpError{http.StatusUnauthorized, "Invalid credentials. Please try again."}
	case errors.Is(err, model.ErrNotEnoughParticipants),
		errors.Is(err, model.ErrTooManyParticipants),
		errors.Is(err, model.ErrDuplicateParticipant),
		errors.Is(err, model.ErrIncompleteParticipant),
		errors.Is(err, model.ErrSelfAssignment),
		errors.Is(err, model.ErrInvalidAssignment):
		return &httpError{http.StatusBadRequest, err.Error()}
	case errors.Is(err, model.ErrParticipantNotFound):
		return &httpError{http.StatusNotFound, err.Error()}
	case errors.Is(err, model.ErrCorruptGameRecord),
		errors.Is(err, model.ErrCodeSpaceExhausted):
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewInvalidRequestError creates a 400 error with a message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewInternalError creates a 500 error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
