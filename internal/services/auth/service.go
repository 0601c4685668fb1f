package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/jpmeyers/santaswap/internal/model"
)

// ErrInvalidCredentials is returned for every failed login. It does not
// distinguish an unknown name from a wrong secret, so callers cannot probe
// the roster.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the result of a successful credential check. Sessions are
// client-held; nothing is stored server-side, and a login is simply the
// same stateless check replayed.
type Identity struct {
	GameCode      model.GameCode
	ParticipantID model.ParticipantID
}

// Service validates claimed identities against a game record
type Service struct{}

// New creates a new auth service
func New() *Service {
	return &Service{}
}

// Authenticate checks that claimedID names a participant of the game and
// that suppliedSecret matches that participant's stored secret. Any failure
// yields the same ErrInvalidCredentials.
func (s *Service) Authenticate(game *model.Game, claimedID model.ParticipantID, suppliedSecret string) (*Identity, error) {
	participant := game.GetParticipant(claimedID)
	if participant == nil {
		return nil, ErrInvalidCredentials
	}

	if !verifySecret(participant.Secret, suppliedSecret) {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		GameCode:      game.Code,
		ParticipantID: participant.ID,
	}, nil
}

// verifySecret compares a stored secret with a supplied one.
//
// Secrets are stored and compared as plaintext birth years. That is a known
// weakness of the scheme, kept as-is; this function is the single place to
// swap in hashing without touching any caller.
func verifySecret(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
