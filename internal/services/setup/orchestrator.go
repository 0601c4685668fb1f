package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/services/assignment"
	"github.com/jpmeyers/santaswap/internal/services/auth"
	"github.com/jpmeyers/santaswap/internal/services/game"
)

// Phase is the current step of the setup-and-reveal flow
type Phase string

const (
	PhaseCollecting     Phase = "collecting"     // Editing the roster
	PhaseReviewing      Phase = "reviewing"      // Read-back before confirmation
	PhaseConfirmed      Phase = "confirmed"      // Record persisted, code issued
	PhaseAuthenticating Phase = "authenticating" // Waiting for a login
	PhaseRevealed       Phase = "revealed"       // Logged in, match visible
)

// ErrWrongPhase is returned when an operation is invalid for the current phase
var ErrWrongPhase = errors.New("operation not valid in current phase")

// ValidationError reports an incomplete or invalid roster field.
// It is re-promptable: no state transition happens when one is returned.
type ValidationError struct {
	Index int
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("participant %d: %s %s", e.Index+1, e.Field, e.Msg)
}

// DraftParticipant holds the raw roster-entry fields before validation
type DraftParticipant struct {
	Name            string
	BirthYear       string
	Interests       string // comma-separated
	GiftPreferences string
}

// Session is the explicit mutable state for one client's flow: the roster
// draft while collecting, the loaded record afterwards, and the client-held
// identity once logged in. Nothing here is persisted server-side.
type Session struct {
	Phase    Phase
	Draft    []DraftParticipant
	Game     *model.Game
	Identity *auth.Identity
}

// NewSession starts a fresh setup flow with one empty roster row
func NewSession() *Session {
	return &Session{
		Phase: PhaseCollecting,
		Draft: []DraftParticipant{{}},
	}
}

// Orchestrator sequences roster entry, review, confirmation, code sharing,
// login and reveal. All state lives in the Session passed to each call.
type Orchestrator struct {
	assignments *assignment.Service
	games       *game.Controller
	auth        *auth.Service
	logger      *slog.Logger
}

// New creates a new setup orchestrator
func New(
	assignments *assignment.Service,
	games *game.Controller,
	auth *auth.Service,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		assignments: assignments,
		games:       games,
		auth:        auth,
		logger:      logger,
	}
}

// AddParticipant appends an empty roster row
func (o *Orchestrator) AddParticipant(sess *Session) error {
	if sess.Phase != PhaseCollecting {
		return ErrWrongPhase
	}
	if len(sess.Draft) >= model.MaxParticipants {
		return model.ErrTooManyParticipants
	}
	sess.Draft = append(sess.Draft, DraftParticipant{})
	return nil
}

// RemoveParticipant deletes the roster row at index
func (o *Orchestrator) RemoveParticipant(sess *Session, index int) error {
	if sess.Phase != PhaseCollecting {
		return ErrWrongPhase
	}
	if index < 0 || index >= len(sess.Draft) {
		return &ValidationError{Index: index, Field: "participant", Msg: "does not exist"}
	}
	if len(sess.Draft) <= 1 {
		return model.ErrRosterAtMinimum
	}
	sess.Draft = append(sess.Draft[:index], sess.Draft[index+1:]...)
	return nil
}

// UpdateParticipant replaces the roster row at index
func (o *Orchestrator) UpdateParticipant(sess *Session, index int, p DraftParticipant) error {
	if sess.Phase != PhaseCollecting {
		return ErrWrongPhase
	}
	if index < 0 || index >= len(sess.Draft) {
		return &ValidationError{Index: index, Field: "participant", Msg: "does not exist"}
	}
	sess.Draft[index] = p
	return nil
}

// Submit validates the full draft and moves to review.
// A validation failure leaves the session collecting, ready to re-submit.
func (o *Orchestrator) Submit(sess *Session) error {
	if sess.Phase != PhaseCollecting {
		return ErrWrongPhase
	}
	if _, err := parseDraft(sess.Draft); err != nil {
		return err
	}
	sess.Phase = PhaseReviewing
	return nil
}

// Edit returns to collecting so the roster row at index can be changed
func (o *Orchestrator) Edit(sess *Session, index int) error {
	if sess.Phase != PhaseReviewing {
		return ErrWrongPhase
	}
	if index < 0 || index >= len(sess.Draft) {
		return &ValidationError{Index: index, Field: "participant", Msg: "does not exist"}
	}
	sess.Phase = PhaseCollecting
	return nil
}

// Confirm finalizes the roster: it generates the assignment, persists the
// record, and issues the game code. Fewer than two participants is a fatal
// configuration error caught before the generator runs.
func (o *Orchestrator) Confirm(ctx context.Context, sess *Session) (*model.Game, error) {
	if sess.Phase != PhaseReviewing {
		return nil, ErrWrongPhase
	}

	participants, err := parseDraft(sess.Draft)
	if err != nil {
		return nil, err
	}
	if len(participants) < model.MinParticipants {
		return nil, model.ErrNotEnoughParticipants
	}

	ids := make([]model.ParticipantID, len(participants))
	for i, p := range participants {
		ids[i] = p.ID
	}

	generated, err := o.assignments.Generate(ids)
	if err != nil {
		return nil, err
	}

	created, err := o.games.CreateGame(ctx, participants, generated)
	if err != nil {
		return nil, err
	}

	sess.Game = created
	sess.Phase = PhaseConfirmed
	return created, nil
}

// Continue moves on once the code has been displayed and shared
func (o *Orchestrator) Continue(sess *Session) error {
	if sess.Phase != PhaseConfirmed {
		return ErrWrongPhase
	}
	sess.Phase = PhaseAuthenticating
	return nil
}

// Join loads an existing game by code and enters the login step directly.
// A failed load leaves the session unchanged so the code can be re-entered.
func (o *Orchestrator) Join(ctx context.Context, sess *Session, code model.GameCode) error {
	loaded, err := o.games.GetGame(ctx, code)
	if err != nil {
		return err
	}
	sess.Game = loaded
	sess.Phase = PhaseAuthenticating
	return nil
}

// Login authenticates against the loaded record. Invalid credentials leave
// the session authenticating with no attempt counter.
func (o *Orchestrator) Login(sess *Session, claimedID model.ParticipantID, secret string) error {
	if sess.Phase != PhaseAuthenticating {
		return ErrWrongPhase
	}
	identity, err := o.auth.Authenticate(sess.Game, claimedID, secret)
	if err != nil {
		return err
	}
	sess.Identity = identity
	sess.Phase = PhaseRevealed
	return nil
}

// Logout clears the identity but keeps the record loaded for the next login
func (o *Orchestrator) Logout(sess *Session) error {
	if sess.Phase != PhaseRevealed {
		return ErrWrongPhase
	}
	sess.Identity = nil
	sess.Phase = PhaseAuthenticating
	return nil
}

// Reveal returns the logged-in participant's assigned recipient
func (o *Orchestrator) Reveal(sess *Session) (*model.Participant, error) {
	if sess.Phase != PhaseRevealed || sess.Identity == nil {
		return nil, ErrWrongPhase
	}
	return sess.Game.RecipientOf(sess.Identity.ParticipantID)
}

// parseDraft validates every row and converts the draft into participants
func parseDraft(draft []DraftParticipant) ([]model.Participant, error) {
	participants := make([]model.Participant, 0, len(draft))
	seen := make(map[model.ParticipantID]bool, len(draft))

	for i, row := range draft {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, &ValidationError{Index: i, Field: "name", Msg: "is required"}
		}
		id := model.ParticipantID(name)
		if seen[id] {
			return nil, &ValidationError{Index: i, Field: "name", Msg: "is already taken"}
		}
		seen[id] = true

		year := strings.TrimSpace(row.BirthYear)
		if year == "" {
			return nil, &ValidationError{Index: i, Field: "birth year", Msg: "is required"}
		}
		birthYear, err := strconv.Atoi(year)
		if err != nil || birthYear < 1900 || birthYear > 2100 {
			return nil, &ValidationError{Index: i, Field: "birth year", Msg: "must be a four-digit year"}
		}

		if strings.TrimSpace(row.Interests) == "" {
			return nil, &ValidationError{Index: i, Field: "interests", Msg: "are required"}
		}

		participants = append(participants, model.Participant{
			ID:              id,
			Secret:          year,
			BirthYear:       birthYear,
			Interests:       splitInterests(row.Interests),
			GiftPreferences: strings.TrimSpace(row.GiftPreferences),
		})
	}

	return participants, nil
}

// splitInterests splits a comma-separated list, dropping empty entries
func splitInterests(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
