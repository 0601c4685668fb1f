package model

import "time"

// Roster size limits for a gift exchange
const (
	// MinParticipants is the smallest roster with a valid derangement
	MinParticipants = 2
	// MaxParticipants bounds the roster during setup
	MaxParticipants = 8
)

// Game is the persisted aggregate for one gift exchange: the roster with
// login secrets and demographics, plus the giver -> recipient assignment.
// A game is created whole at setup confirmation and is read-only afterwards.
type Game struct {
	Code GameCode

	// Participants in roster order (the order drives cycle construction,
	// so it is kept as an explicit sequence rather than map iteration order)
	Participants []Participant

	Assignment Assignment

	CreatedAt time.Time
}

// GetParticipant returns the participant with the given id, or nil if not found
func (g *Game) GetParticipant(id ParticipantID) *Participant {
	for i := range g.Participants {
		if g.Participants[i].ID == id {
			return &g.Participants[i]
		}
	}
	return nil
}

// ParticipantIDs returns the roster ids in order
func (g *Game) ParticipantIDs() []ParticipantID {
	ids := make([]ParticipantID, len(g.Participants))
	for i, p := range g.Participants {
		ids[i] = p.ID
	}
	return ids
}

// RecipientOf returns the assigned recipient for the given giver
func (g *Game) RecipientOf(giver ParticipantID) (*Participant, error) {
	recipientID, ok := g.Assignment[giver]
	if !ok {
		return nil, ErrParticipantNotFound
	}
	recipient := g.GetParticipant(recipientID)
	if recipient == nil {
		return nil, ErrInvalidAssignment
	}
	return recipient, nil
}

// Validate checks the structural invariants of a stored game: a non-trivial
// roster with unique non-empty names and secrets, and an assignment that is
// a derangement of exactly that roster.
func (g *Game) Validate() error {
	if len(g.Participants) < MinParticipants {
		return ErrNotEnoughParticipants
	}
	if len(g.Participants) > MaxParticipants {
		return ErrTooManyParticipants
	}

	seen := make(map[ParticipantID]bool, len(g.Participants))
	for _, p := range g.Participants {
		if p.ID == "" || p.Secret == "" {
			return ErrIncompleteParticipant
		}
		if seen[p.ID] {
			return ErrDuplicateParticipant
		}
		seen[p.ID] = true
	}

	return g.Assignment.Validate(g.ParticipantIDs())
}
