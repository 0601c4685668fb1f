package model

// ParticipantID identifies a participant within a single game.
// It is the participant's display name and must be unique in the roster.
type ParticipantID string

// GameCode is the short numeric identifier used to locate and share a game
type GameCode string

// Participant represents one member of a gift exchange
type Participant struct {
	ID              ParticipantID
	Secret          string // birth year, used as the login secret
	BirthYear       int
	Interests       []string
	GiftPreferences string // optional free text
}

// Assignment maps each giver to their recipient.
// A valid assignment is a fixed-point-free bijection over the roster.
type Assignment map[ParticipantID]ParticipantID

// Validate checks that the assignment is a derangement of exactly the given
// ids: every id appears once as a giver and once as a recipient, and nobody
// is assigned to themselves.
func (a Assignment) Validate(ids []ParticipantID) error {
	if len(a) != len(ids) {
		return ErrInvalidAssignment
	}

	known := make(map[ParticipantID]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}

	seen := make(map[ParticipantID]bool, len(ids))
	for _, id := range ids {
		recipient, ok := a[id]
		if !ok {
			return ErrInvalidAssignment
		}
		if recipient == id {
			return ErrSelfAssignment
		}
		if !known[recipient] {
			return ErrInvalidAssignment
		}
		if seen[recipient] {
			return ErrInvalidAssignment
		}
		seen[recipient] = true
	}

	return nil
}
