package assignment

import (
	"log/slog"

	"github.com/jpmeyers/santaswap/internal/dependencies/random"
	"github.com/jpmeyers/santaswap/internal/model"
)

// Service generates giver -> recipient assignments for a roster
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new assignment service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// Generate produces a fixed-point-free bijection over ids: everyone gives to
// exactly one other participant and receives from exactly one.
//
// The roster is shuffled with an unbiased Fisher-Yates pass, then each
// shuffled position i is paired with position (i+1) mod n. The wrap-around
// pairing forms a single cycle covering the whole roster, which cannot
// contain a fixed point for n >= 2.
func (s *Service) Generate(ids []model.ParticipantID) (model.Assignment, error) {
	if len(ids) < model.MinParticipants {
		return nil, model.ErrNotEnoughParticipants
	}

	shuffled := make([]model.ParticipantID, len(ids))
	copy(shuffled, ids)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	result := make(model.Assignment, len(shuffled))
	for i, giver := range shuffled {
		result[giver] = shuffled[(i+1)%len(shuffled)]
	}

	// The cycle construction is self-free for n >= 2, but verify anyway so a
	// future change to the pairing scheme cannot silently ship a bad mapping.
	if err := result.Validate(ids); err != nil {
		s.logger.Error("generated assignment failed verification",
			slog.Int("roster_size", len(ids)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return result, nil
}
