package request

import (
	"sort"

	"github.com/jpmeyers/santaswap/internal/model"
)

// ToModel converts the wire payload into a roster and assignment.
// The wire format keys participants by name in unordered maps, so the
// roster sequence is rebuilt in sorted-name order for determinism; the
// assignment itself fixes the semantics either way.
func (p *GamePayload) ToModel() ([]model.Participant, model.Assignment) {
	names := make([]string, 0, len(p.Users))
	for name := range p.Users {
		names = append(names, name)
	}
	sort.Strings(names)

	participants := make([]model.Participant, 0, len(names))
	for _, name := range names {
		participant := model.Participant{
			ID:     model.ParticipantID(name),
			Secret: p.Users[name],
		}
		if demo, ok := p.UserDemographics[name]; ok {
			participant.BirthYear = demo.BirthYear
			participant.Interests = demo.Interests
			participant.GiftPreferences = demo.GiftPreferences
		}
		participants = append(participants, participant)
	}

	assignment := make(model.Assignment, len(p.Matches))
	for giver, recipient := range p.Matches {
		assignment[model.ParticipantID(giver)] = model.ParticipantID(recipient)
	}

	return participants, assignment
}
