package response

import (
	"github.com/jpmeyers/santaswap/internal/model"
)

// GameCreated is the response for a successful create action
type GameCreated struct {
	GameCode string `json:"gameCode"`
}

// Demographics mirrors the stored per-participant details on the wire
type Demographics struct {
	BirthYear       int      `json:"birthYear"`
	Interests       []string `json:"interests"`
	GiftPreferences string   `json:"giftPreferences,omitempty"`
}

// GamePayload is the wire shape returned by the load action. It matches
// what clients originally persisted: matches, demographics and the
// name -> secret login map.
type GamePayload struct {
	Matches          map[string]string       `json:"matches"`
	UserDemographics map[string]Demographics `json:"userDemographics"`
	Users            map[string]string       `json:"users"`
}

// GamePayloadFromModel converts a game record to its wire shape
func GamePayloadFromModel(g *model.Game) GamePayload {
	matches := make(map[string]string, len(g.Assignment))
	for giver, recipient := range g.Assignment {
		matches[string(giver)] = string(recipient)
	}

	demographics := make(map[string]Demographics, len(g.Participants))
	users := make(map[string]string, len(g.Participants))
	for _, p := range g.Participants {
		demographics[string(p.ID)] = Demographics{
			BirthYear:       p.BirthYear,
			Interests:       p.Interests,
			GiftPreferences: p.GiftPreferences,
		}
		users[string(p.ID)] = p.Secret
	}

	return GamePayload{
		Matches:          matches,
		UserDemographics: demographics,
		Users:            users,
	}
}

// Recipient describes the participant a giver was matched with
type Recipient struct {
	Name            string   `json:"name"`
	BirthYear       int      `json:"birthYear"`
	Interests       []string `json:"interests"`
	GiftPreferences string   `json:"giftPreferences,omitempty"`
}

// RecipientFromModel converts a participant into a reveal response entry.
// The recipient's secret never appears here.
func RecipientFromModel(p *model.Participant) Recipient {
	return Recipient{
		Name:            string(p.ID),
		BirthYear:       p.BirthYear,
		Interests:       p.Interests,
		GiftPreferences: p.GiftPreferences,
	}
}

// Reveal is the response for a successful reveal
type Reveal struct {
	Participant string    `json:"participant"`
	Recipient   Recipient `json:"recipient"`
}

// Suggestions is the response for gift-idea generation
type Suggestions struct {
	Suggestions []string `json:"suggestions"`
}
