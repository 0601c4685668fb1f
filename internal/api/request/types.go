package request

// Demographics carries one participant's gift-relevant details on the wire
type Demographics struct {
	BirthYear       int      `json:"birthYear"`
	Interests       []string `json:"interests"`
	GiftPreferences string   `json:"giftPreferences,omitempty"`
}

// GamePayload is the wire shape of a game record. The field names and
// structure match what existing clients already send and store.
type GamePayload struct {
	Matches          map[string]string       `json:"matches"`
	UserDemographics map[string]Demographics `json:"userDemographics"`
	Users            map[string]string       `json:"users"`
}

// GameActionRequest is the body of POST /api/game. Action selects between
// creating a new game and loading an existing one by code.
type GameActionRequest struct {
	Action   string       `json:"action"`
	GameCode string       `json:"gameCode,omitempty"`
	GameData *GamePayload `json:"gameData,omitempty"`
}

// Supported actions for POST /api/game
const (
	ActionCreate = "create"
	ActionLoad   = "load"
)

// CredentialsRequest carries a claimed identity for reveal and gift requests
type CredentialsRequest struct {
	GameCode string `json:"gameCode,omitempty"`
	Name     string `json:"name"`
	Secret   string `json:"secret"`
}
