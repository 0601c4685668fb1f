package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreateResult:
		o.printCreateResult(v)
	case GameView:
		o.printGameView(v)
	case RevealResult:
		o.printRevealResult(v)
	case SuggestionsResult:
		o.printSuggestionsResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Demographics response type (matches API)
type Demographics struct {
	BirthYear       int      `json:"birthYear"`
	Interests       []string `json:"interests"`
	GiftPreferences string   `json:"giftPreferences,omitempty"`
}

// GameView is the stored game payload returned by the load action
type GameView struct {
	Matches          map[string]string       `json:"matches"`
	UserDemographics map[string]Demographics `json:"userDemographics"`
	Users            map[string]string       `json:"users"`
}

// CreateResult combines the minted code with the share message
type CreateResult struct {
	GameCode     string `json:"gameCode"`
	ShareMessage string `json:"shareMessage"`
}

// Recipient response type
type Recipient struct {
	Name            string   `json:"name"`
	BirthYear       int      `json:"birthYear"`
	Interests       []string `json:"interests"`
	GiftPreferences string   `json:"giftPreferences,omitempty"`
}

// RevealResult response type
type RevealResult struct {
	Participant string    `json:"participant"`
	Recipient   Recipient `json:"recipient"`
}

// SuggestionsResult response type
type SuggestionsResult struct {
	Suggestions []string `json:"suggestions"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCreateResult(r CreateResult) {
	fmt.Printf("Game created: %s\n", r.GameCode)
	fmt.Println()
	fmt.Println(r.ShareMessage)
}

func (o *Output) printGameView(g GameView) {
	names := make([]string, 0, len(g.Users))
	for name := range g.Users {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Participants (%d):\n", len(names))
	for _, name := range names {
		d := g.UserDemographics[name]
		line := fmt.Sprintf("  - %s (born %d)", name, d.BirthYear)
		if len(d.Interests) > 0 {
			line += " - " + strings.Join(d.Interests, ", ")
		}
		fmt.Println(line)
	}
}

func (o *Output) printRevealResult(r RevealResult) {
	fmt.Printf("%s, you are the Secret Santa for: %s\n", r.Participant, r.Recipient.Name)
	if len(r.Recipient.Interests) > 0 {
		fmt.Printf("Interests: %s\n", strings.Join(r.Recipient.Interests, ", "))
	}
	if r.Recipient.GiftPreferences != "" {
		fmt.Printf("Gift preferences: %s\n", r.Recipient.GiftPreferences)
	}
}

func (o *Output) printSuggestionsResult(s SuggestionsResult) {
	fmt.Println("Gift ideas:")
	for _, suggestion := range s.Suggestions {
		fmt.Printf("  - %s\n", suggestion)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
