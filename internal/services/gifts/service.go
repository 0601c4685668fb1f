package gifts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jpmeyers/santaswap/internal/dependencies/clock"
	"github.com/jpmeyers/santaswap/internal/model"
)

// Service produces gift-idea text for a recipient via the Anthropic
// messages API, with a canned fallback when no key is configured or the
// call fails. The response format tolerance lives entirely here; callers
// just get an ordered list of short suggestion strings.
type Service struct {
	cfg    Config
	clock  clock.Clock
	client *http.Client
	logger *slog.Logger
}

// New creates a new gift-suggestion service
func New(cfg Config, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		cfg:   cfg,
		clock: clock,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		logger: logger,
	}
}

// Suggest returns gift ideas for the given recipient
func (s *Service) Suggest(ctx context.Context, recipient *model.Participant) ([]string, error) {
	if !s.cfg.IsEnabled() {
		return s.mockSuggestions(recipient), nil
	}

	prompt := s.buildPrompt(recipient)
	text, err := s.callAnthropic(ctx, prompt)
	if err != nil {
		s.logger.Warn("gift suggestion call failed, using fallback",
			slog.String("recipient", string(recipient.ID)),
			slog.String("error", err.Error()),
		)
		return s.mockSuggestions(recipient), nil
	}

	suggestions := parseSuggestions(text)
	if len(suggestions) == 0 {
		return s.mockSuggestions(recipient), nil
	}
	return suggestions, nil
}

// buildPrompt renders the gift-advisor prompt from the recipient's
// demographics
func (s *Service) buildPrompt(recipient *model.Participant) string {
	age := s.clock.Now().Year() - recipient.BirthYear

	return fmt.Sprintf(`You are a helpful gift advisor. I need gift suggestions for %s, who is %d years old, with a budget under $30.

Their interests include: %s
They typically enjoy: %s

Please provide exactly 10 specific gift ideas that:
1. Cost less than $30
2. Match their interests and preferences
3. Are practical and available from common retailers

For each suggestion, format the response as:
• Gift Name - Brief explanation of why they'd like it based on their interests

Remember to be specific - don't just suggest generic categories. For example, instead of "a book", suggest "The Midnight Library by Matt Haig".`,
		recipient.ID, age, strings.Join(recipient.Interests, ", "), recipient.GiftPreferences)
}

// anthropicRequest is the messages API request body
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the subset of the messages API response we read
type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// callAnthropic sends a single-user-message request and returns the text
func (s *Service) callAnthropic(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:     s.cfg.Model,
		MaxTokens: s.cfg.MaxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.BaseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.cfg.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		if parsed.Error != nil {
			return "", fmt.Errorf("anthropic API: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("anthropic API: HTTP %d", resp.StatusCode)
	}
	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("anthropic API: empty response")
	}
	return parsed.Content[0].Text, nil
}

// parseSuggestions keeps the bullet-point lines and strips the bullets
func parseSuggestions(text string) []string {
	var suggestions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "•") {
			if cleaned := strings.TrimSpace(strings.TrimPrefix(line, "•")); cleaned != "" {
				suggestions = append(suggestions, cleaned)
			}
		}
	}
	return suggestions
}

// mockSuggestions derives generic ideas from the recipient's interests so
// the flow stays usable without an API key
func (s *Service) mockSuggestions(recipient *model.Participant) []string {
	suggestions := make([]string, 0, len(recipient.Interests)+1)
	for _, interest := range recipient.Interests {
		suggestions = append(suggestions,
			fmt.Sprintf("A small gift related to %s - something under $30 that fits their interest", interest))
	}
	suggestions = append(suggestions, "A gift card to a shop they like - a safe fallback under $30")
	return suggestions
}
