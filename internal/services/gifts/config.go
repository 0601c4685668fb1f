package gifts

import "os"

// Config holds the gift-suggestion AI configuration
type Config struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	MaxTokens int    `json:"maxTokens"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultConfig returns the default AI configuration, keyed from the environment
func DefaultConfig() Config {
	return Config{
		APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		BaseURL:   getEnvOrDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		Model:     getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-sonnet-20240229"),
		MaxTokens: 1000,
		TimeoutMS: 15000,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *Config) IsEnabled() bool {
	return c.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
