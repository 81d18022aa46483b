package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// EnvAIBaseURL overrides the AI service base URL.
	EnvAIBaseURL = "AI_BASE_URL"

	// EnvAIAPIKey overrides the AI service API key.
	EnvAIAPIKey = "AI_API_KEY"

	// EnvAIModel overrides the AI model identifier.
	EnvAIModel = "AI_MODEL"

	// EnvAITimeout overrides the AI request timeout.
	EnvAITimeout = "AI_TIMEOUT"

	// EnvAIMaxQuestions overrides the per-document question cap.
	EnvAIMaxQuestions = "AI_MAX_QUESTIONS"
)

// AIConfig contains configuration for the question-answer generation service.
type AIConfig struct {
	BaseURL      string  `toml:"base_url"`
	APIKey       string  `toml:"api_key"`
	Model        string  `toml:"model"`
	Temperature  float64 `toml:"temperature"`
	Timeout      string  `toml:"timeout"`
	MaxQuestions int     `toml:"max_questions"`
}

// TimeoutDuration parses and returns the request timeout as a time.Duration.
func (c *AIConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the AI configuration.
func (c *AIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AIConfig) Merge(overlay *AIConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.MaxQuestions != 0 {
		c.MaxQuestions = overlay.MaxQuestions
	}
}

func (c *AIConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.2
	}
	if c.Timeout == "" {
		c.Timeout = "120s"
	}
	if c.MaxQuestions == 0 {
		c.MaxQuestions = 50
	}
}

func (c *AIConfig) loadEnv() {
	if v := os.Getenv(EnvAIBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAIAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvAIModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvAITimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvAIMaxQuestions); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxQuestions = n
		}
	}
}

func (c *AIConfig) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url required")
	}
	if c.Model == "" {
		return fmt.Errorf("model required")
	}
	if c.MaxQuestions < 1 {
		return fmt.Errorf("max_questions must be positive")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
