package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// EnvAuthTokens overrides the configured tokens as a comma-separated
	// list of token:role pairs.
	EnvAuthTokens = "AUTH_TOKENS"
)

// AuthConfig maps bearer tokens to roles.
type AuthConfig struct {
	// Tokens maps a bearer token to its role ("admin" or "viewer").
	Tokens map[string]string `toml:"tokens"`
}

// Finalize applies defaults, loads environment overrides, and validates the auth configuration.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies token mappings from overlay configuration.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Tokens != nil {
		c.Tokens = overlay.Tokens
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.Tokens == nil {
		c.Tokens = make(map[string]string)
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthTokens); v != "" {
		tokens := make(map[string]string)
		for _, pair := range strings.Split(v, ",") {
			token, role, ok := strings.Cut(strings.TrimSpace(pair), ":")
			if ok && token != "" && role != "" {
				tokens[token] = role
			}
		}
		c.Tokens = tokens
	}
}

func (c *AuthConfig) validate() error {
	for token, role := range c.Tokens {
		if token == "" {
			return fmt.Errorf("empty token configured")
		}
		if role != "admin" && role != "viewer" {
			return fmt.Errorf("invalid role %q for configured token", role)
		}
	}
	return nil
}
