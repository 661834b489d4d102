// Package config holds metaloc runtime configuration. It is built once at
// startup and passed explicitly to the components that need it; nothing
// else reads the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the stock OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultModel is used when no model override is configured.
	DefaultModel = "gpt-4o-mini"
	// DefaultTimeout bounds a single translation request.
	DefaultTimeout = 60 * time.Second
)

// Config is the translation backend configuration.
type Config struct {
	// APIKey authenticates against the backend. May be empty: the
	// translate client rejects requests lazily, so a run that never
	// needs the backend never requires a key.
	APIKey string
	// BaseURL is the OpenAI-compatible API base URL.
	BaseURL string
	// Model is the chat-completion model identifier.
	Model string
	// Timeout is the per-request timeout.
	Timeout time.Duration
}

// Load builds the configuration from the environment. A .env file in the
// current directory is honored when present. METALOC_API_KEY falls back
// to OPENAI_API_KEY so existing OpenAI tooling setups keep working.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIKey:  os.Getenv("METALOC_API_KEY"),
		BaseURL: os.Getenv("METALOC_BASE_URL"),
		Model:   os.Getenv("METALOC_MODEL"),
		Timeout: DefaultTimeout,
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg
}
