// Package llm provides centralized LLM configuration and client abstractions
// for the conversational agent. The abstractions keep provider types out of
// the rest of the codebase and enable future multi-provider support.
package llm

import (
	"os"
	"strconv"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

const defaultModel = "gemini-2.5-flash"

// Config holds the model configuration for the agent.
type Config struct {
	Provider        Provider
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           defaultModel,
		Temperature:     0.7,
		MaxOutputTokens: 2048,
	}
}

// ConfigFromEnv returns the default configuration with environment
// overrides applied: SEASON_RADAR_MODEL selects the model and
// SEASON_RADAR_TEMPERATURE adjusts sampling temperature.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if model := os.Getenv("SEASON_RADAR_MODEL"); model != "" {
		cfg.Model = model
	}
	if raw := os.Getenv("SEASON_RADAR_TEMPERATURE"); raw != "" {
		if temp, err := strconv.ParseFloat(raw, 32); err == nil {
			cfg.Temperature = float32(temp)
		}
	}
	return cfg
}

// WithModel returns a copy of the Config using a specific model.
func (c *Config) WithModel(model string) *Config {
	copied := *c
	copied.Model = model
	return &copied
}
