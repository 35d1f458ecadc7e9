package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 9090,
		"model": "gemini-2.5-pro",
		"temperature": 0.4,
		"session_ttl_minutes": 15,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 0.4, cfg.Temperature)
	assert.Equal(t, 15, cfg.SessionTTLMinutes)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{
		Port: 70000,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_TemperatureOutOfRange(t *testing.T) {
	cfg := &Config{
		Temperature: 3.5,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
}

func TestValidate_MissingCatalogFile(t *testing.T) {
	cfg := &Config{
		Data: "/nonexistent/cities.json",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:              8080,
		Model:             "gemini-2.5-flash",
		Temperature:       0.7,
		SessionTTLMinutes: 30,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Model:             "gemini-2.5-flash",
		Port:              8080,
		SessionTTLMinutes: 30,
		Temperature:       0.7,
	}

	partial := Config{
		Model:  "gemini-2.5-pro",
		APIKey: "test-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "gemini-2.5-pro", merged.Model)
	assert.Equal(t, "test-key", merged.APIKey)

	// Default values should fill in empty fields
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, 30, merged.SessionTTLMinutes)
	assert.Equal(t, 0.7, merged.Temperature)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Model: "gemini-2.5-flash",
		Port:  9000,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "gemini-2.5-flash", merged.Model)
	assert.Equal(t, 9000, merged.Port)
}
