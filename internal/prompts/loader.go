// Package prompts provides the externalized LLM prompt templates for the
// conversational agent. Templates are stored as JSON and embedded at compile
// time so the binary stays self-contained.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed agent.json
var promptFiles embed.FS

// templates are parsed once on first access
var (
	loadOnce  sync.Once
	templates map[string]string
	loadErr   error
)

// Get retrieves a prompt template by key.
// Returns an error if the key is not present in the embedded template set.
func Get(key string) (string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return "", loadErr
	}

	prompt, exists := templates[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}

	return prompt, nil
}

// MustGet retrieves a prompt template by key, panicking if not found.
// Use this for prompts that are required at initialization time.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values from data.
// This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// Keys returns the available template keys, for diagnostics.
func Keys() ([]string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}

	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	return keys, nil
}

func load() {
	data, err := promptFiles.ReadFile("agent.json")
	if err != nil {
		loadErr = fmt.Errorf("failed to read prompt file: %w", err)
		return
	}

	if err := json.Unmarshal(data, &templates); err != nil {
		loadErr = fmt.Errorf("failed to parse prompt file: %w", err)
	}
}
