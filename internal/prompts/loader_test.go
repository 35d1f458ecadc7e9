package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	prompt, err := Get("system")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "Season Radar")
	assert.Contains(t, prompt, "search_destinations")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get("nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("nonexistent-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	assert.NotPanics(t, func() {
		prompt := MustGet("system")
		assert.NotEmpty(t, prompt)
	})
}

func TestToolDescriptionsPresent(t *testing.T) {
	for _, key := range []string{
		"tool-search",
		"tool-travel-month",
		"tool-temp-min",
		"tool-temp-max",
		"tool-rain-tolerance",
		"tool-crowd-preference",
		"tool-environment-tags",
		"tool-exclude-regions",
		"tool-num-results",
	} {
		prompt, err := Get(key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt, "key %s", key)
	}
}

func TestFormat(t *testing.T) {
	template := "Today is {{.Date}} and the catalog holds {{.CityCount}} cities."
	data := map[string]string{
		"Date":      "August 2026",
		"CityCount": "34",
	}

	result := Format(template, data)
	assert.Equal(t, "Today is August 2026 and the catalog holds 34 cities.", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	data := map[string]string{"Key": "Value"}

	result := Format(template, data)
	assert.Equal(t, template, result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	data := map[string]string{}

	result := Format(template, data)
	assert.Equal(t, template, result) // Placeholder remains
}

func TestKeys(t *testing.T) {
	keys, err := Keys()
	require.NoError(t, err)
	assert.Contains(t, keys, "system")
	assert.Contains(t, keys, "tool-search")
}
