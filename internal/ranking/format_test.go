package ranking

import (
	"strings"
	"testing"

	"github.com/jonathan/season-radar/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "July", MonthName(7))
	assert.Equal(t, "December", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}

func TestFormatResults_Empty(t *testing.T) {
	text := FormatResults(nil, "March")

	assert.Equal(t, "[No destinations matched the criteria for March. Suggest broadening preferences.]", text)
	assert.Contains(t, text, "March")
	assert.NotContains(t, text, "DATASET")
}

func TestFormatResults_Blocks(t *testing.T) {
	results := []types.ScoredCandidate{
		{
			City: types.City{Name: "Lisbon", Country: "Portugal", Tags: []string{"city", "coastal", "food"}},
			Scores: types.ComponentScores{
				Temp: 0.9214, Rain: 0.6667, Crowd: 0.85, Tags: 0.65, Final: 0.8712,
			},
			Month: types.MonthConditions{Temp: 14.8, Precip: 100, Season: "off season"},
		},
		{
			City: types.City{Name: "Hoi An", Country: "Vietnam", Tags: []string{"beach", "history"}},
			Scores: types.ComponentScores{
				Temp: 0.85, Rain: 0.9, Crowd: 1.0, Tags: 1.0, Final: 0.91,
			},
			Month: types.MonthConditions{Temp: 24.5, Precip: 30, Season: "shoulder season"},
		},
	}

	text := FormatResults(results, "January")
	lines := strings.Split(text, "\n")

	// Header carries the uppercased month.
	assert.Equal(t, "[DATASET: TOP DESTINATIONS FOR JANUARY]", lines[0])
	assert.Equal(t, "", lines[1])

	// First block: rank line, conditions, breakdown, tags.
	assert.Equal(t, "1. Lisbon, Portugal  [Score: 0.87]", lines[2])
	assert.Equal(t, "   Avg temp: 14.8°C | Precipitation: 100mm | Status: off season", lines[3])
	assert.Equal(t, "   Score breakdown: temp 0.92 | rain 0.67 | crowd 0.85 | tags 0.65", lines[4])
	assert.Equal(t, "   Tags: city, coastal, food", lines[5])
	assert.Equal(t, "", lines[6])

	// Second block is numbered 2 and keeps its own season label.
	assert.Equal(t, "2. Hoi An, Vietnam  [Score: 0.91]", lines[7])
	assert.Contains(t, lines[8], "Status: shoulder season")

	// Footer instructs the consumer to stay grounded in the data above.
	last := lines[len(lines)-1]
	require.Contains(t, last, "[INSTRUCTION:")
	assert.Contains(t, last, "Do NOT invent data")
}

func TestFormatResults_CityWithoutTags(t *testing.T) {
	results := []types.ScoredCandidate{
		{
			City:   types.City{Name: "Muscat", Country: "Oman"},
			Scores: types.ComponentScores{Final: 0.5},
			Month:  types.MonthConditions{Temp: 33, Precip: 0, Season: "off season"},
		},
	}

	text := FormatResults(results, "June")
	assert.Contains(t, text, "Muscat, Oman")
	assert.Contains(t, text, "Tags: \n")
	assert.Contains(t, text, "Avg temp: 33.0°C | Precipitation: 0mm")
}
