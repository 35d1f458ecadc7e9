package agent

import (
	"strconv"
	"time"

	"github.com/jonathan/season-radar/internal/prompts"
)

// SystemPrompt renders the model's operating instructions for a catalog of
// cityCount destinations, stamped with the current month and year.
func SystemPrompt(cityCount int, now time.Time) string {
	return prompts.Format(prompts.MustGet("system"), map[string]string{
		"Date":      now.Format("January 2006"),
		"CityCount": strconv.Itoa(cityCount),
	})
}
