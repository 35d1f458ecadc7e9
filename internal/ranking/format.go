package ranking

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/season-radar/internal/types"
)

// MonthName returns the English month name for a calendar month (1-12), or
// an empty string for anything else.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// FormatResults renders ranked results as a plain-text dataset block for an
// LLM consumer to ground its recommendations in. The framing instructs the
// consumer to cite only values present in the block and never invent data.
func FormatResults(results []types.ScoredCandidate, monthName string) string {
	if len(results) == 0 {
		return fmt.Sprintf("[No destinations matched the criteria for %s. Suggest broadening preferences.]", monthName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[DATASET: TOP DESTINATIONS FOR %s]\n\n", strings.ToUpper(monthName))

	for i, result := range results {
		fmt.Fprintf(&b, "%d. %s, %s  [Score: %.2f]\n",
			i+1, result.City.Name, result.City.Country, result.Scores.Final)
		fmt.Fprintf(&b, "   Avg temp: %.1f°C | Precipitation: %.0fmm | Status: %s\n",
			result.Month.Temp, result.Month.Precip, result.Month.Season)
		fmt.Fprintf(&b, "   Score breakdown: temp %.2f | rain %.2f | crowd %.2f | tags %.2f\n",
			result.Scores.Temp, result.Scores.Rain, result.Scores.Crowd, result.Scores.Tags)
		fmt.Fprintf(&b, "   Tags: %s\n\n", strings.Join(result.City.Tags, ", "))
	}

	b.WriteString("[INSTRUCTION: Use the data above to explain your recommendations. " +
		"Cite actual temperatures and crowd status. " +
		"Do NOT invent data not shown above.]")
	return b.String()
}
