// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/season-radar/internal/catalog"
	"github.com/jonathan/season-radar/internal/ranking"
	"github.com/jonathan/season-radar/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPreferences outputs a human-readable summary of the search preferences.
func (p *Printer) PrintPreferences(prefs types.Preferences) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Month:    %s\n", ranking.MonthName(prefs.TravelMonth)))
	sb.WriteString(fmt.Sprintf("Temp:     %s\n", describeTempRange(prefs.TempMin, prefs.TempMax)))
	sb.WriteString(fmt.Sprintf("Rain:     %s\n", valueOrDefault(prefs.RainTolerance, types.RainMedium)))
	sb.WriteString(fmt.Sprintf("Crowds:   %s\n", valueOrDefault(prefs.CrowdPreference, types.CrowdAny)))

	if len(prefs.EnvironmentTags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:     %s\n", strings.Join(prefs.EnvironmentTags, ", ")))
	}
	if len(prefs.ExcludeRegions) > 0 {
		sb.WriteString(fmt.Sprintf("Exclude:  %s\n", strings.Join(prefs.ExcludeRegions, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Results:  %d", prefs.Limit()))

	p.printBox("SEARCH PREFERENCES", sb.String())
}

// PrintRankedCities outputs the top N ranked destinations with score breakdowns.
func (p *Printer) PrintRankedCities(results []types.ScoredCandidate) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total destinations ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s, %s\n", i+1, result.City.Name, result.City.Country))
		sb.WriteString(fmt.Sprintf("    Score: %.4f (temp %.2f rain %.2f crowd %.2f tags %.2f)\n",
			result.Scores.Final, result.Scores.Temp, result.Scores.Rain, result.Scores.Crowd, result.Scores.Tags))
		sb.WriteString(fmt.Sprintf("    %.1f°C, %.0fmm, %s\n", result.Month.Temp, result.Month.Precip, result.Month.Season))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more destinations", len(results)-maxItemsToShow))
	}

	p.printBox("TOP RANKED DESTINATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCatalogSummary outputs the catalog size, regions, and tag vocabulary.
func (p *Printer) PrintCatalogSummary(cat *catalog.Catalog) {
	if cat == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Cities:   %d\n", cat.Len()))

	regions := cat.Regions()
	sb.WriteString(fmt.Sprintf("Regions:  %d\n", len(regions)))
	count := min(len(regions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", regions[i]))
	}
	if len(regions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(regions)-maxItemsToShow))
	}

	tags := strings.Join(cat.TagVocabulary(), ", ")
	sb.WriteString(fmt.Sprintf("Tags:     %s", tags))

	p.printBox("CITY CATALOG", sb.String())
}

// describeTempRange renders a preference temperature band for display.
func describeTempRange(tempMin, tempMax *float64) string {
	switch {
	case tempMin != nil && tempMax != nil:
		return fmt.Sprintf("%.0f to %.0f°C", *tempMin, *tempMax)
	case tempMin != nil:
		return fmt.Sprintf("at least %.0f°C", *tempMin)
	case tempMax != nil:
		return fmt.Sprintf("at most %.0f°C", *tempMax)
	default:
		return "any"
	}
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
