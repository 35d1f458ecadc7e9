package agent

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/season-radar/internal/catalog"
	"github.com/jonathan/season-radar/internal/llm"
	"github.com/jonathan/season-radar/internal/prompts"
	"github.com/jonathan/season-radar/internal/ranking"
	"github.com/jonathan/season-radar/internal/types"
)

// SearchToolName is the function the model calls to query the ranking engine.
const SearchToolName = "search_destinations"

// Toolbox executes the tool calls issued by the model against the catalog.
type Toolbox struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewToolbox creates a toolbox backed by the given catalog.
func NewToolbox(cat *catalog.Catalog) *Toolbox {
	return &Toolbox{catalog: cat, now: time.Now}
}

// Tools returns the function declarations offered to the model.
func (tb *Toolbox) Tools() []llm.Tool {
	return []llm.Tool{tb.searchTool()}
}

// searchTool builds the search_destinations declaration. Month hints are
// stamped with the current month so the model resolves relative dates itself.
func (tb *Toolbox) searchTool() llm.Tool {
	currentMonth := int(tb.now().Month())
	monthHints := map[string]string{
		"CurrentMonth": strconv.Itoa(currentMonth),
		"NextMonth":    strconv.Itoa(currentMonth%12 + 1),
	}

	return llm.Tool{
		Name:        SearchToolName,
		Description: prompts.MustGet("tool-search"),
		Parameters: &llm.Schema{
			Type: llm.TypeObject,
			Properties: map[string]*llm.Schema{
				"travel_month": {
					Type:        llm.TypeInteger,
					Description: prompts.Format(prompts.MustGet("tool-travel-month"), monthHints),
				},
				"temp_min": {
					Type:        llm.TypeNumber,
					Description: prompts.MustGet("tool-temp-min"),
				},
				"temp_max": {
					Type:        llm.TypeNumber,
					Description: prompts.MustGet("tool-temp-max"),
				},
				"rain_tolerance": {
					Type:        llm.TypeString,
					Enum:        []string{types.RainLow, types.RainMedium, types.RainHigh},
					Description: prompts.MustGet("tool-rain-tolerance"),
				},
				"crowd_preference": {
					Type:        llm.TypeString,
					Enum:        []string{types.CrowdOffPeak, types.CrowdShoulder, types.CrowdAny},
					Description: prompts.MustGet("tool-crowd-preference"),
				},
				"environment_tags": {
					Type:  llm.TypeArray,
					Items: &llm.Schema{Type: llm.TypeString},
					Description: prompts.Format(prompts.MustGet("tool-environment-tags"), map[string]string{
						"Tags": strings.Join(tb.catalog.TagVocabulary(), ", "),
					}),
				},
				"exclude_regions": {
					Type:        llm.TypeArray,
					Items:       &llm.Schema{Type: llm.TypeString},
					Description: prompts.MustGet("tool-exclude-regions"),
				},
				"num_results": {
					Type:        llm.TypeInteger,
					Description: prompts.MustGet("tool-num-results"),
				},
			},
			Required: []string{"travel_month", "crowd_preference"},
		},
	}
}

// Dispatch routes one tool call to its implementation. Failures come back as
// instructive tool output so the model can correct itself and retry.
func (tb *Toolbox) Dispatch(call llm.ToolCall) llm.ToolResult {
	switch call.Name {
	case SearchToolName:
		return llm.ToolResult{Name: call.Name, Content: tb.executeSearch(call.Args)}
	default:
		return llm.ToolResult{Name: call.Name, Content: fmt.Sprintf("[Unknown tool: %s]", call.Name)}
	}
}

// executeSearch runs the ranking engine and returns formatted results.
func (tb *Toolbox) executeSearch(args map[string]any) string {
	prefs, err := types.PreferencesFromArgs(args)
	if err != nil {
		return fmt.Sprintf("[Invalid %s request: %v]", SearchToolName, err)
	}

	// A missing month means the model skipped a required field; fall back to
	// the current month rather than refusing the call.
	if prefs.TravelMonth == 0 {
		prefs.TravelMonth = int(tb.now().Month())
	}

	ranked, err := ranking.RankCities(tb.catalog.Cities, prefs)
	if err != nil {
		return fmt.Sprintf("[Invalid %s request: %v]", SearchToolName, err)
	}

	return ranking.FormatResults(ranked, ranking.MonthName(prefs.TravelMonth))
}
