package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jonathan/season-radar/internal/catalog"
	"github.com/jonathan/season-radar/internal/ranking"
	"github.com/jonathan/season-radar/internal/types"
)

// SearchTool handles the search_destinations MCP tool.
type SearchTool struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewSearchTool creates a SearchTool over the given catalog.
func NewSearchTool(cat *catalog.Catalog) *SearchTool {
	return &SearchTool{catalog: cat, now: time.Now}
}

// Definition returns the MCP tool definition for search_destinations.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search_destinations",
		mcp.WithDescription(
			"Search the travel catalog for destinations that fit a given month. "+
				"Every city is scored on temperature fit, rainfall, crowd levels, and "+
				"environment tags, then returned as a ranked plain-text report.",
		),
		mcp.WithNumber("travel_month",
			mcp.Description("Month of travel, 1-12. Defaults to the current month when omitted."),
		),
		mcp.WithNumber("temp_min",
			mcp.Description("Minimum comfortable daytime temperature in Celsius."),
		),
		mcp.WithNumber("temp_max",
			mcp.Description("Maximum comfortable daytime temperature in Celsius."),
		),
		mcp.WithString("rain_tolerance",
			mcp.Description("How much rain is acceptable: low, medium, or high."),
			mcp.Enum(types.RainLow, types.RainMedium, types.RainHigh),
		),
		mcp.WithString("crowd_preference",
			mcp.Description("Crowd appetite: off_peak for quiet travel, shoulder for a balance, any for no preference."),
			mcp.Enum(types.CrowdOffPeak, types.CrowdShoulder, types.CrowdAny),
		),
		mcp.WithString("environment_tags",
			mcp.Description("Comma-separated environment tags to favor, e.g. 'beach, culture, mountain'."),
		),
		mcp.WithString("exclude_regions",
			mcp.Description("Comma-separated regions or countries to skip, matched loosely, e.g. 'Europe, Japan'."),
		),
		mcp.WithNumber("num_results",
			mcp.Description("How many destinations to return (default 8, max 10)."),
		),
	)
}

// Handle processes the search_destinations tool call.
func (t *SearchTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	month := intArg(req, "travel_month", 0)
	if month == 0 {
		month = int(t.now().Month())
	}

	prefs := types.Preferences{
		TravelMonth:     month,
		TempMin:         floatPtrArg(req, "temp_min"),
		TempMax:         floatPtrArg(req, "temp_max"),
		RainTolerance:   req.GetString("rain_tolerance", ""),
		CrowdPreference: req.GetString("crowd_preference", ""),
		EnvironmentTags: listArg(req, "environment_tags"),
		ExcludeRegions:  listArg(req, "exclude_regions"),
		NumResults:      intArg(req, "num_results", 0),
	}

	ranked, err := ranking.RankCities(t.catalog.Cities, prefs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	return mcp.NewToolResultText(ranking.FormatResults(ranked, ranking.MonthName(prefs.TravelMonth))), nil
}
