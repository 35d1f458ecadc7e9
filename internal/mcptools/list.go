package mcptools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jonathan/season-radar/internal/catalog"
	"github.com/jonathan/season-radar/internal/types"
)

// ListTool handles the list_destinations MCP tool.
type ListTool struct {
	catalog *catalog.Catalog
}

// NewListTool creates a ListTool over the given catalog.
func NewListTool(cat *catalog.Catalog) *ListTool {
	return &ListTool{catalog: cat}
}

// Definition returns the MCP tool definition for list_destinations.
func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("list_destinations",
		mcp.WithDescription(
			"List every destination in the travel catalog with its region, year-round "+
				"temperature span, peak season, and environment tags. Use this to see "+
				"what search_destinations can draw from.",
		),
		mcp.WithString("region",
			mcp.Description("Only list destinations whose region contains this text, e.g. 'Asia'."),
		),
	)
}

// Handle processes the list_destinations tool call.
func (t *ListTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := strings.ToLower(strings.TrimSpace(req.GetString("region", "")))

	var b strings.Builder
	listed := 0
	for i := range t.catalog.Cities {
		city := &t.catalog.Cities[i]
		if filter != "" && !strings.Contains(strings.ToLower(city.Region), filter) {
			continue
		}
		listed++
		fmt.Fprintf(&b, "%s, %s (%s) | %s | peak: %s | tags: %s\n",
			city.Name, city.Country, city.Region,
			tempSpan(city), monthList(city.PeakMonths), strings.Join(city.Tags, ", "))
	}

	if listed == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No destinations in a region matching %q.", req.GetString("region", ""))), nil
	}

	var header string
	if filter != "" {
		header = fmt.Sprintf("%d of %d destinations match region %q:\n\n",
			listed, t.catalog.Len(), req.GetString("region", ""))
	} else {
		header = fmt.Sprintf("%d destinations across %d regions:\n\n",
			t.catalog.Len(), len(t.catalog.Regions()))
	}
	return mcp.NewToolResultText(header + b.String()), nil
}

// tempSpan renders the coldest and warmest monthly averages, e.g. "8-31°C".
func tempSpan(city *types.City) string {
	lo, hi := city.MonthlyTemp[0], city.MonthlyTemp[0]
	for _, temp := range city.MonthlyTemp[1:] {
		if temp < lo {
			lo = temp
		}
		if temp > hi {
			hi = temp
		}
	}
	return fmt.Sprintf("%.0f-%.0f°C", lo, hi)
}

// monthList renders month numbers as abbreviated names, e.g. "Dec, Jan".
func monthList(months []int) string {
	if len(months) == 0 {
		return "none"
	}
	names := make([]string, 0, len(months))
	for _, m := range months {
		if m >= 1 && m <= 12 {
			names = append(names, time.Month(m).String()[:3])
		}
	}
	return strings.Join(names, ", ")
}
