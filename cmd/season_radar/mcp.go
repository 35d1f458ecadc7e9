package main

import (
	"fmt"

	"github.com/jonathan/season-radar/internal/mcptools"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server (stdio transport)",
	Long: `Expose the destination search engine as MCP tools over stdio, so any MCP
client can call search_destinations and list_destinations directly. No API key
is needed; the calling model does the reasoning.`,
	RunE: runMCP,
}

var mcpData string

func init() {
	mcpCmd.Flags().StringVar(&mcpData, "data", "", "Path to a catalog JSON file (default: embedded catalog)")

	rootCmd.AddCommand(mcpCmd)
}

func runMCP(_ *cobra.Command, _ []string) error {
	cat, err := loadCatalog(mcpData)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	s := mcpserver.NewMCPServer(
		"Season Radar",
		version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(mcpInstructions(cat.Len())),
	)

	searchTool := mcptools.NewSearchTool(cat)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	listTool := mcptools.NewListTool(cat)
	s.AddTool(listTool.Definition(), listTool.Handle)

	return mcpserver.ServeStdio(s)
}

// mcpInstructions tells the connected model how to use the tools well.
func mcpInstructions(cityCount int) string {
	return fmt.Sprintf(`Season Radar ranks %d global destinations by travel month using real
climate normals, crowd seasonality, and environment tags.

Use search_destinations whenever the user asks where to travel, whether a
place fits a month, or wants weather/crowd tradeoffs. Pass every constraint
the user states (month, temperature range, rain tolerance, crowd preference,
tags, regions to avoid) and ground your answer ONLY in the returned report;
never invent temperatures or crowd levels.

Use list_destinations to see what the catalog covers before claiming a
destination is or is not available.`, cityCount)
}
