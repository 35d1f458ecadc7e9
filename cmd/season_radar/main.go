// Package main provides the entry point for the Season Radar CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "season_radar",
	Short:   "Season Radar seasonal travel decision engine",
	Long:    "Season Radar ranks global destinations by month using climate normals, crowd seasonality, and environment preferences, and exposes the engine as a chat agent, an HTTP API, and an MCP server.",
	Version: version,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
