package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/season-radar/internal/catalog"
	"github.com/jonathan/season-radar/internal/observability"
	"github.com/jonathan/season-radar/internal/ranking"
	"github.com/jonathan/season-radar/internal/types"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Rank destinations for a month without any model involved",
	Long: `Run one deterministic search against the city catalog and print the ranked
destinations. The same preferences always produce the same output, which makes
this the surface to script against.`,
	RunE: runSearch,
}

var (
	searchMonth   int
	searchTempMin float64
	searchTempMax float64
	searchRain    string
	searchCrowds  string
	searchTags    []string
	searchExclude []string
	searchResults int
	searchData    string
	searchJSON    bool
	searchVerbose bool
)

func init() {
	searchCmd.Flags().IntVarP(&searchMonth, "month", "m", 0, "Travel month, 1-12 (required)")
	searchCmd.Flags().Float64Var(&searchTempMin, "temp-min", 0, "Minimum comfortable temperature in Celsius")
	searchCmd.Flags().Float64Var(&searchTempMax, "temp-max", 0, "Maximum comfortable temperature in Celsius")
	searchCmd.Flags().StringVar(&searchRain, "rain", "", "Rain tolerance: low, medium, or high")
	searchCmd.Flags().StringVar(&searchCrowds, "crowds", "", "Crowd preference: off_peak, shoulder, or any")
	searchCmd.Flags().StringSliceVar(&searchTags, "tags", nil, "Environment tags to favor (comma-separated)")
	searchCmd.Flags().StringSliceVar(&searchExclude, "exclude", nil, "Regions or countries to skip (comma-separated)")
	searchCmd.Flags().IntVarP(&searchResults, "results", "n", 0, "How many destinations to return (default 8, max 10)")
	searchCmd.Flags().StringVar(&searchData, "data", "", "Path to a catalog JSON file (default: embedded catalog)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print the scored results as JSON")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print preference and ranking boxes instead of the report")

	_ = searchCmd.MarkFlagRequired("month")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	// Step 1: Load the catalog
	cat, err := loadCatalog(searchData)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Step 2: Build preferences from flags. Temperature bounds are only
	// constraints when the flag was actually set, so 0 stays usable.
	prefs := types.Preferences{
		TravelMonth:     searchMonth,
		RainTolerance:   searchRain,
		CrowdPreference: searchCrowds,
		EnvironmentTags: searchTags,
		ExcludeRegions:  searchExclude,
		NumResults:      searchResults,
	}
	if cmd.Flags().Changed("temp-min") {
		prefs.TempMin = &searchTempMin
	}
	if cmd.Flags().Changed("temp-max") {
		prefs.TempMax = &searchTempMax
	}

	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	// Step 3: Rank
	results, err := ranking.RankCities(cat.Cities, prefs)
	if err != nil {
		return err
	}

	// Step 4: Print in the requested shape
	if searchJSON {
		jsonBytes, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	if searchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPreferences(prefs)
		printer.PrintRankedCities(results)
		return nil
	}

	fmt.Println(ranking.FormatResults(results, ranking.MonthName(searchMonth)))
	return nil
}

// loadCatalog loads the catalog from an override path, or the embedded
// dataset when the path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	return catalog.Load(path)
}
