package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/season-radar/internal/catalog"
	"github.com/jonathan/season-radar/internal/observability"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalog file against the dataset schema",
	Long: `Validate a catalog JSON file against the dataset schema and print a summary
of what it contains. With no --data flag the embedded catalog is checked,
which is useful as a build sanity check.`,
	RunE: runValidate,
}

var validateData string

func init() {
	validateCmd.Flags().StringVar(&validateData, "data", "", "Path to a catalog JSON file (default: embedded catalog)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	// Step 1: Load and validate
	cat, err := loadCatalog(validateData)
	if err != nil {
		var validationErr *catalog.ValidationError
		if errors.As(err, &validationErr) {
			// Print each field error on its own line before failing
			_, _ = fmt.Fprint(os.Stderr, validationErr.Error())
			return fmt.Errorf("catalog validation failed with %d error(s)", len(validationErr.Errors))
		}
		return err
	}

	// Step 2: Report what was loaded
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCatalogSummary(cat)

	_, _ = fmt.Fprintf(os.Stdout, "Catalog OK: %d cities\n", cat.Len())
	return nil
}
