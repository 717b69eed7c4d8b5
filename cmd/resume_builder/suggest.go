package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/spf13/cobra"
)

var (
	suggestFile  string
	suggestEmail string
	suggestDBURL string
	suggestJSON  bool
	suggestAll   bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate improvement suggestions for a resume",
	Long:  `Detect the resume's industry and print tailored skill, achievement and summary suggestions.`,
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestFile, "file", "f", "", "Path to resume JSON file (mutually exclusive with --email)")
	suggestCmd.Flags().StringVar(&suggestEmail, "email", "", "Email of a stored resume (mutually exclusive with --file)")
	suggestCmd.Flags().StringVar(&suggestDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Print suggestions as JSON instead of a formatted box")
	suggestCmd.Flags().BoolVar(&suggestAll, "all", false, "Print every pending suggestion instead of the visible window")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	resume, err := loadRecord(ctx, suggestFile, suggestEmail, suggestDBURL)
	if err != nil {
		return err
	}

	industry := suggest.DetectIndustry(resume)
	pending := suggest.Generate(resume, industry)

	shown, remaining := suggest.Visible(pending)
	if suggestAll {
		shown, remaining = pending, 0
	}

	if suggestJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{
			"industry":    industry,
			"suggestions": shown,
			"remaining":   remaining,
		})
	}

	fmt.Fprintf(os.Stdout, "Detected industry: %s\n", industry)
	observability.NewPrinter(os.Stdout).PrintSuggestions(shown, remaining)
	return nil
}
