package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var (
	checkFile  string
	checkEmail string
	checkDBURL string
	checkJSON  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Score a resume against ATS heuristics",
	Long:  `Evaluate a resume against the weighted ATS compatibility checks and print the report.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to resume JSON file (mutually exclusive with --email)")
	checkCmd.Flags().StringVar(&checkEmail, "email", "", "Email of a stored resume (mutually exclusive with --file)")
	checkCmd.Flags().StringVar(&checkDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the report as JSON instead of a formatted box")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	resume, err := loadRecord(ctx, checkFile, checkEmail, checkDBURL)
	if err != nil {
		return err
	}

	report := ats.Evaluate(resume)

	if checkJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	observability.NewPrinter(os.Stdout).PrintReport(report)
	if report.Score < 70 {
		fmt.Fprintln(os.Stdout, "Tip: run `resume_builder suggest` for improvement ideas.")
	}
	return nil
}
