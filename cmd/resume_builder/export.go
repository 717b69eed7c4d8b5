package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/spf13/cobra"
)

var (
	exportFile       string
	exportEmail      string
	exportDBURL      string
	exportFormats    []string
	exportOutputDir  string
	exportConfigPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume to one or more document formats",
	Long: `Render the resume with its selected template and write export artifacts to the output directory.

Formats run concurrently; one format failing does not block the others.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Path to resume JSON file (mutually exclusive with --email)")
	exportCmd.Flags().StringVar(&exportEmail, "email", "", "Email of a stored resume (mutually exclusive with --file)")
	exportCmd.Flags().StringVar(&exportDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	exportCmd.Flags().StringSliceVar(&exportFormats, "formats", []string{"pdf"}, "Formats to export (pdf, html, docx, png)")
	exportCmd.Flags().StringVarP(&exportOutputDir, "output", "o", "", "Output directory (defaults to config output_dir, then the working directory)")
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(exportConfigPath)
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if cmd.Flags().Changed("output") {
		outputDir = exportOutputDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	formats := make([]export.Format, 0, len(exportFormats))
	for _, name := range exportFormats {
		format := export.Format(strings.ToLower(strings.TrimSpace(name)))
		if !format.Valid() {
			return &export.UnsupportedFormatError{Format: format}
		}
		formats = append(formats, format)
	}

	resume, err := loadRecord(ctx, exportFile, exportEmail, exportDBURL)
	if err != nil {
		return err
	}

	visual, err := preview.Render(resume)
	if err != nil {
		return err
	}

	rasterizer := export.NewChromeRasterizer()
	if cfg.BrowserTimeout > 0 {
		rasterizer.Timeout = time.Duration(cfg.BrowserTimeout) * time.Second
	}
	exporter := export.New(rasterizer)

	results := exporter.ExportAll(ctx, resume, formats, visual)

	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
			continue
		}
		path := filepath.Join(outputDir, result.Artifact.Filename)
		if err := os.WriteFile(path, result.Artifact.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	observability.NewPrinter(os.Stdout).PrintExportResults(results)

	if failed > 0 {
		return fmt.Errorf("%d of %d exports failed", failed, len(results))
	}
	return nil
}
