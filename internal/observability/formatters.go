// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// statusMark maps a check status to its indicator.
func statusMark(status ats.Status) string {
	switch status {
	case ats.StatusPass:
		return "✓"
	case ats.StatusWarning:
		return "⚠"
	default:
		return "✗"
	}
}

// PrintReport outputs a human-readable summary of the compatibility report.
func (p *Printer) PrintReport(report ats.Report) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d/100\n\n", report.Score))

	for i, check := range report.Checks {
		sb.WriteString(fmt.Sprintf("%s %s (weight %d)\n", statusMark(check.Status), check.Name, check.Weight))
		message := check.Message
		if len(message) > 50 {
			message = message[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(report.Checks)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ATS COMPATIBILITY REPORT", sb.String())
}

// PrintSuggestions outputs the visible suggestions with the count of
// further ones held back.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion, remaining int) {
	if len(suggestions) == 0 && remaining == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SUGGESTIONS PENDING")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder

	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		suggestion := suggestions[i]
		sb.WriteString(fmt.Sprintf("• [%s] %s\n", suggestion.Type, suggestion.Title))
		description := suggestion.Description
		if len(description) > 50 {
			description = description[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", description))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if remaining > 0 {
		sb.WriteString(fmt.Sprintf("\n... and %d more suggestions", remaining))
	}

	p.printBox("IMPROVEMENT SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExportResults outputs per-format outcomes of a multi-format export.
func (p *Printer) PrintExportResults(results []export.Result) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder

	for i, result := range results {
		if result.Err != nil {
			message := result.Err.Error()
			if len(message) > 40 {
				message = message[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("✗ %-5s %s\n", result.Format, message))
		} else {
			sb.WriteString(fmt.Sprintf("✓ %-5s %s (%d bytes)\n",
				result.Format, result.Artifact.Filename, len(result.Artifact.Data)))
		}
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EXPORT RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}
