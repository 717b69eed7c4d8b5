package observability

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(ats.Report{
		Score: 75,
		Checks: []ats.Check{
			{ID: "contact-info", Name: "Contact Information", Status: ats.StatusPass, Message: "Email and phone number are present", Weight: 15},
			{ID: "work-experience", Name: "Work Experience", Status: ats.StatusFail, Message: "No work experience listed", Weight: 25},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "ATS COMPATIBILITY REPORT")
	assert.Contains(t, output, "Score: 75/100")
	assert.Contains(t, output, "✓ Contact Information")
	assert.Contains(t, output, "✗ Work Experience")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions([]types.Suggestion{
		{ID: "skill-technical-git", Type: types.SuggestionSkill, Title: "Add Git", Description: "Git is a commonly screened skill"},
		{ID: "summary-software", Type: types.SuggestionSummary, Title: "Enhance Professional Summary", Description: "Add a compelling summary"},
	}, 4)
	output := buf.String()

	assert.Contains(t, output, "IMPROVEMENT SUGGESTIONS")
	assert.Contains(t, output, "Add Git")
	assert.Contains(t, output, "[skill]")
	assert.Contains(t, output, "and 4 more suggestions")
}

func TestPrintSuggestions_NonePending(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(nil, 0)

	assert.Contains(t, buf.String(), "NO SUGGESTIONS PENDING")
}

func TestPrintExportResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExportResults([]export.Result{
		{Format: export.FormatPDF, Artifact: &export.Artifact{Filename: "Jane_Smith_Resume.pdf", Data: []byte("pdf")}},
		{Format: export.FormatPNG, Err: errors.New("browser unavailable")},
	})
	output := buf.String()

	assert.Contains(t, output, "EXPORT RESULTS")
	assert.Contains(t, output, "Jane_Smith_Resume.pdf")
	assert.Contains(t, output, "✗ png")
	assert.Contains(t, output, "browser unavailable")
}

func TestPrintExportResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExportResults(nil)

	assert.Empty(t, buf.String())
}
