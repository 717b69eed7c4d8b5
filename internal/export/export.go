package export

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
)

// Format identifies an output encoding.
type Format string

// Supported export formats.
const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatDOCX Format = "docx"
	FormatPNG  Format = "png"
)

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatPDF, FormatHTML, FormatDOCX, FormatPNG:
		return true
	}
	return false
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPNG:
		return "image/png"
	}
	return "application/octet-stream"
}

// Artifact is a produced export: the encoded bytes plus the suggested
// download filename and MIME type.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Rasterizer turns a standalone HTML document into a PNG of the node
// matched by selector, at the pipeline's fixed 2x scale.
type Rasterizer interface {
	Rasterize(ctx context.Context, document, selector string) ([]byte, error)
}

// Exporter produces artifacts from resume snapshots. The caller is
// responsible for passing a snapshot (see record.Clone) so that edits
// made while an export is in flight do not alter its output.
type Exporter struct {
	rasterizer Rasterizer
}

// New creates an Exporter. rasterizer may be nil when only HTML and
// DOCX output is needed.
func New(rasterizer Rasterizer) *Exporter {
	return &Exporter{rasterizer: rasterizer}
}

// Export produces the artifact for a single format. PDF and PNG require
// both a rendered visual and a rasterizer; HTML requires the visual
// only; DOCX re-serializes the record directly and ignores the visual.
func (e *Exporter) Export(ctx context.Context, r *types.Resume, format Format, visual *preview.Visual) (*Artifact, error) {
	switch format {
	case FormatHTML:
		return e.exportHTML(r, visual)
	case FormatPNG:
		data, err := e.rasterize(ctx, format, visual)
		if err != nil {
			return nil, err
		}
		return &Artifact{
			Filename:    Filename(r.PersonalInfo.FullName, "png"),
			ContentType: format.ContentType(),
			Data:        data,
		}, nil
	case FormatPDF:
		raster, err := e.rasterize(ctx, format, visual)
		if err != nil {
			return nil, err
		}
		return e.exportPDF(r, raster)
	case FormatDOCX:
		return e.exportDOCX(r)
	default:
		return nil, &UnsupportedFormatError{Format: format}
	}
}

// Result is the outcome of one format within an ExportAll call.
type Result struct {
	Format   Format
	Artifact *Artifact
	Err      error
}

// ExportAll produces the requested formats concurrently. Each format
// succeeds or fails on its own: a failure in one never blocks or
// corrupts the others, and the caller may retry individual formats.
func (e *Exporter) ExportAll(ctx context.Context, r *types.Resume, formats []Format, visual *preview.Visual) []Result {
	results := make([]Result, len(formats))

	var g errgroup.Group
	for i, format := range formats {
		g.Go(func() error {
			artifact, err := e.Export(ctx, r, format, visual)
			results[i] = Result{Format: format, Artifact: artifact, Err: err}
			return nil
		})
	}
	// Errors are carried per-result; the group never fails as a whole.
	_ = g.Wait()

	return results
}

func (e *Exporter) rasterize(ctx context.Context, format Format, visual *preview.Visual) ([]byte, error) {
	if visual == nil {
		return nil, &VisualNotFoundError{Format: format}
	}
	if e.rasterizer == nil {
		return nil, &EncodeError{Format: format, Message: "no rasterizer configured"}
	}
	data, err := e.rasterizer.Rasterize(ctx, visual.Document(), preview.Selector)
	if err != nil {
		return nil, &EncodeError{Format: format, Message: "rasterization failed", Cause: err}
	}
	return data, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename builds the suggested download filename: whitespace runs in
// the full name collapse to single underscores and "_Resume" is
// appended. An empty name yields the plain "Resume.{ext}" default with
// no doubled suffix.
func Filename(fullName, extension string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "Resume." + extension
	}
	return whitespaceRun.ReplaceAllString(name, "_") + "_Resume." + extension
}
