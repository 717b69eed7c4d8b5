package export

import (
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
)

// exportHTML wraps the visual's resume node in a self-contained
// document with the template's baseline styling embedded, viewable
// outside the application.
func (e *Exporter) exportHTML(r *types.Resume, visual *preview.Visual) (*Artifact, error) {
	if visual == nil {
		return nil, &VisualNotFoundError{Format: FormatHTML}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(visual.Document()))
	if err != nil {
		return nil, &EncodeError{Format: FormatHTML, Message: "failed to parse rendered visual", Cause: err}
	}

	node := doc.Find(preview.Selector).First()
	if node.Length() == 0 {
		return nil, &VisualNotFoundError{Format: FormatHTML}
	}

	markup, err := goquery.OuterHtml(node)
	if err != nil {
		return nil, &EncodeError{Format: FormatHTML, Message: "failed to serialize resume node", Cause: err}
	}

	title := r.PersonalInfo.FullName
	if title == "" {
		title = "Resume"
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("<title>")
	sb.WriteString(template.HTMLEscapeString(title))
	sb.WriteString("</title>\n<style>\n")
	sb.WriteString(visual.CSS)
	sb.WriteString("\n</style>\n</head>\n<body>\n")
	sb.WriteString(markup)
	sb.WriteString("\n</body>\n</html>\n")

	return &Artifact{
		Filename:    Filename(r.PersonalInfo.FullName, "html"),
		ContentType: FormatHTML.ContentType(),
		Data:        []byte(sb.String()),
	}, nil
}
