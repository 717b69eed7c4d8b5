package export

import (
	"bytes"
	"strings"

	godocx "github.com/fumiama/go-docx"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
)

// Run sizes in half-points.
const (
	docxTitleSize   = "36"
	docxHeadingSize = "26"
)

// docxRun is one styled text run within a paragraph.
type docxRun struct {
	Text string
	Bold bool
	Size string
}

// docxParagraph is the format-independent intermediate the DOCX encoder
// writes out. Keeping it separate from the OOXML library makes the
// section layout testable.
type docxParagraph struct {
	Runs   []docxRun
	Center bool
}

func para(center bool, runs ...docxRun) docxParagraph {
	return docxParagraph{Runs: runs, Center: center}
}

func heading(text string) docxParagraph {
	return para(false, docxRun{Text: text, Bold: true, Size: docxHeadingSize})
}

// buildDocxParagraphs re-serializes the record directly (no rendered
// visual involved) into a fixed section order: title, contact line,
// summary, experience, education, skills. Sections with no data are
// omitted entirely.
func buildDocxParagraphs(r *types.Resume) []docxParagraph {
	paragraphs := make([]docxParagraph, 0, 16)

	name := r.PersonalInfo.FullName
	if name == "" {
		name = "Resume"
	}
	paragraphs = append(paragraphs, para(true, docxRun{Text: name, Bold: true, Size: docxTitleSize}))

	if contact := contactLine(r); contact != "" {
		paragraphs = append(paragraphs, para(true, docxRun{Text: contact}))
	}

	if r.PersonalInfo.Summary != "" {
		paragraphs = append(paragraphs,
			heading("PROFESSIONAL SUMMARY"),
			para(false, docxRun{Text: r.PersonalInfo.Summary}),
		)
	}

	if len(r.Experience) > 0 {
		paragraphs = append(paragraphs, heading("PROFESSIONAL EXPERIENCE"))
		for _, exp := range r.Experience {
			paragraphs = append(paragraphs, para(false, docxRun{Text: exp.Position, Bold: true}))

			line := exp.Company
			if dates := preview.DateRange(exp.StartDate, exp.EndDate, exp.Current); dates != "" {
				if line != "" {
					line += " | "
				}
				line += dates
			}
			if line != "" {
				paragraphs = append(paragraphs, para(false, docxRun{Text: line}))
			}
			if exp.Description != "" {
				paragraphs = append(paragraphs, para(false, docxRun{Text: exp.Description}))
			}
			for _, achievement := range exp.Achievements {
				if strings.TrimSpace(achievement) == "" {
					continue
				}
				paragraphs = append(paragraphs, para(false, docxRun{Text: "• " + achievement}))
			}
		}
	}

	if len(r.Education) > 0 {
		paragraphs = append(paragraphs, heading("EDUCATION"))
		for _, edu := range r.Education {
			title := edu.Degree
			if edu.Field != "" {
				if title != "" {
					title += " in " + edu.Field
				} else {
					title = edu.Field
				}
			}
			if title != "" {
				paragraphs = append(paragraphs, para(false, docxRun{Text: title, Bold: true}))
			}

			line := edu.Institution
			if date := preview.FormatDate(edu.GraduationDate); date != "" {
				if line != "" {
					line += " | "
				}
				line += date
			}
			if line != "" {
				paragraphs = append(paragraphs, para(false, docxRun{Text: line}))
			}
		}
	}

	if len(r.Skills.Technical) > 0 || len(r.Skills.Soft) > 0 {
		paragraphs = append(paragraphs, heading("SKILLS"))
		if len(r.Skills.Technical) > 0 {
			paragraphs = append(paragraphs, para(false,
				docxRun{Text: "Technical Skills: ", Bold: true},
				docxRun{Text: strings.Join(r.Skills.Technical, ", ")},
			))
		}
		if len(r.Skills.Soft) > 0 {
			paragraphs = append(paragraphs, para(false,
				docxRun{Text: "Soft Skills: ", Bold: true},
				docxRun{Text: strings.Join(r.Skills.Soft, ", ")},
			))
		}
	}

	return paragraphs
}

// exportDOCX writes the paragraphs out as an OOXML word-processing
// document.
func (e *Exporter) exportDOCX(r *types.Resume) (*Artifact, error) {
	doc := godocx.New().WithDefaultTheme()

	for _, p := range buildDocxParagraphs(r) {
		paragraph := doc.AddParagraph()
		if p.Center {
			paragraph.Justification("center")
		}
		for _, run := range p.Runs {
			text := paragraph.AddText(run.Text)
			if run.Size != "" {
				text = text.Size(run.Size)
			}
			if run.Bold {
				text.Bold()
			}
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, &EncodeError{Format: FormatDOCX, Message: "failed to write document", Cause: err}
	}

	return &Artifact{
		Filename:    Filename(r.PersonalInfo.FullName, "docx"),
		ContentType: FormatDOCX.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

func contactLine(r *types.Resume) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{
		r.PersonalInfo.Email,
		r.PersonalInfo.Phone,
		r.PersonalInfo.Address,
		r.PersonalInfo.LinkedIn,
		r.PersonalInfo.Portfolio,
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}
