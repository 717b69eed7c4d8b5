// Package preview renders the resume aggregate into its laid-out HTML
// visual. The visual is the input to the raster-based export formats
// and is tagged with a stable marker class so collaborators can locate
// the resume node in a parsed document.
package preview

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// Marker is the class tagging the resume node inside the rendered
// document. Selector is its CSS-selector form.
const (
	Marker   = "resume-preview"
	Selector = ".resume-preview"
)

//go:embed templates/*.tmpl templates/styles/*.css
var templateFS embed.FS

var resumeTemplate = template.Must(
	template.New("resume.html.tmpl").Funcs(template.FuncMap{
		"formatDate": FormatDate,
	}).ParseFS(templateFS, "templates/resume.html.tmpl"),
)

// Visual is a rendered snapshot of the resume: the marker-tagged resume
// node markup plus the baseline styling of the chosen template.
type Visual struct {
	Markup string
	CSS    string
	Title  string
}

// Document wraps the visual into a full standalone HTML page, viewable
// outside the application.
func (v *Visual) Document() string {
	title := v.Title
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
	sb.WriteString(v.CSS)
	sb.WriteString("\n</style>\n</head>\n<body>\n")
	sb.WriteString(v.Markup)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

// Render lays out the resume under its selected template and returns
// the visual snapshot.
func Render(r *types.Resume) (*Visual, error) {
	tpl := r.Template
	if !tpl.Valid() {
		tpl = types.TemplateClassic
	}

	css, err := templateFS.ReadFile(fmt.Sprintf("templates/styles/%s.css", tpl))
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("no stylesheet for template %s", tpl),
			Cause:   err,
		}
	}

	data := buildTemplateData(r)

	var markup strings.Builder
	if err := resumeTemplate.Execute(&markup, data); err != nil {
		return nil, &TemplateError{
			Message: "failed to execute resume template",
			Cause:   err,
		}
	}

	title := "Resume"
	if r.PersonalInfo.FullName != "" {
		title = r.PersonalInfo.FullName
	}

	return &Visual{
		Markup: markup.String(),
		CSS:    string(css),
		Title:  title,
	}, nil
}

// templateData is the view model handed to the resume template.
// Sections with no data are left nil/empty so the template omits them
// entirely.
type templateData struct {
	Marker        string
	TemplateClass string
	Name          string
	Contacts      []string
	Summary       string
	Experience    []experienceView
	Education     []educationView
	SkillGroups   []skillGroupView
	References    []referenceView
	ShowRefNote   bool
}

type experienceView struct {
	Position     string
	Company      string
	Dates        string
	Description  string
	Achievements []string
}

type educationView struct {
	Title       string
	Institution string
	Date        string
	GPA         string
	Honors      string
}

type skillGroupView struct {
	Label string
	Items []string
}

type referenceView struct {
	Name         string
	Title        string
	Company      string
	Contact      string
	Relationship string
}

func buildTemplateData(r *types.Resume) templateData {
	data := templateData{
		Marker:        Marker,
		TemplateClass: "template-" + string(r.Template),
		Name:          r.PersonalInfo.FullName,
		Summary:       r.PersonalInfo.Summary,
	}
	if data.Name == "" {
		data.Name = "Your Name"
	}

	for _, c := range []string{
		r.PersonalInfo.Email,
		r.PersonalInfo.Phone,
		r.PersonalInfo.Address,
		r.PersonalInfo.LinkedIn,
		r.PersonalInfo.Portfolio,
	} {
		if c != "" {
			data.Contacts = append(data.Contacts, c)
		}
	}

	for _, exp := range r.Experience {
		view := experienceView{
			Position:    exp.Position,
			Company:     exp.Company,
			Dates:       DateRange(exp.StartDate, exp.EndDate, exp.Current),
			Description: exp.Description,
		}
		for _, achievement := range exp.Achievements {
			if strings.TrimSpace(achievement) != "" {
				view.Achievements = append(view.Achievements, achievement)
			}
		}
		data.Experience = append(data.Experience, view)
	}

	for _, edu := range r.Education {
		title := edu.Degree
		if edu.Field != "" {
			if title != "" {
				title += " in " + edu.Field
			} else {
				title = edu.Field
			}
		}
		data.Education = append(data.Education, educationView{
			Title:       title,
			Institution: edu.Institution,
			Date:        FormatDate(edu.GraduationDate),
			GPA:         edu.GPA,
			Honors:      edu.Honors,
		})
	}

	for _, group := range []struct {
		label string
		items []string
	}{
		{"Technical Skills", r.Skills.Technical},
		{"Soft Skills", r.Skills.Soft},
		{"Languages", r.Skills.Languages},
		{"Certifications", r.Skills.Certifications},
	} {
		if len(group.items) > 0 {
			data.SkillGroups = append(data.SkillGroups, skillGroupView{
				Label: group.label,
				Items: group.items,
			})
		}
	}

	if r.References.ShowMessage {
		data.ShowRefNote = true
	} else {
		for _, ref := range r.References.Entries {
			contact := ref.Email
			if ref.Phone != "" {
				if contact != "" {
					contact += " | " + ref.Phone
				} else {
					contact = ref.Phone
				}
			}
			data.References = append(data.References, referenceView{
				Name:         ref.Name,
				Title:        ref.Title,
				Company:      ref.Company,
				Contact:      contact,
				Relationship: ref.Relationship,
			})
		}
	}

	return data
}

// FormatDate renders a YYYY-MM date as "Jan 2006". Unparseable input is
// returned unchanged rather than dropped.
func FormatDate(yearMonth string) string {
	if yearMonth == "" {
		return ""
	}
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return yearMonth
	}
	return t.Format("Jan 2006")
}

// DateRange renders an employment date span, using "Present" for
// current roles (the end date is ignored in that case).
func DateRange(start, end string, current bool) string {
	from := FormatDate(start)
	to := "Present"
	if !current {
		to = FormatDate(end)
	}
	if from == "" && to == "" {
		return ""
	}
	return from + " - " + to
}
