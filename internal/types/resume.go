// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Template identifies one of the built-in resume layouts.
type Template string

// Supported templates.
const (
	TemplateClassic  Template = "classic"
	TemplateModern   Template = "modern"
	TemplateMinimal  Template = "minimal"
	TemplateCreative Template = "creative"
)

// Valid reports whether t is one of the supported templates.
func (t Template) Valid() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateMinimal, TemplateCreative:
		return true
	}
	return false
}

// PersonalInfo holds the contact block and professional summary.
// Email and phone are optional for editing but required by the ATS
// contact-info check and by persistence (records are keyed by email).
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	LinkedIn  string `json:"linkedIn"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"`
}

// Education is a single education entry. ID is generated at creation
// and stable for the entry's lifetime.
type Education struct {
	ID             string `json:"id" validate:"required"`
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"` // YYYY-MM
	GPA            string `json:"gpa"`
	Honors         string `json:"honors"`
}

// Experience is a single employment entry. Achievements always holds at
// least one element while the entry exists; blank elements are
// placeholders awaiting user input and are filtered out on render.
type Experience struct {
	ID           string   `json:"id" validate:"required"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"` // YYYY-MM
	EndDate      string   `json:"endDate"`   // YYYY-MM, ignored when Current
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements" validate:"min=1"`
}

// Skills groups skill names by kind. Each list behaves as an ordered
// set: insertion order is preserved and duplicate inserts are rejected.
type Skills struct {
	Technical      []string `json:"technical"`
	Soft           []string `json:"soft"`
	Languages      []string `json:"languages"`
	Certifications []string `json:"certifications"`
}

// Reference is a single professional reference entry.
type Reference struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// References is either the boilerplate "available upon request" flag or
// a list of individual entries. When ShowMessage is set the entries are
// not rendered.
type References struct {
	ShowMessage bool        `json:"showMessage"`
	Entries     []Reference `json:"references"`
}

// Resume is the single in-memory aggregate mutated by form views and
// read by the scorer, the suggestion engine and the export pipeline.
type Resume struct {
	Template     Template     `json:"template"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Education    []Education  `json:"education" validate:"dive"`
	Experience   []Experience `json:"experience" validate:"dive"`
	Skills       Skills       `json:"skills"`
	References   References   `json:"references"`
}

// Validate validates the Resume aggregate using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
