// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/record"
)

// ErrSuggestionNotFound indicates an apply/dismiss call for an id that
// is not pending in this session.
type ErrSuggestionNotFound struct {
	ID string
}

func (e *ErrSuggestionNotFound) Error() string {
	return fmt.Sprintf("suggestion not found: %s", e.ID)
}

// ErrResumeNotFound indicates a load call for an email with no stored record.
type ErrResumeNotFound struct {
	Email string
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("no stored resume for: %s", e.Email)
}

// ErrNoStore indicates a persistence operation on a server running
// without a configured database.
type ErrNoStore struct{}

func (e *ErrNoStore) Error() string {
	return "no persistence store configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unknownSection *record.UnknownSectionError
		suggestionMiss *ErrSuggestionNotFound
		resumeMiss     *ErrResumeNotFound
		noStore        *ErrNoStore
		badFormat      *export.UnsupportedFormatError
		visualMiss     *export.VisualNotFoundError
		validation     validator.ValidationErrors
	)
	switch {
	case errors.As(err, &unknownSection), errors.As(err, &badFormat),
		errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &suggestionMiss), errors.As(err, &resumeMiss):
		return http.StatusNotFound
	case errors.Is(err, db.ErrEmailRequired):
		return http.StatusUnprocessableEntity
	case errors.As(err, &noStore), errors.As(err, &visualMiss):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
