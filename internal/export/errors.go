// Package export serializes a resume snapshot into downloadable
// document encodings (PDF, HTML, DOCX, PNG).
package export

import "fmt"

// VisualNotFoundError indicates a format that requires the rendered
// visual was invoked without one, or the marker node was missing from
// the supplied document. Fatal for that invocation; other formats are
// unaffected.
type VisualNotFoundError struct {
	Format Format
}

func (e *VisualNotFoundError) Error() string {
	return fmt.Sprintf("%s export requires a rendered resume preview, but none was found", e.Format)
}

// EncodeError represents a failure while producing the output encoding.
type EncodeError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s export failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s export failed: %s", e.Format, e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError indicates an export request for a format the
// pipeline does not produce.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %s", e.Format)
}
