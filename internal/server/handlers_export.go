package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/preview"
)

// handleExport renders the record and streams one export artifact. The
// session snapshot keeps the export isolated from concurrent edits.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := export.Format(r.PathValue("format"))
	if !format.Valid() {
		s.serveError(w, &export.UnsupportedFormatError{Format: format})
		return
	}

	snapshot := s.session.Snapshot()

	visual, err := preview.Render(snapshot)
	if err != nil {
		s.serveError(w, err)
		return
	}

	artifact, err := s.exporter.Export(r.Context(), snapshot, format, visual)
	if err != nil {
		s.serveError(w, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to write artifact")
	}
}
