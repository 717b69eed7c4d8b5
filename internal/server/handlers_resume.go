package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-builder/internal/preview"
)

// handleGetResume returns the current record.
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}

// handleReplaceSection replaces one named section with the request
// body and returns the updated record plus the recomputed score.
func (s *Server) handleReplaceSection(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if !json.Valid(body) {
		s.errorResponse(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	if err := s.session.Replace(section, body); err != nil {
		s.serveError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume": s.session.Snapshot(),
		"score":  s.session.Report(),
	})
}

// handlePreview renders the record as a standalone HTML document.
func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	visual, err := preview.Render(s.session.Snapshot())
	if err != nil {
		s.serveError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(visual.Document())); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to write preview")
	}
}

// handleScore returns the current ATS report.
func (s *Server) handleScore(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.session.Report())
}

// handleListSuggestions returns the visible pending suggestions.
func (s *Server) handleListSuggestions(w http.ResponseWriter, _ *http.Request) {
	shown, remaining, industry := s.session.Suggestions()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"suggestions": shown,
		"remaining":   remaining,
		"industry":    industry,
	})
}

// handleApplySuggestion applies a pending suggestion by id.
func (s *Server) handleApplySuggestion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.session.ApplySuggestion(id); err != nil {
		s.serveError(w, err)
		return
	}

	shown, remaining, _ := s.session.Suggestions()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume":      s.session.Snapshot(),
		"score":       s.session.Report(),
		"suggestions": shown,
		"remaining":   remaining,
	})
}

// handleDismissSuggestion dismisses a pending suggestion by id.
func (s *Server) handleDismissSuggestion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.session.DismissSuggestion(id); err != nil {
		s.serveError(w, err)
		return
	}

	shown, remaining, _ := s.session.Suggestions()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"suggestions": shown,
		"remaining":   remaining,
	})
}

// handleSave persists the record immediately.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Save(r.Context()); err != nil {
		s.serveError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"saved": true,
		"email": s.session.Snapshot().PersonalInfo.Email,
	})
}

// loadRequest is the body of POST /resume/load.
type loadRequest struct {
	Email string `json:"email"`
}

// handleLoad replaces the session record with the one stored under the
// requested email.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		s.errorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := s.session.Load(r.Context(), req.Email); err != nil {
		s.serveError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume": s.session.Snapshot(),
		"score":  s.session.Report(),
	})
}
