package server

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/record"
	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
)

// Store abstracts the persistence adapter so the session can be tested
// without a database.
type Store interface {
	SaveResume(ctx context.Context, r *types.Resume) error
	GetResumeByEmail(ctx context.Context, email string) (*types.Resume, error)
}

// Session is the single active editing session: the resume aggregate
// plus everything recomputed on each mutation. All mutations are
// synchronous whole-section replacements; the score and the pending
// suggestion list are recomputed before the mutating call returns.
type Session struct {
	mu       sync.Mutex
	resume   *types.Resume
	tracker  *suggest.Tracker
	report   ats.Report
	industry suggest.Industry
	pending  []types.Suggestion

	store     Store
	debounce  time.Duration
	saveTimer *time.Timer
}

// NewSession creates a session with an all-empty resume. store may be
// nil for in-memory-only editing; debounce is the quiet period before a
// scheduled save fires.
func NewSession(store Store, debounce time.Duration) *Session {
	s := &Session{
		resume:   record.New(),
		tracker:  suggest.NewTracker(),
		store:    store,
		debounce: debounce,
	}
	s.recompute()
	return s
}

// Snapshot returns a deep copy of the current resume. Exports consume
// snapshots so in-flight exports are isolated from later edits.
func (s *Session) Snapshot() *types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return record.Clone(s.resume)
}

// Replace swaps one named section and synchronously recomputes the
// score and suggestions. A debounced save is scheduled when a store is
// configured and the record has its keying email.
func (s *Session) Replace(section string, payload json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := record.Replace(s.resume, section, payload); err != nil {
		return err
	}
	s.recompute()
	s.scheduleSaveLocked()
	return nil
}

// Report returns the last computed ATS report.
func (s *Session) Report() ats.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// Suggestions returns the visible pending suggestions, the count of
// further ones, and the detected industry.
func (s *Session) Suggestions() (shown []types.Suggestion, remaining int, industry suggest.Industry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shown, remaining = suggest.Visible(s.pending)
	return shown, remaining, s.industry
}

// ApplySuggestion applies a pending suggestion to the resume and
// retires its id for the rest of the session.
func (s *Session) ApplySuggestion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	suggestion, ok := s.findPendingLocked(id)
	if !ok {
		return &ErrSuggestionNotFound{ID: id}
	}
	if err := suggest.Apply(s.resume, suggestion); err != nil {
		return err
	}
	s.tracker.Retire(id)
	s.recompute()
	s.scheduleSaveLocked()
	return nil
}

// DismissSuggestion retires a pending suggestion without applying it.
// Like applied ids, dismissed ids are never reoffered this session.
func (s *Session) DismissSuggestion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findPendingLocked(id); !ok {
		return &ErrSuggestionNotFound{ID: id}
	}
	s.tracker.Retire(id)
	s.recompute()
	return nil
}

// Save persists the record immediately. The in-memory record is never
// modified or rolled back by a failed save; the caller may retry.
func (s *Session) Save(ctx context.Context) error {
	if s.store == nil {
		return &ErrNoStore{}
	}
	snapshot := s.Snapshot()
	if snapshot.PersonalInfo.Email == "" {
		return db.ErrEmailRequired
	}
	return s.store.SaveResume(ctx, snapshot)
}

// Load replaces the session's record with the one stored under email.
// The session's applied/dismissed set is kept: retiring is scoped to
// the session, not to the record.
func (s *Session) Load(ctx context.Context, email string) error {
	if s.store == nil {
		return &ErrNoStore{}
	}
	loaded, err := s.store.GetResumeByEmail(ctx, email)
	if err != nil {
		return err
	}
	if loaded == nil {
		return &ErrResumeNotFound{Email: email}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = loaded
	s.recompute()
	return nil
}

// findPendingLocked looks the id up in the pending list. Callers hold s.mu.
func (s *Session) findPendingLocked(id string) (types.Suggestion, bool) {
	for _, suggestion := range s.pending {
		if suggestion.ID == id {
			return suggestion, true
		}
	}
	return types.Suggestion{}, false
}

// recompute refreshes the score, the detected industry and the pending
// suggestion list from the current record. Callers hold s.mu (or own
// the session exclusively during construction).
func (s *Session) recompute() {
	s.report = ats.Evaluate(s.resume)
	s.industry = suggest.DetectIndustry(s.resume)
	s.pending = s.tracker.Filter(suggest.Generate(s.resume, s.industry))
}

// scheduleSaveLocked arms (or re-arms) the debounced save. Rapid edits
// coalesce into a single save after the quiet period; the last write
// wins. Callers hold s.mu.
func (s *Session) scheduleSaveLocked() {
	if s.store == nil || s.debounce <= 0 {
		return
	}
	if s.resume.PersonalInfo.Email == "" {
		// Saving is blocked until the keying email exists.
		return
	}

	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(s.debounce, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Save(ctx); err != nil {
			// The record stays intact in memory; the user may retry
			// with an explicit save.
			log.Printf("debounced save failed: %v", err)
		}
	})
}

// Close stops any armed save timer.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
}
