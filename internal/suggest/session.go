package suggest

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// maxVisible caps how many suggestions are surfaced at a time.
const maxVisible = 3

// Tracker records which suggestion ids have been applied or dismissed
// during the current editing session. Retired ids are never reoffered,
// even when the underlying condition persists; the set lives for the
// session only and is cleared on Reset.
type Tracker struct {
	retired map[string]bool
}

// NewTracker returns an empty session tracker.
func NewTracker() *Tracker {
	return &Tracker{retired: make(map[string]bool)}
}

// Retire permanently removes id from this session's suggestion stream.
// Used for both applied and dismissed suggestions.
func (t *Tracker) Retire(id string) {
	t.retired[id] = true
}

// Retired reports whether id has been applied or dismissed.
func (t *Tracker) Retired(id string) bool {
	return t.retired[id]
}

// Reset clears the session state.
func (t *Tracker) Reset() {
	t.retired = make(map[string]bool)
}

// Filter removes retired suggestions, preserving order.
func (t *Tracker) Filter(suggestions []types.Suggestion) []types.Suggestion {
	out := make([]types.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if t.retired[s.ID] {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Visible splits pending suggestions into the ones shown now (at most
// 3) and the count of remaining ones.
func Visible(pending []types.Suggestion) (shown []types.Suggestion, remaining int) {
	if len(pending) <= maxVisible {
		return pending, 0
	}
	return pending[:maxVisible], len(pending) - maxVisible
}
