package types

// SuggestionType discriminates the Suggestion union.
type SuggestionType string

// Suggestion variants.
const (
	SuggestionSkill       SuggestionType = "skill"
	SuggestionAchievement SuggestionType = "achievement"
	SuggestionSummary     SuggestionType = "summary"
	SuggestionExperience  SuggestionType = "experience"
)

// Suggestion is a proposed, not-yet-applied addition to the resume.
// Which payload fields are meaningful depends on Type:
//   - skill: Value is the skill name, Category is "technical" or "soft"
//   - achievement: Values are bullet texts, ExperienceID targets the entry
//   - summary: Value is the replacement summary text
type Suggestion struct {
	ID           string         `json:"id"`
	Type         SuggestionType `json:"type"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Value        string         `json:"value,omitempty"`
	Values       []string       `json:"values,omitempty"`
	Category     string         `json:"category,omitempty"`
	ExperienceID string         `json:"experienceId,omitempty"`
	Industry     string         `json:"industry,omitempty"`
}
