package suggest

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Generation caps per recomputation.
const (
	maxTechnicalSuggestions   = 2
	maxSoftSuggestions        = 1
	maxAchievementSuggestions = 2

	// minSummaryLength is the summary length below which a replacement
	// summary is proposed.
	minSummaryLength = 50

	// minAchievements is the number of non-blank achievement bullets the
	// first experience entry should have before the engine stops
	// proposing more.
	minAchievements = 2
)

// Generate recomputes the suggestion list from scratch for the given
// resume and detected industry. Suggestion ids are stable for a given
// resume state, so the session tracker can filter out ids already
// applied or dismissed.
func Generate(r *types.Resume, industry Industry) []types.Suggestion {
	table := industryKnowledge[industry]
	suggestions := make([]types.Suggestion, 0)

	suggestions = append(suggestions, missingSkills(r, industry, table)...)

	if len(r.PersonalInfo.Summary) < minSummaryLength {
		suggestions = append(suggestions, types.Suggestion{
			ID:          "summary-" + slug(string(industry)),
			Type:        types.SuggestionSummary,
			Title:       "Enhance Professional Summary",
			Description: fmt.Sprintf("Add a compelling summary tailored to %s roles", industry),
			Value:       table.SummaryTemplate,
			Industry:    string(industry),
		})
	}

	if s, ok := achievementSuggestion(r, industry, table); ok {
		suggestions = append(suggestions, s)
	}

	return suggestions
}

// missingSkills proposes up to 2 technical and 1 soft skill from the
// industry table that the resume does not already list, preserving
// table order.
func missingSkills(r *types.Resume, industry Industry, table knowledge) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, maxTechnicalSuggestions+maxSoftSuggestions)

	for _, name := range difference(table.TechnicalSkills, r.Skills.Technical, maxTechnicalSuggestions) {
		suggestions = append(suggestions, types.Suggestion{
			ID:          "skill-technical-" + slug(name),
			Type:        types.SuggestionSkill,
			Title:       "Add " + name,
			Description: fmt.Sprintf("%s is a commonly screened skill in %s", name, industry),
			Value:       name,
			Category:    "technical",
			Industry:    string(industry),
		})
	}

	for _, name := range difference(table.SoftSkills, r.Skills.Soft, maxSoftSuggestions) {
		suggestions = append(suggestions, types.Suggestion{
			ID:          "skill-soft-" + slug(name),
			Type:        types.SuggestionSkill,
			Title:       "Add " + name,
			Description: fmt.Sprintf("%s rounds out a %s profile", name, industry),
			Value:       name,
			Category:    "soft",
			Industry:    string(industry),
		})
	}

	return suggestions
}

// achievementSuggestion proposes up to 2 bullets for the first
// experience entry when it has fewer than 2 non-placeholder
// achievements.
func achievementSuggestion(r *types.Resume, industry Industry, table knowledge) (types.Suggestion, bool) {
	if len(r.Experience) == 0 {
		return types.Suggestion{}, false
	}

	first := r.Experience[0]
	if countNonBlank(first.Achievements) >= minAchievements {
		return types.Suggestion{}, false
	}

	bullets := table.Achievements
	if len(bullets) > maxAchievementSuggestions {
		bullets = bullets[:maxAchievementSuggestions]
	}

	title := "Add achievements"
	if first.Position != "" {
		title = "Add achievements for " + first.Position
	}

	return types.Suggestion{
		ID:           "achievement-" + first.ID,
		Type:         types.SuggestionAchievement,
		Title:        title,
		Description:  "Quantify your impact with specific metrics and results",
		Values:       append([]string(nil), bullets...),
		ExperienceID: first.ID,
		Industry:     string(industry),
	}, true
}

// difference returns up to limit elements of table not present in
// current (case-insensitive), preserving table order.
func difference(table, current []string, limit int) []string {
	have := make(map[string]bool, len(current))
	for _, s := range current {
		have[strings.ToLower(s)] = true
	}

	out := make([]string, 0, limit)
	for _, candidate := range table {
		if have[strings.ToLower(candidate)] {
			continue
		}
		out = append(out, candidate)
		if len(out) == limit {
			break
		}
	}
	return out
}

func countNonBlank(list []string) int {
	n := 0
	for _, s := range list {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

func slug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	s = strings.ReplaceAll(s, "/", "-")
	return s
}
