package suggest

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/record"
	"github.com/jonathan/resume-builder/internal/types"
)

// Apply mutates r according to the suggestion's variant. The caller is
// responsible for retiring the suggestion id with the session Tracker
// afterwards.
func Apply(r *types.Resume, s types.Suggestion) error {
	switch s.Type {
	case types.SuggestionSkill:
		switch s.Category {
		case "technical":
			record.AddSkill(&r.Skills.Technical, s.Value)
		case "soft":
			record.AddSkill(&r.Skills.Soft, s.Value)
		default:
			return fmt.Errorf("skill suggestion %s has unknown category %q", s.ID, s.Category)
		}

	case types.SuggestionSummary:
		r.PersonalInfo.Summary = s.Value

	case types.SuggestionAchievement:
		for i := range r.Experience {
			if r.Experience[i].ID != s.ExperienceID {
				continue
			}
			appendAchievements(&r.Experience[i], s.Values)
			return nil
		}
		return fmt.Errorf("achievement suggestion %s targets missing experience %s", s.ID, s.ExperienceID)

	case types.SuggestionExperience:
		// No generated variant carries this type yet; reserved for
		// parity with the suggestion union.
		return fmt.Errorf("experience suggestions cannot be auto-applied")

	default:
		return fmt.Errorf("unknown suggestion type: %s", s.Type)
	}

	return nil
}

// appendAchievements fills blank placeholder slots first, then appends.
func appendAchievements(exp *types.Experience, bullets []string) {
	for _, bullet := range bullets {
		placed := false
		for i, existing := range exp.Achievements {
			if strings.TrimSpace(existing) == "" {
				exp.Achievements[i] = bullet
				placed = true
				break
			}
		}
		if !placed {
			exp.Achievements = append(exp.Achievements, bullet)
		}
	}
	if len(exp.Achievements) == 0 {
		exp.Achievements = []string{""}
	}
}
