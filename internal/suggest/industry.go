// Package suggest provides the suggestion engine: it infers the
// candidate's industry from resume content and proposes additions
// (skills, summary text, achievement bullets) not yet present.
package suggest

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Industry is one of the fixed industries the engine knows about.
type Industry string

// Known industries, in detection priority order.
const (
	IndustrySoftware   Industry = "Software Development"
	IndustryMarketing  Industry = "Marketing"
	IndustryFinance    Industry = "Finance"
	IndustryHealthcare Industry = "Healthcare"
	IndustrySales      Industry = "Sales"
)

// industryOrder fixes the priority in which keyword sets are tested.
// The first industry whose keyword set matches wins.
var industryOrder = []Industry{
	IndustrySoftware,
	IndustryMarketing,
	IndustryFinance,
	IndustryHealthcare,
	IndustrySales,
}

// industryKeywords maps each industry to the lowercased keywords that
// signal it. Matching is substring-based against the concatenated
// resume text.
var industryKeywords = map[Industry][]string{
	IndustrySoftware: {
		"software", "developer", "engineer", "programming", "javascript",
		"python", "java", "react", "backend", "frontend", "full stack",
		"devops", "api", "database", "cloud",
	},
	IndustryMarketing: {
		"marketing", "seo", "social media", "campaign", "brand",
		"content", "advertising", "analytics", "copywriting", "growth",
	},
	IndustryFinance: {
		"finance", "financial", "accounting", "audit", "investment",
		"banking", "budget", "portfolio", "tax", "compliance",
	},
	IndustryHealthcare: {
		"healthcare", "medical", "nurse", "patient", "clinical",
		"hospital", "pharmacy", "physician", "therapy", "care",
	},
	IndustrySales: {
		"sales", "account executive", "business development", "quota",
		"pipeline", "crm", "negotiation", "prospecting", "closing",
	},
}

// DetectIndustry classifies the resume into one of the known
// industries. The classifier is deterministic: it concatenates
// lowercased text from experience, skills and summary, then tests the
// industry keyword sets in fixed priority order. Defaults to
// IndustrySoftware when nothing matches.
func DetectIndustry(r *types.Resume) Industry {
	text := collectText(r)

	for _, industry := range industryOrder {
		for _, keyword := range industryKeywords[industry] {
			if strings.Contains(text, keyword) {
				return industry
			}
		}
	}

	return IndustrySoftware
}

// collectText builds the lowercased haystack the classifier searches:
// experience positions, companies, descriptions and achievements, all
// skill groups, and the professional summary.
func collectText(r *types.Resume) string {
	var sb strings.Builder

	for _, exp := range r.Experience {
		sb.WriteString(exp.Position)
		sb.WriteString(" ")
		sb.WriteString(exp.Company)
		sb.WriteString(" ")
		sb.WriteString(exp.Description)
		sb.WriteString(" ")
		for _, achievement := range exp.Achievements {
			sb.WriteString(achievement)
			sb.WriteString(" ")
		}
	}

	for _, group := range [][]string{
		r.Skills.Technical,
		r.Skills.Soft,
		r.Skills.Languages,
		r.Skills.Certifications,
	} {
		for _, skill := range group {
			sb.WriteString(skill)
			sb.WriteString(" ")
		}
	}

	sb.WriteString(r.PersonalInfo.Summary)

	return strings.ToLower(sb.String())
}
