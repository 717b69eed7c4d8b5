package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/record"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestDetectIndustry(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *types.Resume)
		expected Industry
	}{
		{
			name:     "empty resume defaults to software",
			mutate:   func(_ *types.Resume) {},
			expected: IndustrySoftware,
		},
		{
			name: "software keyword in position",
			mutate: func(r *types.Resume) {
				r.Experience = []types.Experience{
					{ID: "1", Position: "Backend Developer", Achievements: []string{""}},
				}
			},
			expected: IndustrySoftware,
		},
		{
			name: "marketing keyword in summary",
			mutate: func(r *types.Resume) {
				r.PersonalInfo.Summary = "Led SEO strategy for a growing brand"
			},
			expected: IndustryMarketing,
		},
		{
			name: "finance keyword in skills",
			mutate: func(r *types.Resume) {
				r.Skills.Technical = []string{"Financial Modeling"}
			},
			expected: IndustryFinance,
		},
		{
			name: "healthcare keyword in achievements",
			mutate: func(r *types.Resume) {
				r.Experience = []types.Experience{
					{ID: "1", Achievements: []string{"Improved patient outcomes"}},
				}
			},
			expected: IndustryHealthcare,
		},
		{
			name: "sales keyword in company description",
			mutate: func(r *types.Resume) {
				r.Experience = []types.Experience{
					{ID: "1", Description: "Owned the full pipeline from prospecting to closing", Achievements: []string{""}},
				}
			},
			expected: IndustrySales,
		},
		{
			name: "matching is case-insensitive",
			mutate: func(r *types.Resume) {
				r.PersonalInfo.Summary = "REGISTERED NURSE WITH ICU EXPERIENCE"
			},
			expected: IndustryHealthcare,
		},
		{
			name: "software wins over later industries when both match",
			mutate: func(r *types.Resume) {
				r.PersonalInfo.Summary = "Software engineer who built sales dashboards"
			},
			expected: IndustrySoftware,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record.New()
			tt.mutate(r)
			assert.Equal(t, tt.expected, DetectIndustry(r))
		})
	}
}

func TestDetectIndustry_PriorityOrderIsStable(t *testing.T) {
	assert.Equal(t, []Industry{
		IndustrySoftware,
		IndustryMarketing,
		IndustryFinance,
		IndustryHealthcare,
		IndustrySales,
	}, industryOrder)
}

func TestCollectText_IncludesAllSkillGroups(t *testing.T) {
	r := record.New()
	r.Skills.Languages = []string{"Spanish"}
	r.Skills.Certifications = []string{"CPA"}

	text := collectText(r)
	assert.Contains(t, text, "spanish")
	assert.Contains(t, text, "cpa")
}
