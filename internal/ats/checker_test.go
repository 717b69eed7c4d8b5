package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/record"
	"github.com/jonathan/resume-builder/internal/types"
)

func completeResume() *types.Resume {
	r := record.New()
	r.PersonalInfo = types.PersonalInfo{
		FullName: "Jane Smith",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		Summary:  "Seasoned backend engineer with over a decade of experience designing distributed systems, leading teams and shipping reliable software at scale.",
	}
	r.Experience = []types.Experience{
		{ID: "exp-1", Company: "Acme", Position: "Engineer", Achievements: []string{"Shipped things"}},
	}
	r.Education = []types.Education{
		{ID: "edu-1", Institution: "State University", Degree: "BSc"},
	}
	r.Skills.Technical = []string{"Go", "SQL", "Docker"}
	r.Skills.Soft = []string{"Communication", "Mentoring"}
	return r
}

func TestEvaluate_CompleteResume(t *testing.T) {
	report := Evaluate(completeResume())

	assert.Equal(t, 100, report.Score)
	require.Len(t, report.Checks, 6)
	for _, check := range report.Checks {
		assert.Equal(t, StatusPass, check.Status, "check %s", check.ID)
	}
}

func TestEvaluate_EmptyResume(t *testing.T) {
	report := Evaluate(record.New())

	// Only formatting (10, pass) plus half credit for the skills and
	// education warnings (20 and 10).
	assert.Equal(t, 25, report.Score)
}

func TestEvaluate_WeightsSumTo100(t *testing.T) {
	report := Evaluate(record.New())

	total := 0
	for _, check := range report.Checks {
		total += check.Weight
	}
	assert.Equal(t, 100, total)
}

func TestEvaluate_CheckOrderIsFixed(t *testing.T) {
	report := Evaluate(record.New())

	ids := make([]string, len(report.Checks))
	for i, check := range report.Checks {
		ids[i] = check.ID
	}
	assert.Equal(t, []string{
		"contact-info",
		"professional-summary",
		"work-experience",
		"skills-keywords",
		"education",
		"formatting",
	}, ids)
}

func TestContactInfoCheck(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		phone  string
		status Status
	}{
		{"both present", "a@b.com", "555-0100", StatusPass},
		{"missing phone", "a@b.com", "", StatusFail},
		{"missing email", "", "555-0100", StatusFail},
		{"both missing", "", "", StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record.New()
			r.PersonalInfo.Email = tt.email
			r.PersonalInfo.Phone = tt.phone

			check := contactInfoCheck(r)
			assert.Equal(t, tt.status, check.Status)
			assert.Equal(t, weightContactInfo, check.Weight)
		})
	}
}

func TestSummaryCheck(t *testing.T) {
	long := make([]byte, minSummaryLength+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name    string
		summary string
		status  Status
	}{
		{"empty", "", StatusFail},
		{"short", "Brief summary.", StatusWarning},
		{"exactly at threshold", string(long[:minSummaryLength]), StatusWarning},
		{"above threshold", string(long), StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record.New()
			r.PersonalInfo.Summary = tt.summary

			assert.Equal(t, tt.status, summaryCheck(r).Status)
		})
	}
}

func TestExperienceCheck_MessageCountsEntries(t *testing.T) {
	r := completeResume()
	r.Experience = append(r.Experience, types.Experience{ID: "exp-2", Achievements: []string{""}})

	check := experienceCheck(r)
	assert.Equal(t, StatusPass, check.Status)
	assert.Equal(t, "2 work experience(s) listed", check.Message)
}

func TestSkillsCheck_CountsTechnicalAndSoftOnly(t *testing.T) {
	r := record.New()
	r.Skills.Technical = []string{"Go", "SQL"}
	r.Skills.Soft = []string{"Communication", "Teamwork"}
	// Languages and certifications do not count toward the threshold.
	r.Skills.Languages = []string{"Spanish", "French", "German"}

	assert.Equal(t, StatusWarning, skillsCheck(r).Status)

	r.Skills.Soft = append(r.Skills.Soft, "Mentoring")
	assert.Equal(t, StatusPass, skillsCheck(r).Status)
}

func TestEvaluate_PartialCredit(t *testing.T) {
	// Contact pass (15) + formatting pass (10) + skills warning (10) +
	// education warning (5) = 40.
	r := record.New()
	r.PersonalInfo.Email = "a@b.com"
	r.PersonalInfo.Phone = "555-0100"

	assert.Equal(t, 40, Evaluate(r).Score)
}

func TestEvaluate_ScoreNeverDropsWhenFieldsFill(t *testing.T) {
	r := record.New()
	before := Evaluate(r).Score

	steps := []func(){
		func() { r.PersonalInfo.Email = "a@b.com" },
		func() { r.PersonalInfo.Phone = "555-0100" },
		func() {
			r.PersonalInfo.Summary = "Engineer with a decade of shipping distributed systems at scale."
		},
		func() {
			r.Experience = append(r.Experience, types.Experience{ID: "exp-1", Achievements: []string{"Shipped it"}})
		},
		func() { r.Skills.Technical = []string{"Go", "SQL", "Docker"} },
		func() { r.Education = append(r.Education, types.Education{ID: "edu-1", Degree: "BSc", Institution: "State"}) },
	}
	for _, fill := range steps {
		fill()
		after := Evaluate(r).Score
		assert.GreaterOrEqual(t, after, before)
		before = after
	}
	assert.Equal(t, 100, before)
}

func TestEvaluate_Deterministic(t *testing.T) {
	r := completeResume()
	first := Evaluate(r)
	second := Evaluate(r)

	assert.Equal(t, first, second)
}
