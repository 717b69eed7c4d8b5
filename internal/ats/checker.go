// Package ats provides the heuristic compatibility scorer that estimates
// how a resume fares against applicant tracking systems.
package ats

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-builder/internal/types"
)

// Status is the verdict of a single check.
type Status string

// Check verdicts.
const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

// Check is one weighted criterion with its verdict.
type Check struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
	Weight  int    `json:"weight"`
}

// Report is the full scoring result. Checks are in fixed order and
// their weights sum to 100.
type Report struct {
	Score  int     `json:"score"`
	Checks []Check `json:"checks"`
}

// Check weights. Must sum to 100.
const (
	weightContactInfo = 15
	weightSummary     = 20
	weightExperience  = 25
	weightSkills      = 20
	weightEducation   = 10
	weightFormatting  = 10
)

// minSummaryLength is the summary length above which the summary check passes.
const minSummaryLength = 100

// minSkillCount is the combined technical+soft skill count for a pass.
const minSkillCount = 5

// Evaluate computes the weighted compatibility score and per-criterion
// verdicts for r. It is a pure function: no side effects, no I/O.
func Evaluate(r *types.Resume) Report {
	checks := []Check{
		contactInfoCheck(r),
		summaryCheck(r),
		experienceCheck(r),
		skillsCheck(r),
		educationCheck(r),
		formattingCheck(),
	}

	totalWeight := 0
	earnedWeight := 0.0
	for _, check := range checks {
		totalWeight += check.Weight
		switch check.Status {
		case StatusPass:
			earnedWeight += float64(check.Weight)
		case StatusWarning:
			earnedWeight += float64(check.Weight) * 0.5
		}
	}

	score := int(math.Round(earnedWeight / float64(totalWeight) * 100))

	return Report{Score: score, Checks: checks}
}

func contactInfoCheck(r *types.Resume) Check {
	check := Check{
		ID:     "contact-info",
		Name:   "Contact Information",
		Weight: weightContactInfo,
	}
	if r.PersonalInfo.Email != "" && r.PersonalInfo.Phone != "" {
		check.Status = StatusPass
		check.Message = "Email and phone number are present"
	} else {
		check.Status = StatusFail
		check.Message = "Missing email or phone number"
	}
	return check
}

func summaryCheck(r *types.Resume) Check {
	check := Check{
		ID:     "professional-summary",
		Name:   "Professional Summary",
		Weight: weightSummary,
	}
	switch {
	case r.PersonalInfo.Summary == "":
		check.Status = StatusFail
		check.Message = "Missing professional summary"
	case len(r.PersonalInfo.Summary) > minSummaryLength:
		check.Status = StatusPass
		check.Message = "Good summary length"
	default:
		check.Status = StatusWarning
		check.Message = "Summary could be more detailed"
	}
	return check
}

func experienceCheck(r *types.Resume) Check {
	check := Check{
		ID:     "work-experience",
		Name:   "Work Experience",
		Weight: weightExperience,
	}
	if n := len(r.Experience); n > 0 {
		check.Status = StatusPass
		check.Message = fmt.Sprintf("%d work experience(s) listed", n)
	} else {
		check.Status = StatusFail
		check.Message = "No work experience listed"
	}
	return check
}

func skillsCheck(r *types.Resume) Check {
	check := Check{
		ID:     "skills-keywords",
		Name:   "Skills & Keywords",
		Weight: weightSkills,
	}
	if len(r.Skills.Technical)+len(r.Skills.Soft) >= minSkillCount {
		check.Status = StatusPass
		check.Message = "Good variety of skills listed"
	} else {
		check.Status = StatusWarning
		check.Message = "Consider adding more relevant skills"
	}
	return check
}

func educationCheck(r *types.Resume) Check {
	check := Check{
		ID:     "education",
		Name:   "Education",
		Weight: weightEducation,
	}
	if len(r.Education) > 0 {
		check.Status = StatusPass
		check.Message = "Education information provided"
	} else {
		check.Status = StatusWarning
		check.Message = "No education information (may be required for some positions)"
	}
	return check
}

// formattingCheck always passes: the built-in templates all use
// standard, machine-readable formatting.
func formattingCheck() Check {
	return Check{
		ID:      "formatting",
		Name:    "ATS-Friendly Formatting",
		Status:  StatusPass,
		Message: "Using standard formatting compatible with ATS systems",
		Weight:  weightFormatting,
	}
}
