// Package record manages the lifecycle of the resume aggregate: empty
// defaults, whole-section replacement and copy-by-value snapshots.
package record

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Section names accepted by Replace.
const (
	SectionTemplate     = "template"
	SectionPersonalInfo = "personalInfo"
	SectionEducation    = "education"
	SectionExperience   = "experience"
	SectionSkills       = "skills"
	SectionReferences   = "references"
)

// UnknownSectionError indicates a Replace call with a section name the
// record does not have.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown resume section: %s", e.Section)
}

// New returns a resume with all-empty defaults, as created at session start.
func New() *types.Resume {
	return &types.Resume{
		Template: types.TemplateClassic,
		Skills: types.Skills{
			Technical:      []string{},
			Soft:           []string{},
			Languages:      []string{},
			Certifications: []string{},
		},
		Education:  []types.Education{},
		Experience: []types.Experience{},
		References: types.References{Entries: []types.Reference{}},
	}
}

// Replace decodes payload as the named section and swaps it into r
// wholesale. Entries arriving without an id are assigned one; experience
// entries are normalized so achievements is never empty. The swap is
// committed only if the resulting aggregate validates; on any error r
// is left untouched.
func Replace(r *types.Resume, section string, payload json.RawMessage) error {
	next := Clone(r)
	switch section {
	case SectionTemplate:
		var tpl types.Template
		if err := json.Unmarshal(payload, &tpl); err != nil {
			return fmt.Errorf("failed to decode template: %w", err)
		}
		if !tpl.Valid() {
			return fmt.Errorf("invalid template: %s", tpl)
		}
		next.Template = tpl

	case SectionPersonalInfo:
		var info types.PersonalInfo
		if err := json.Unmarshal(payload, &info); err != nil {
			return fmt.Errorf("failed to decode personal info: %w", err)
		}
		next.PersonalInfo = info

	case SectionEducation:
		var education []types.Education
		if err := json.Unmarshal(payload, &education); err != nil {
			return fmt.Errorf("failed to decode education: %w", err)
		}
		for i := range education {
			if education[i].ID == "" {
				education[i].ID = uuid.New().String()
			}
		}
		if err := ensureUniqueIDs(idsOfEducation(education)); err != nil {
			return err
		}
		next.Education = education

	case SectionExperience:
		var experience []types.Experience
		if err := json.Unmarshal(payload, &experience); err != nil {
			return fmt.Errorf("failed to decode experience: %w", err)
		}
		for i := range experience {
			if experience[i].ID == "" {
				experience[i].ID = uuid.New().String()
			}
			if len(experience[i].Achievements) == 0 {
				experience[i].Achievements = []string{""}
			}
		}
		if err := ensureUniqueIDs(idsOfExperience(experience)); err != nil {
			return err
		}
		next.Experience = experience

	case SectionSkills:
		var skills types.Skills
		if err := json.Unmarshal(payload, &skills); err != nil {
			return fmt.Errorf("failed to decode skills: %w", err)
		}
		skills.Technical = dedupe(skills.Technical)
		skills.Soft = dedupe(skills.Soft)
		skills.Languages = dedupe(skills.Languages)
		skills.Certifications = dedupe(skills.Certifications)
		next.Skills = skills

	case SectionReferences:
		refs, err := decodeReferences(payload)
		if err != nil {
			return err
		}
		for i := range refs.Entries {
			if refs.Entries[i].ID == "" {
				refs.Entries[i].ID = uuid.New().String()
			}
		}
		if err := ensureUniqueIDs(idsOfReferences(refs.Entries)); err != nil {
			return err
		}
		next.References = refs

	default:
		return &UnknownSectionError{Section: section}
	}

	if err := next.Validate(); err != nil {
		return fmt.Errorf("invalid %s section: %w", section, err)
	}
	*r = *next
	return nil
}

// decodeReferences accepts both the current object form and the legacy
// bare-array form that older persisted rows may still hold.
func decodeReferences(payload json.RawMessage) (types.References, error) {
	trimmed := strings.TrimSpace(string(payload))
	if strings.HasPrefix(trimmed, "[") {
		var entries []types.Reference
		if err := json.Unmarshal(payload, &entries); err != nil {
			return types.References{}, fmt.Errorf("failed to decode references: %w", err)
		}
		return types.References{ShowMessage: false, Entries: entries}, nil
	}

	var refs types.References
	if err := json.Unmarshal(payload, &refs); err != nil {
		return types.References{}, fmt.Errorf("failed to decode references: %w", err)
	}
	if refs.Entries == nil {
		refs.Entries = []types.Reference{}
	}
	return refs, nil
}

// AddSkill appends name to the given skill list if not already present
// (case-insensitive). Returns false when the skill was rejected as a
// duplicate or blank.
func AddSkill(list *[]string, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, existing := range *list {
		if strings.EqualFold(existing, name) {
			return false
		}
	}
	*list = append(*list, name)
	return true
}

// Clone returns a deep copy of r. Exports operate on clones so that
// later edits never retroactively alter an in-flight export.
func Clone(r *types.Resume) *types.Resume {
	out := *r

	out.Education = append([]types.Education(nil), r.Education...)

	out.Experience = make([]types.Experience, len(r.Experience))
	for i, exp := range r.Experience {
		exp.Achievements = append([]string(nil), exp.Achievements...)
		out.Experience[i] = exp
	}

	out.Skills.Technical = append([]string(nil), r.Skills.Technical...)
	out.Skills.Soft = append([]string(nil), r.Skills.Soft...)
	out.Skills.Languages = append([]string(nil), r.Skills.Languages...)
	out.Skills.Certifications = append([]string(nil), r.Skills.Certifications...)

	out.References.Entries = append([]types.Reference(nil), r.References.Entries...)

	return &out
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

func ensureUniqueIDs(ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("duplicate entry id: %s", id)
		}
		seen[id] = true
	}
	return nil
}

func idsOfEducation(entries []types.Education) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func idsOfExperience(entries []types.Experience) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func idsOfReferences(entries []types.Reference) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
