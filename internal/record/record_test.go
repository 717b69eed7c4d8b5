package record

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestNew_Defaults(t *testing.T) {
	r := New()

	assert.Equal(t, types.TemplateClassic, r.Template)
	assert.Empty(t, r.PersonalInfo.FullName)
	assert.NotNil(t, r.Education)
	assert.NotNil(t, r.Experience)
	assert.NotNil(t, r.Skills.Technical)
	assert.NotNil(t, r.References.Entries)
	assert.False(t, r.References.ShowMessage)
}

func TestReplace_Template(t *testing.T) {
	r := New()

	require.NoError(t, Replace(r, SectionTemplate, json.RawMessage(`"modern"`)))
	assert.Equal(t, types.TemplateModern, r.Template)

	assert.Error(t, Replace(r, SectionTemplate, json.RawMessage(`"fancy"`)))
	assert.Equal(t, types.TemplateModern, r.Template, "invalid template leaves the record untouched")
}

func TestReplace_PersonalInfo(t *testing.T) {
	r := New()

	payload := json.RawMessage(`{"fullName":"Jane Smith","email":"jane@example.com","summary":"Hi"}`)
	require.NoError(t, Replace(r, SectionPersonalInfo, payload))

	assert.Equal(t, "Jane Smith", r.PersonalInfo.FullName)
	assert.Equal(t, "jane@example.com", r.PersonalInfo.Email)
	assert.Equal(t, "Hi", r.PersonalInfo.Summary)
}

func TestReplace_ExperienceAssignsIDsAndPlaceholders(t *testing.T) {
	r := New()

	payload := json.RawMessage(`[
		{"company":"Acme","position":"Engineer"},
		{"id":"keep-me","company":"Beta","achievements":["Did a thing"]}
	]`)
	require.NoError(t, Replace(r, SectionExperience, payload))
	require.Len(t, r.Experience, 2)

	assert.NotEmpty(t, r.Experience[0].ID, "missing id is generated")
	assert.Equal(t, []string{""}, r.Experience[0].Achievements, "empty achievements get a placeholder")
	assert.Equal(t, "keep-me", r.Experience[1].ID)
	assert.Equal(t, []string{"Did a thing"}, r.Experience[1].Achievements)
}

func TestReplace_DuplicateIDsRejected(t *testing.T) {
	r := New()

	payload := json.RawMessage(`[{"id":"dup"},{"id":"dup"}]`)
	assert.Error(t, Replace(r, SectionEducation, payload))
}

func TestReplace_SkillsDeduplicates(t *testing.T) {
	r := New()

	payload := json.RawMessage(`{"technical":["Go","go"," SQL ","","SQL"],"soft":[],"languages":[],"certifications":[]}`)
	require.NoError(t, Replace(r, SectionSkills, payload))

	assert.Equal(t, []string{"Go", "SQL"}, r.Skills.Technical)
}

func TestReplace_ReferencesObjectForm(t *testing.T) {
	r := New()

	payload := json.RawMessage(`{"showMessage":true,"references":[{"name":"Dr. Lee"}]}`)
	require.NoError(t, Replace(r, SectionReferences, payload))

	assert.True(t, r.References.ShowMessage)
	require.Len(t, r.References.Entries, 1)
	assert.NotEmpty(t, r.References.Entries[0].ID)
}

func TestReplace_ReferencesLegacyArrayForm(t *testing.T) {
	r := New()

	payload := json.RawMessage(`[{"name":"Dr. Lee"},{"name":"Ms. Park"}]`)
	require.NoError(t, Replace(r, SectionReferences, payload))

	assert.False(t, r.References.ShowMessage)
	assert.Len(t, r.References.Entries, 2)
}

func TestReplace_UnknownSection(t *testing.T) {
	err := Replace(New(), "hobbies", json.RawMessage(`{}`))

	var unknownErr *UnknownSectionError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "hobbies", unknownErr.Section)
}

func TestReplace_MalformedPayload(t *testing.T) {
	assert.Error(t, Replace(New(), SectionExperience, json.RawMessage(`{"not":"an array"}`)))
}

func TestReplace_InvalidEmailRejected(t *testing.T) {
	r := New()
	require.NoError(t, Replace(r, SectionPersonalInfo,
		json.RawMessage(`{"fullName":"Jane Smith","email":"jane@example.com"}`)))

	err := Replace(r, SectionPersonalInfo,
		json.RawMessage(`{"fullName":"Jane Smith","email":"not-an-email"}`))

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	// The failed swap leaves the previous section in place.
	assert.Equal(t, "jane@example.com", r.PersonalInfo.Email)
}

func TestAddSkill(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		add      string
		added    bool
		expected []string
	}{
		{"appends new", []string{"Go"}, "Docker", true, []string{"Go", "Docker"}},
		{"rejects duplicate", []string{"Go"}, "go", false, []string{"Go"}},
		{"trims whitespace", nil, "  SQL  ", true, []string{"SQL"}},
		{"rejects blank", nil, "   ", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := tt.existing
			assert.Equal(t, tt.added, AddSkill(&list, tt.add))
			assert.Equal(t, tt.expected, list)
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	r := New()
	r.PersonalInfo.FullName = "Jane Smith"
	r.Experience = []types.Experience{
		{ID: "exp-1", Achievements: []string{"Bullet"}},
	}
	r.Skills.Technical = []string{"Go"}
	r.References.Entries = []types.Reference{{ID: "ref-1", Name: "Dr. Lee"}}

	clone := Clone(r)

	clone.PersonalInfo.FullName = "Someone Else"
	clone.Experience[0].Achievements[0] = "Changed"
	clone.Skills.Technical[0] = "Rust"
	clone.References.Entries[0].Name = "Changed"

	assert.Equal(t, "Jane Smith", r.PersonalInfo.FullName)
	assert.Equal(t, "Bullet", r.Experience[0].Achievements[0])
	assert.Equal(t, "Go", r.Skills.Technical[0])
	assert.Equal(t, "Dr. Lee", r.References.Entries[0].Name)
}
