package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeRow mirrors the resumes table: scalar personal-info columns plus
// JSONB section columns. Rows are keyed by email with upsert semantics.
type ResumeRow struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Template  string    `json:"template"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	LinkedIn  string    `json:"linkedin"`
	Portfolio string    `json:"portfolio"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrEmailRequired indicates a save attempt without the keying email.
var ErrEmailRequired = errors.New("resume email is required to save")

// SaveResume upserts the record keyed by personalInfo.email: an existing
// row with that email is replaced wholesale, otherwise a new row is
// inserted. The in-memory record is never modified.
func (db *DB) SaveResume(ctx context.Context, r *types.Resume) error {
	if r.PersonalInfo.Email == "" {
		return ErrEmailRequired
	}

	education, err := json.Marshal(r.Education)
	if err != nil {
		return fmt.Errorf("failed to marshal education: %w", err)
	}
	experience, err := json.Marshal(r.Experience)
	if err != nil {
		return fmt.Errorf("failed to marshal experience: %w", err)
	}
	skills, err := json.Marshal(r.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	references, err := json.Marshal(r.References)
	if err != nil {
		return fmt.Errorf("failed to marshal references: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (email, template, full_name, phone, address, linkedin, portfolio, summary,
		                      education, experience, skills, resume_references)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (email) DO UPDATE SET
		   template = $2, full_name = $3, phone = $4, address = $5, linkedin = $6,
		   portfolio = $7, summary = $8, education = $9, experience = $10,
		   skills = $11, resume_references = $12, updated_at = NOW()`,
		r.PersonalInfo.Email, string(r.Template), r.PersonalInfo.FullName, r.PersonalInfo.Phone,
		r.PersonalInfo.Address, r.PersonalInfo.LinkedIn, r.PersonalInfo.Portfolio, r.PersonalInfo.Summary,
		education, experience, skills, references,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// GetResumeByEmail loads the record stored under email. Returns
// (nil, nil) when no row exists. Loaded rows are validated against the
// resume schema before being returned, guarding against drifted rows
// written by older clients.
func (db *DB) GetResumeByEmail(ctx context.Context, email string) (*types.Resume, error) {
	var (
		row        ResumeRow
		education  []byte
		experience []byte
		skills     []byte
		references []byte
	)

	err := db.pool.QueryRow(ctx,
		`SELECT id, email, template, full_name, phone, address, linkedin, portfolio, summary,
		        education, experience, skills, resume_references
		 FROM resumes WHERE email = $1`,
		email,
	).Scan(&row.ID, &row.Email, &row.Template, &row.FullName, &row.Phone, &row.Address,
		&row.LinkedIn, &row.Portfolio, &row.Summary,
		&education, &experience, &skills, &references)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	resume, err := assembleResume(row, education, experience, skills, references)
	if err != nil {
		return nil, err
	}

	doc, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume for validation: %w", err)
	}
	if err := schemas.ValidateResume(doc); err != nil {
		return nil, fmt.Errorf("stored resume for %s is invalid: %w", email, err)
	}

	return resume, nil
}

// assembleResume rebuilds the aggregate from scalar columns and JSONB
// section payloads. The references column may hold the legacy bare
// array form.
func assembleResume(row ResumeRow, education, experience, skills, references []byte) (*types.Resume, error) {
	resume := &types.Resume{
		Template: types.Template(row.Template),
		PersonalInfo: types.PersonalInfo{
			FullName:  row.FullName,
			Email:     row.Email,
			Phone:     row.Phone,
			Address:   row.Address,
			LinkedIn:  row.LinkedIn,
			Portfolio: row.Portfolio,
			Summary:   row.Summary,
		},
	}
	if !resume.Template.Valid() {
		resume.Template = types.TemplateClassic
	}

	if err := json.Unmarshal(education, &resume.Education); err != nil {
		return nil, fmt.Errorf("failed to decode education column: %w", err)
	}
	if err := json.Unmarshal(experience, &resume.Experience); err != nil {
		return nil, fmt.Errorf("failed to decode experience column: %w", err)
	}
	if err := json.Unmarshal(skills, &resume.Skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills column: %w", err)
	}

	if err := json.Unmarshal(references, &resume.References); err != nil {
		// Legacy rows stored references as a bare array.
		var entries []types.Reference
		if arrErr := json.Unmarshal(references, &entries); arrErr != nil {
			return nil, fmt.Errorf("failed to decode references column: %w", err)
		}
		resume.References = types.References{Entries: entries}
	}
	if resume.References.Entries == nil {
		resume.References.Entries = []types.Reference{}
	}

	return resume, nil
}
