package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// loadRecord fetches the resume either from a local JSON file or from
// the database by email. Exactly one source must be provided.
func loadRecord(ctx context.Context, filePath, email, databaseURL string) (*types.Resume, error) {
	if filePath != "" && email != "" {
		return nil, fmt.Errorf("--file and --email are mutually exclusive; provide only one")
	}

	if filePath != "" {
		return loadRecordFromFile(filePath)
	}
	if email != "" {
		return loadRecordFromDB(ctx, email, databaseURL)
	}
	return nil, fmt.Errorf("either --file or --email must be provided")
}

func loadRecordFromFile(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResume(data); err != nil {
		return nil, err
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume file: %w", err)
	}
	return &resume, nil
}

func loadRecordFromDB(ctx context.Context, email, databaseURL string) (*types.Resume, error) {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	resume, err := database.GetResumeByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume for %s: %w", email, err)
	}
	if resume == nil {
		return nil, fmt.Errorf("no resume stored for %s", email)
	}
	return resume, nil
}
