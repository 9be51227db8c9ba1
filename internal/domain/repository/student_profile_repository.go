package repository

import (
	"context"

	"student-recommendation-platform/internal/domain/entity"
)

// UpsertResult reports whether an upsert created a new document or replaced an existing one.
type UpsertResult struct {
	Created bool
}

type StudentProfileRepository interface {
	// UpsertByName inserts the profile if no document matches its name, or fully
	// replaces the matching document. Must be a single atomic replace-or-insert
	// so that two racing first submissions for the same name cannot both insert.
	UpsertByName(ctx context.Context, profile *entity.StudentProfile) (*UpsertResult, error)

	// FindAll returns every stored profile in whatever order the store yields.
	FindAll(ctx context.Context) ([]entity.StudentProfile, error)

	// EnsureIndexes creates the unique index on name. Called once at bootstrap.
	EnsureIndexes(ctx context.Context) error
}
