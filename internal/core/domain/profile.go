package domain

import (
	"context"

	"github.com/google/uuid"
)

// EmployerRow is an employer's company profile, keyed by the owning
// user. Free-text fields carry both Arabic and English variants.
type EmployerRow struct {
	UserID        uuid.UUID
	CompanyNameAr string
	CompanyNameEn string
	AboutAr       string
	AboutEn       string
	Website       string
	City          string
	LogoURL       string
}

// CandidateRow is a candidate's profile, keyed by the owning user.
type CandidateRow struct {
	UserID     uuid.UUID
	HeadlineAr string
	HeadlineEn string
	BioAr      string
	BioEn      string
	City       string
	Phone      string
	CVURL      string
}

// EmployerRepository defines data access for employer profiles.
type EmployerRepository interface {
	// GetByUserID returns the profile for the user, or (nil, nil).
	GetByUserID(ctx context.Context, userID uuid.UUID) (*EmployerRow, error)

	// Create inserts an empty profile owned by the user. Called at
	// registration time so every employer has exactly one profile row.
	Create(ctx context.Context, userID uuid.UUID) error

	// Update replaces the profile's mutable fields.
	Update(ctx context.Context, row *EmployerRow) error
}

// CandidateRepository defines data access for candidate profiles.
type CandidateRepository interface {
	// GetByUserID returns the profile for the user, or (nil, nil).
	GetByUserID(ctx context.Context, userID uuid.UUID) (*CandidateRow, error)

	// Create inserts an empty profile owned by the user.
	Create(ctx context.Context, userID uuid.UUID) error

	// Update replaces the profile's mutable fields.
	Update(ctx context.Context, row *CandidateRow) error
}
