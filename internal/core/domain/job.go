package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job lifecycle states.
const (
	JobStatusDraft  = "DRAFT"
	JobStatusOpen   = "OPEN"
	JobStatusClosed = "CLOSED"
)

// JobRow represents a job posting. EmployerID references the owning
// employer's user id; non-admin writes must match it.
type JobRow struct {
	ID            uuid.UUID
	EmployerID    uuid.UUID
	TitleAr       string
	TitleEn       string
	DescriptionAr string
	DescriptionEn string
	Category      string
	JobType       string
	City          string
	SalaryMin     *int
	SalaryMax     *int
	Status        string
	Approved      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// JobFilter narrows public job searches. Zero values mean "no filter".
type JobFilter struct {
	Keyword  string
	Category string
	JobType  string
	City     string
	Page     int
	PerPage  int
}

// JobRepository defines data access for job postings.
type JobRepository interface {
	// Search returns publicly visible jobs (OPEN and approved)
	// matching the filter, newest first, with the total match count
	// for pagination.
	Search(ctx context.Context, filter JobFilter) ([]JobRow, int, error)

	// GetByID returns the job, or (nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*JobRow, error)

	// ListByEmployer returns all jobs owned by the employer,
	// regardless of status or approval.
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]JobRow, error)

	// Create inserts a job and returns the generated id.
	Create(ctx context.Context, row *JobRow) (uuid.UUID, error)

	// Update replaces the job's mutable posting fields.
	Update(ctx context.Context, row *JobRow) error

	// UpdateStatus sets the lifecycle status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// SetApproved flips the moderation flag.
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error

	// Delete removes the job and cascades to its applications.
	Delete(ctx context.Context, id uuid.UUID) error
}
