package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Application workflow states.
const (
	ApplicationPending     = "PENDING"
	ApplicationReviewed    = "REVIEWED"
	ApplicationShortlisted = "SHORTLISTED"
	ApplicationRejected    = "REJECTED"
	ApplicationHired       = "HIRED"
)

// ApplicationRow represents a candidate's application to a job.
// CandidateID references the applying candidate's user id.
type ApplicationRow struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	CoverLetter string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Denormalized display fields filled by list queries.
	JobTitleEn    string
	JobTitleAr    string
	CandidateName string
}

// ApplicationRepository defines data access for applications.
type ApplicationRepository interface {
	// Create inserts a PENDING application and returns its id.
	Create(ctx context.Context, jobID, candidateID uuid.UUID, coverLetter string) (uuid.UUID, error)

	// GetByID returns the application, or (nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*ApplicationRow, error)

	// ExistsByJobAndCandidate reports whether the candidate already
	// applied to the job.
	ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error)

	// ListByCandidate returns the candidate's applications with job
	// titles attached, newest first.
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]ApplicationRow, error)

	// ListByJob returns a job's applications with candidate names
	// attached, newest first.
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]ApplicationRow, error)

	// UpdateStatus advances the workflow status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
