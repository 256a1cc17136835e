package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tawzeef/tawzeef/internal/core/domain"
)

// PgxApplicationRepository implements domain.ApplicationRepository.
type PgxApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository creates a new PgxApplicationRepository.
func NewApplicationRepository(pool *pgxpool.Pool) *PgxApplicationRepository {
	return &PgxApplicationRepository{pool: pool}
}

// Create inserts a PENDING application and returns its id.
func (r *PgxApplicationRepository) Create(ctx context.Context, jobID, candidateID uuid.UUID, coverLetter string) (uuid.UUID, error) {
	query := `
		INSERT INTO applications (job_id, candidate_id, cover_letter, status)
		VALUES ($1, $2, $3, 'PENDING')
		RETURNING id
	`

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, query, jobID, candidateID, coverLetter).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetByID returns the application, or (nil, nil).
func (r *PgxApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ApplicationRow, error) {
	query := `
		SELECT id, job_id, candidate_id, cover_letter, status, created_at, updated_at
		FROM applications WHERE id = $1
	`

	var a domain.ApplicationRow
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// ExistsByJobAndCandidate reports whether the candidate already
// applied to the job.
func (r *PgxApplicationRepository) ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, jobID, candidateID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByCandidate returns the candidate's applications with the job
// titles attached, newest first.
func (r *PgxApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.ApplicationRow, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.status,
		       a.created_at, a.updated_at, j.title_ar, j.title_en
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.candidate_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.ApplicationRow
	for rows.Next() {
		var a domain.ApplicationRow
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.Status,
			&a.CreatedAt, &a.UpdatedAt, &a.JobTitleAr, &a.JobTitleEn,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ListByJob returns a job's applications with candidate names
// attached, newest first.
func (r *PgxApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.ApplicationRow, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.status,
		       a.created_at, a.updated_at, u.name
		FROM applications a
		JOIN users u ON a.candidate_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.ApplicationRow
	for rows.Next() {
		var a domain.ApplicationRow
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.Status,
			&a.CreatedAt, &a.UpdatedAt, &a.CandidateName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// UpdateStatus advances the workflow status.
func (r *PgxApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status)
	return err
}
