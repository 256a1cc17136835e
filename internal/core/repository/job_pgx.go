package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tawzeef/tawzeef/internal/core/domain"
)

// PgxJobRepository implements domain.JobRepository using pgxpool.
type PgxJobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository creates a new PgxJobRepository.
func NewJobRepository(pool *pgxpool.Pool) *PgxJobRepository {
	return &PgxJobRepository{pool: pool}
}

const jobColumns = `id, employer_id, title_ar, title_en, description_ar, description_en,
	category, job_type, city, salary_min, salary_max, status, approved, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.JobRow, error) {
	var j domain.JobRow
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.TitleAr, &j.TitleEn, &j.DescriptionAr, &j.DescriptionEn,
		&j.Category, &j.JobType, &j.City, &j.SalaryMin, &j.SalaryMax,
		&j.Status, &j.Approved, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

func collectJobs(rows pgx.Rows) ([]domain.JobRow, error) {
	defer rows.Close()

	var jobs []domain.JobRow
	for rows.Next() {
		var j domain.JobRow
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.TitleAr, &j.TitleEn, &j.DescriptionAr, &j.DescriptionEn,
			&j.Category, &j.JobType, &j.City, &j.SalaryMin, &j.SalaryMax,
			&j.Status, &j.Approved, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Search returns publicly visible jobs matching the filter plus the
// total match count. The keyword matches both Arabic and English
// title/description fields.
func (r *PgxJobRepository) Search(ctx context.Context, filter domain.JobFilter) ([]domain.JobRow, int, error) {
	where := []string{"status = 'OPEN'", "approved = TRUE"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Keyword != "" {
		p := arg("%" + filter.Keyword + "%")
		where = append(where, fmt.Sprintf(
			"(title_ar ILIKE %[1]s OR title_en ILIKE %[1]s OR description_ar ILIKE %[1]s OR description_en ILIKE %[1]s)", p))
	}
	if filter.Category != "" {
		where = append(where, "category = "+arg(filter.Category))
	}
	if filter.JobType != "" {
		where = append(where, "job_type = "+arg(filter.JobType))
	}
	if filter.City != "" {
		where = append(where, "city = "+arg(filter.City))
	}

	cond := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM jobs WHERE ` + cond
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	perPage := filter.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + cond +
		` ORDER BY created_at DESC LIMIT ` + arg(perPage) + ` OFFSET ` + arg((page-1)*perPage)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// GetByID returns the job, or (nil, nil).
func (r *PgxJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobRow, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.pool.QueryRow(ctx, query, id))
}

// ListByEmployer returns all jobs owned by the employer.
func (r *PgxJobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.JobRow, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

// Create inserts a job and returns the generated id.
func (r *PgxJobRepository) Create(ctx context.Context, row *domain.JobRow) (uuid.UUID, error) {
	query := `
		INSERT INTO jobs (employer_id, title_ar, title_en, description_ar, description_en,
			category, job_type, city, salary_min, salary_max, status, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		row.EmployerID, row.TitleAr, row.TitleEn, row.DescriptionAr, row.DescriptionEn,
		row.Category, row.JobType, row.City, row.SalaryMin, row.SalaryMax,
		row.Status, row.Approved,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update replaces the job's mutable posting fields.
func (r *PgxJobRepository) Update(ctx context.Context, row *domain.JobRow) error {
	query := `
		UPDATE jobs
		SET title_ar = $2, title_en = $3, description_ar = $4, description_en = $5,
		    category = $6, job_type = $7, city = $8, salary_min = $9, salary_max = $10,
		    status = $11, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		row.ID, row.TitleAr, row.TitleEn, row.DescriptionAr, row.DescriptionEn,
		row.Category, row.JobType, row.City, row.SalaryMin, row.SalaryMax, row.Status,
	)
	return err
}

// UpdateStatus sets the lifecycle status.
func (r *PgxJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE jobs SET status = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status)
	return err
}

// SetApproved flips the moderation flag.
func (r *PgxJobRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	query := `UPDATE jobs SET approved = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, approved)
	return err
}

// Delete removes the job; applications cascade via the schema.
func (r *PgxJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM jobs WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
