package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tawzeef/tawzeef/internal/core/domain"
)

// PgxEmployerRepository implements domain.EmployerRepository.
type PgxEmployerRepository struct {
	pool *pgxpool.Pool
}

// NewEmployerRepository creates a new PgxEmployerRepository.
func NewEmployerRepository(pool *pgxpool.Pool) *PgxEmployerRepository {
	return &PgxEmployerRepository{pool: pool}
}

// GetByUserID returns the employer profile, or (nil, nil).
func (r *PgxEmployerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.EmployerRow, error) {
	query := `
		SELECT user_id, company_name_ar, company_name_en, about_ar, about_en, website, city, logo_url
		FROM employers WHERE user_id = $1
	`

	var row domain.EmployerRow
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&row.UserID, &row.CompanyNameAr, &row.CompanyNameEn,
		&row.AboutAr, &row.AboutEn, &row.Website, &row.City, &row.LogoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts an empty employer profile owned by the user.
func (r *PgxEmployerRepository) Create(ctx context.Context, userID uuid.UUID) error {
	query := `INSERT INTO employers (user_id) VALUES ($1)`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

// Update replaces the profile's mutable fields.
func (r *PgxEmployerRepository) Update(ctx context.Context, row *domain.EmployerRow) error {
	query := `
		UPDATE employers
		SET company_name_ar = $2, company_name_en = $3, about_ar = $4,
		    about_en = $5, website = $6, city = $7, logo_url = $8
		WHERE user_id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		row.UserID, row.CompanyNameAr, row.CompanyNameEn,
		row.AboutAr, row.AboutEn, row.Website, row.City, row.LogoURL,
	)
	return err
}

// PgxCandidateRepository implements domain.CandidateRepository.
type PgxCandidateRepository struct {
	pool *pgxpool.Pool
}

// NewCandidateRepository creates a new PgxCandidateRepository.
func NewCandidateRepository(pool *pgxpool.Pool) *PgxCandidateRepository {
	return &PgxCandidateRepository{pool: pool}
}

// GetByUserID returns the candidate profile, or (nil, nil).
func (r *PgxCandidateRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateRow, error) {
	query := `
		SELECT user_id, headline_ar, headline_en, bio_ar, bio_en, city, phone, cv_url
		FROM candidates WHERE user_id = $1
	`

	var row domain.CandidateRow
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&row.UserID, &row.HeadlineAr, &row.HeadlineEn,
		&row.BioAr, &row.BioEn, &row.City, &row.Phone, &row.CVURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts an empty candidate profile owned by the user.
func (r *PgxCandidateRepository) Create(ctx context.Context, userID uuid.UUID) error {
	query := `INSERT INTO candidates (user_id) VALUES ($1)`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

// Update replaces the profile's mutable fields.
func (r *PgxCandidateRepository) Update(ctx context.Context, row *domain.CandidateRow) error {
	query := `
		UPDATE candidates
		SET headline_ar = $2, headline_en = $3, bio_ar = $4,
		    bio_en = $5, city = $6, phone = $7, cv_url = $8
		WHERE user_id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		row.UserID, row.HeadlineAr, row.HeadlineEn,
		row.BioAr, row.BioEn, row.City, row.Phone, row.CVURL,
	)
	return err
}
