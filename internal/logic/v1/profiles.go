package v1

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tawzeef/tawzeef/internal/auth"
	"github.com/tawzeef/tawzeef/internal/core/domain"
	"github.com/tawzeef/tawzeef/middleware"
)

// ProfileService reads and writes the calling principal's own profile
// row. The row is created at registration, so a missing row means the
// principal has no profile for its role (e.g. the superuser).
type ProfileService struct {
	employers  domain.EmployerRepository
	candidates domain.CandidateRepository
}

// NewProfileService creates a ProfileService.
func NewProfileService(employers domain.EmployerRepository, candidates domain.CandidateRepository) *ProfileService {
	return &ProfileService{employers: employers, candidates: candidates}
}

// GetEmployer returns the calling employer's profile.
func (s *ProfileService) GetEmployer(ctx context.Context, sess *auth.Session) (*domain.EmployerRow, error) {
	ctx, span := middleware.StartSpan(ctx, "profiles.get_employer", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	id, err := principalID(sess)
	if err != nil {
		return nil, err
	}

	row, err := s.employers.GetByUserID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query employer profile: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("employer profile %s: %w", sess.Subject, ErrNotFound)
	}
	return row, nil
}

// UpdateEmployer replaces the calling employer's profile fields.
func (s *ProfileService) UpdateEmployer(ctx context.Context, sess *auth.Session, input domain.EmployerProfileInput) (*domain.EmployerRow, error) {
	ctx, span := middleware.StartSpan(ctx, "profiles.update_employer", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	row, err := s.GetEmployer(ctx, sess)
	if err != nil {
		return nil, err
	}

	row.CompanyNameAr = input.CompanyNameAr
	row.CompanyNameEn = input.CompanyNameEn
	row.AboutAr = input.AboutAr
	row.AboutEn = input.AboutEn
	row.Website = input.Website
	row.City = input.City
	row.LogoURL = input.LogoURL

	if err := s.employers.Update(ctx, row); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update employer profile: %w", err)
	}
	return row, nil
}

// GetCandidate returns the calling candidate's profile.
func (s *ProfileService) GetCandidate(ctx context.Context, sess *auth.Session) (*domain.CandidateRow, error) {
	ctx, span := middleware.StartSpan(ctx, "profiles.get_candidate", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	id, err := principalID(sess)
	if err != nil {
		return nil, err
	}

	row, err := s.candidates.GetByUserID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query candidate profile: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("candidate profile %s: %w", sess.Subject, ErrNotFound)
	}
	return row, nil
}

// UpdateCandidate replaces the calling candidate's profile fields.
func (s *ProfileService) UpdateCandidate(ctx context.Context, sess *auth.Session, input domain.CandidateProfileInput) (*domain.CandidateRow, error) {
	ctx, span := middleware.StartSpan(ctx, "profiles.update_candidate", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	row, err := s.GetCandidate(ctx, sess)
	if err != nil {
		return nil, err
	}

	row.HeadlineAr = input.HeadlineAr
	row.HeadlineEn = input.HeadlineEn
	row.BioAr = input.BioAr
	row.BioEn = input.BioEn
	row.City = input.City
	row.Phone = input.Phone
	row.CVURL = input.CVURL

	if err := s.candidates.Update(ctx, row); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update candidate profile: %w", err)
	}
	return row, nil
}
