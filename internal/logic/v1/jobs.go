package v1

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tawzeef/tawzeef/internal/auth"
	"github.com/tawzeef/tawzeef/internal/core/domain"
	"github.com/tawzeef/tawzeef/middleware"
)

// JobService implements job posting business rules. Ownership: only
// the employer that created a job may mutate it; ADMIN bypasses every
// ownership check.
type JobService struct {
	jobs     domain.JobRepository
	taxonomy *TaxonomyService
}

// NewJobService creates a JobService.
func NewJobService(jobs domain.JobRepository, taxonomy *TaxonomyService) *JobService {
	return &JobService{jobs: jobs, taxonomy: taxonomy}
}

// checkTerms rejects posting input whose classification codes are not
// in the taxonomy.
func (s *JobService) checkTerms(input domain.JobInput) error {
	if !s.taxonomy.ValidCategory(input.Category) {
		return fmt.Errorf("category %q: %w", input.Category, ErrUnknownTerm)
	}
	if !s.taxonomy.ValidJobType(input.JobType) {
		return fmt.Errorf("job type %q: %w", input.JobType, ErrUnknownTerm)
	}
	if !s.taxonomy.ValidCity(input.City) {
		return fmt.Errorf("city %q: %w", input.City, ErrUnknownTerm)
	}
	return nil
}

// principalID parses the session subject as a user id. The superuser
// sentinel subject has no row and therefore no id.
func principalID(sess *auth.Session) (uuid.UUID, error) {
	id, err := uuid.Parse(sess.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("principal %q has no user row: %w", sess.Subject, ErrForbidden)
	}
	return id, nil
}

// canManage reports whether the session may mutate the job.
func canManage(sess *auth.Session, job *domain.JobRow) bool {
	if sess.Role == auth.RoleAdmin {
		return true
	}
	return sess.Subject == job.EmployerID.String()
}

// Search returns publicly visible jobs matching the filter.
func (s *JobService) Search(ctx context.Context, filter domain.JobFilter) ([]domain.JobRow, int, error) {
	ctx, span := middleware.StartSpan(ctx, "jobs.search", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	jobs, total, err := s.jobs.Search(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return nil, 0, fmt.Errorf("search jobs: %w", err)
	}

	span.SetAttributes(attribute.Int("jobs.total", total))
	return jobs, total, nil
}

// Get returns one job. Unpublished jobs (draft, closed or unapproved)
// are visible only to their owner and to admins; everyone else gets
// not-found, indistinguishable from a missing row.
func (s *JobService) Get(ctx context.Context, sess *auth.Session, id uuid.UUID) (*domain.JobRow, error) {
	ctx, span := middleware.StartSpan(ctx, "jobs.get", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query job: %w", err)
	}
	if job == nil {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}

	public := job.Status == domain.JobStatusOpen && job.Approved
	if !public && (sess == nil || !canManage(sess, job)) {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}

	return job, nil
}

// ListOwn returns every job owned by the calling employer.
func (s *JobService) ListOwn(ctx context.Context, sess *auth.Session) ([]domain.JobRow, error) {
	ctx, span := middleware.StartSpan(ctx, "jobs.list_own", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	employerID, err := principalID(sess)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// Create inserts a job owned by the calling employer. New jobs start
// unapproved and become publicly visible only after admin moderation.
func (s *JobService) Create(ctx context.Context, sess *auth.Session, input domain.JobInput) (*domain.JobRow, error) {
	ctx, span := middleware.StartSpan(ctx, "jobs.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	employerID, err := principalID(sess)
	if err != nil {
		return nil, err
	}
	if err := s.checkTerms(input); err != nil {
		return nil, err
	}

	status := domain.JobStatusDraft
	if input.Publish {
		status = domain.JobStatusOpen
	}

	row := &domain.JobRow{
		EmployerID:    employerID,
		TitleAr:       input.TitleAr,
		TitleEn:       input.TitleEn,
		DescriptionAr: input.DescriptionAr,
		DescriptionEn: input.DescriptionEn,
		Category:      input.Category,
		JobType:       input.JobType,
		City:          input.City,
		SalaryMin:     input.SalaryMin,
		SalaryMax:     input.SalaryMax,
		Status:        status,
		Approved:      false,
	}

	id, err := s.jobs.Create(ctx, row)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert job: %w", err)
	}
	row.ID = id

	span.SetAttributes(attribute.String("job.id", id.String()))
	return row, nil
}

// Update replaces the job's posting fields after an ownership check.
func (s *JobService) Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input domain.JobInput) (*domain.JobRow, error) {
	ctx, span := middleware.StartSpan(ctx, "jobs.update", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if err := s.checkTerms(input); err != nil {
		return nil, err
	}

	job, err := s.ownedJob(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	job.TitleAr = input.TitleAr
	job.TitleEn = input.TitleEn
	job.DescriptionAr = input.DescriptionAr
	job.DescriptionEn = input.DescriptionEn
	job.Category = input.Category
	job.JobType = input.JobType
	job.City = input.City
	job.SalaryMin = input.SalaryMin
	job.SalaryMax = input.SalaryMax
	if input.Publish && job.Status == domain.JobStatusDraft {
		job.Status = domain.JobStatusOpen
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// Close stops a job from accepting applications.
func (s *JobService) Close(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	ctx, span := middleware.StartSpan(ctx, "jobs.close", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if _, err := s.ownedJob(ctx, sess, id); err != nil {
		return err
	}

	if err := s.jobs.UpdateStatus(ctx, id, domain.JobStatusClosed); err != nil {
		span.RecordError(err)
		return fmt.Errorf("close job: %w", err)
	}
	return nil
}

// Delete removes a job and, via the schema, its applications.
func (s *JobService) Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	ctx, span := middleware.StartSpan(ctx, "jobs.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if _, err := s.ownedJob(ctx, sess, id); err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// ownedJob loads the job and enforces the ownership relation for the
// session, with the admin bypass.
func (s *JobService) ownedJob(ctx context.Context, sess *auth.Session, id uuid.UUID) (*domain.JobRow, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query job: %w", err)
	}
	if job == nil {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	if !canManage(sess, job) {
		return nil, fmt.Errorf("job %s: %w", id, ErrForbidden)
	}
	return job, nil
}
