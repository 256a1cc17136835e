package v1

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tawzeef/tawzeef/internal/auth"
	"github.com/tawzeef/tawzeef/internal/core/domain"
	"github.com/tawzeef/tawzeef/internal/logger"
	"github.com/tawzeef/tawzeef/internal/mailer"
	"github.com/tawzeef/tawzeef/middleware"
)

// legal application status transitions. REJECTED and HIRED are
// terminal.
var applicationTransitions = map[string][]string{
	domain.ApplicationPending:     {domain.ApplicationReviewed, domain.ApplicationShortlisted, domain.ApplicationRejected},
	domain.ApplicationReviewed:    {domain.ApplicationShortlisted, domain.ApplicationRejected},
	domain.ApplicationShortlisted: {domain.ApplicationRejected, domain.ApplicationHired},
}

func transitionAllowed(from, to string) bool {
	for _, t := range applicationTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ApplicationService implements the applications workflow. Employers
// only ever see applications for jobs they own; candidates only their
// own applications; ADMIN bypasses both restrictions.
type ApplicationService struct {
	applications domain.ApplicationRepository
	jobs         domain.JobRepository
	users        domain.UserRepository
	mail         mailer.Sender
}

// NewApplicationService creates an ApplicationService.
func NewApplicationService(
	applications domain.ApplicationRepository,
	jobs domain.JobRepository,
	users domain.UserRepository,
	mail mailer.Sender,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		users:        users,
		mail:         mail,
	}
}

// Apply submits the calling candidate's application to an open,
// approved job. Duplicate applications are rejected. The owning
// employer is notified by mail, best-effort.
func (s *ApplicationService) Apply(ctx context.Context, sess *auth.Session, jobID uuid.UUID, req domain.ApplyRequest) (*domain.ApplicationRow, error) {
	ctx, span := middleware.StartSpan(ctx, "applications.apply", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("job.id", jobID.String()),
	))
	defer span.End()

	candidateID, err := principalID(sess)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query job: %w", err)
	}
	if job == nil {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	if job.Status != domain.JobStatusOpen || !job.Approved {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrJobNotOpen)
	}

	exists, err := s.applications.ExistsByJobAndCandidate(ctx, jobID, candidateID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("check duplicate application: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("apply to job %s: %w", jobID, ErrAlreadyApplied)
	}

	id, err := s.applications.Create(ctx, jobID, candidateID, req.CoverLetter)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert application: %w", err)
	}

	s.notifyEmployer(ctx, job, sess.DisplayName)

	span.SetAttributes(attribute.String("application.id", id.String()))
	return &domain.ApplicationRow{
		ID:          id,
		JobID:       jobID,
		CandidateID: candidateID,
		CoverLetter: req.CoverLetter,
		Status:      domain.ApplicationPending,
	}, nil
}

// notifyEmployer mails the job owner about a new application.
// Failures are logged and swallowed; the application stands either way.
func (s *ApplicationService) notifyEmployer(ctx context.Context, job *domain.JobRow, candidateName string) {
	owner, err := s.users.GetByID(ctx, job.EmployerID)
	if err != nil || owner == nil {
		logger.FromContext(ctx).Warn().Err(err).Str("employer_id", job.EmployerID.String()).
			Msg("Could not resolve employer for application notification")
		return
	}

	subject := "New application: " + job.TitleEn
	body := fmt.Sprintf("%s applied to your job posting %q.", candidateName, job.TitleEn)
	if err := s.mail.Send(ctx, owner.Email, subject, body); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("Application notification failed")
	}
}

// ListOwn returns the calling candidate's applications.
func (s *ApplicationService) ListOwn(ctx context.Context, sess *auth.Session) ([]domain.ApplicationRow, error) {
	ctx, span := middleware.StartSpan(ctx, "applications.list_own", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	candidateID, err := principalID(sess)
	if err != nil {
		return nil, err
	}

	apps, err := s.applications.ListByCandidate(ctx, candidateID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// ListForJob returns a job's applications for its owner (or an admin).
func (s *ApplicationService) ListForJob(ctx context.Context, sess *auth.Session, jobID uuid.UUID) ([]domain.ApplicationRow, error) {
	ctx, span := middleware.StartSpan(ctx, "applications.list_for_job", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("job.id", jobID.String()),
	))
	defer span.End()

	if _, err := s.ownedJob(ctx, sess, jobID); err != nil {
		return nil, err
	}

	apps, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus advances an application through the workflow. Only the
// owner of the application's job (or an admin) may do so, and only
// along a legal transition.
func (s *ApplicationService) UpdateStatus(ctx context.Context, sess *auth.Session, id uuid.UUID, status string) (*domain.ApplicationRow, error) {
	ctx, span := middleware.StartSpan(ctx, "applications.update_status", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("application.status", status),
	))
	defer span.End()

	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query application: %w", err)
	}
	if app == nil {
		return nil, fmt.Errorf("application %s: %w", id, ErrNotFound)
	}

	if _, err := s.ownedJob(ctx, sess, app.JobID); err != nil {
		return nil, err
	}

	if !transitionAllowed(app.Status, status) {
		return nil, fmt.Errorf("application %s: %s -> %s: %w", id, app.Status, status, ErrInvalidTransition)
	}

	if err := s.applications.UpdateStatus(ctx, id, status); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update application status: %w", err)
	}

	app.Status = status
	return app, nil
}

func (s *ApplicationService) ownedJob(ctx context.Context, sess *auth.Session, jobID uuid.UUID) (*domain.JobRow, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("query job: %w", err)
	}
	if job == nil {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	if !canManage(sess, job) {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrForbidden)
	}
	return job, nil
}
