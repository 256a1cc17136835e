package v1

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tawzeef/tawzeef/internal/core/domain"
	"github.com/tawzeef/tawzeef/middleware"
)

// AdminService implements admin-only operations on users and job
// moderation. Role enforcement happens at the route guard; these
// methods assume an ADMIN caller.
type AdminService struct {
	users domain.UserRepository
	jobs  domain.JobRepository
}

// NewAdminService creates an AdminService.
func NewAdminService(users domain.UserRepository, jobs domain.JobRepository) *AdminService {
	return &AdminService{users: users, jobs: jobs}
}

// ListUsers returns every user as the public shape, newest first.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "admin.list_users", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	rows, err := s.users.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, domain.User{
			ID:    r.ID.String(),
			Role:  r.Role,
			Name:  r.Name,
			Email: r.Email,
		})
	}
	return users, nil
}

// SetUserActive activates or deactivates an account. Disabled
// accounts cannot log in; their outstanding sessions stay valid until
// expiry because sessions are stateless.
func (s *AdminService) SetUserActive(ctx context.Context, id uuid.UUID, active bool) error {
	ctx, span := middleware.StartSpan(ctx, "admin.set_user_active", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Bool("user.active", active),
	))
	defer span.End()

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("query user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	if err := s.users.SetActive(ctx, id, active); err != nil {
		span.RecordError(err)
		return fmt.Errorf("set user active: %w", err)
	}
	return nil
}

// ApproveJob marks a job as moderated, making it publicly visible
// once its status is OPEN.
func (s *AdminService) ApproveJob(ctx context.Context, id uuid.UUID) error {
	ctx, span := middleware.StartSpan(ctx, "admin.approve_job", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("job.id", id.String()),
	))
	defer span.End()

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("query job: %w", err)
	}
	if job == nil {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}

	if err := s.jobs.SetApproved(ctx, id, true); err != nil {
		span.RecordError(err)
		return fmt.Errorf("approve job: %w", err)
	}
	return nil
}
