package v1

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawzeef/tawzeef/internal/auth"
	"github.com/tawzeef/tawzeef/internal/core/domain"
)

func employerSession(id uuid.UUID) *auth.Session {
	return &auth.Session{Subject: id.String(), Role: auth.RoleEmployer, DisplayName: "Emp", Email: "e@x.com"}
}

func adminSession() *auth.Session {
	return &auth.Session{Subject: auth.SuperuserSubject, Role: auth.RoleAdmin, DisplayName: "Admin", Email: "admin@x.com"}
}

var testJobInput = domain.JobInput{
	TitleAr: "مهندس برمجيات", TitleEn: "Software Engineer",
	Category: "it", JobType: "full_time", City: "cairo",
	Publish: true,
}

func TestJobCreateAndVisibility(t *testing.T) {
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, NewTaxonomyService())
	ctx := context.Background()

	owner := uuid.New()
	created, err := svc.Create(ctx, employerSession(owner), testJobInput)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusOpen, created.Status)
	assert.False(t, created.Approved, "new jobs need moderation")

	// Unapproved jobs are not publicly searchable.
	results, total, err := svc.Search(ctx, domain.JobFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, results)

	// Anonymous readers get not-found for unapproved jobs; the owner
	// and admins can see them.
	_, err = svc.Get(ctx, nil, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(ctx, employerSession(owner), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, adminSession(), created.ID)
	assert.NoError(t, err)

	// Approval makes it public.
	require.NoError(t, jobs.SetApproved(ctx, created.ID, true))
	_, total, err = svc.Search(ctx, domain.JobFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestJobOwnership(t *testing.T) {
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, NewTaxonomyService())
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()

	created, err := svc.Create(ctx, employerSession(owner), testJobInput)
	require.NoError(t, err)

	update := testJobInput
	update.TitleEn = "Senior Software Engineer"

	// A different employer cannot touch the job.
	_, err = svc.Update(ctx, employerSession(other), created.ID, update)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Close(ctx, employerSession(other), created.ID), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, employerSession(other), created.ID), ErrForbidden)

	// The owner can.
	updated, err := svc.Update(ctx, employerSession(owner), created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Senior Software Engineer", updated.TitleEn)

	// Admin bypasses ownership.
	_, err = svc.Update(ctx, adminSession(), created.ID, update)
	assert.NoError(t, err)
	assert.NoError(t, svc.Close(ctx, adminSession(), created.ID))

	closed, err := jobs.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusClosed, closed.Status)
}

func TestJobCreateRequiresUserRow(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), NewTaxonomyService())

	// The superuser has no user row to own a job.
	_, err := svc.Create(context.Background(), adminSession(), testJobInput)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestJobCreateRejectsUnknownTerms(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), NewTaxonomyService())
	ctx := context.Background()
	owner := uuid.New()

	cases := []struct {
		name   string
		mutate func(*domain.JobInput)
	}{
		{"category", func(in *domain.JobInput) { in.Category = "quantum" }},
		{"job type", func(in *domain.JobInput) { in.JobType = "gig" }},
		{"city", func(in *domain.JobInput) { in.City = "atlantis" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := testJobInput
			tc.mutate(&input)
			_, err := svc.Create(ctx, employerSession(owner), input)
			assert.ErrorIs(t, err, ErrUnknownTerm)
		})
	}
}

func TestJobListOwn(t *testing.T) {
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, NewTaxonomyService())
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()

	_, err := svc.Create(ctx, employerSession(owner), testJobInput)
	require.NoError(t, err)
	_, err = svc.Create(ctx, employerSession(other), testJobInput)
	require.NoError(t, err)

	own, err := svc.ListOwn(ctx, employerSession(owner))
	require.NoError(t, err)
	assert.Len(t, own, 1)
}
