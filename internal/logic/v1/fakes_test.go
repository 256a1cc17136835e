package v1

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tawzeef/tawzeef/internal/core/domain"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.UserRow
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.UserRow)}
}

func (f *fakeUserRepo) add(role, name, email, hash string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.users[id] = &domain.UserRow{
		ID: id, Role: role, Name: name, Email: email,
		PasswordHash: hash, Active: true, CreatedAt: time.Now(),
	}
	return id
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.UserRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.UserRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := f.GetByEmail(ctx, email)
	return u != nil, err
}

func (f *fakeUserRepo) Create(_ context.Context, role, name, email, hash string) (uuid.UUID, error) {
	return f.add(role, name, email, hash), nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		now := time.Now()
		u.LastLogin = &now
	}
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.UserRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.UserRow
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.Active = active
	}
	return nil
}

type fakeEmployerRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*domain.EmployerRow
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{profiles: make(map[uuid.UUID]*domain.EmployerRow)}
}

func (f *fakeEmployerRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.EmployerRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeEmployerRepo) Create(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[userID] = &domain.EmployerRow{UserID: userID}
	return nil
}

func (f *fakeEmployerRepo) Update(_ context.Context, row *domain.EmployerRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *row
	f.profiles[row.UserID] = &cp
	return nil
}

type fakeCandidateRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*domain.CandidateRow
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{profiles: make(map[uuid.UUID]*domain.CandidateRow)}
}

func (f *fakeCandidateRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.CandidateRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCandidateRepo) Create(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[userID] = &domain.CandidateRow{UserID: userID}
	return nil
}

func (f *fakeCandidateRepo) Update(_ context.Context, row *domain.CandidateRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *row
	f.profiles[row.UserID] = &cp
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*domain.JobRow
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*domain.JobRow)}
}

func (f *fakeJobRepo) Search(_ context.Context, filter domain.JobFilter) ([]domain.JobRow, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.JobRow
	for _, j := range f.jobs {
		if j.Status != domain.JobStatusOpen || !j.Approved {
			continue
		}
		if filter.Category != "" && j.Category != filter.Category {
			continue
		}
		if filter.City != "" && j.City != filter.City {
			continue
		}
		if filter.JobType != "" && j.JobType != filter.JobType {
			continue
		}
		out = append(out, *j)
	}
	return out, len(out), nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.JobRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j, ok := f.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeJobRepo) ListByEmployer(_ context.Context, employerID uuid.UUID) ([]domain.JobRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.JobRow
	for _, j := range f.jobs {
		if j.EmployerID == employerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Create(_ context.Context, row *domain.JobRow) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	cp := *row
	cp.ID = id
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.jobs[id] = &cp
	return id, nil
}

func (f *fakeJobRepo) Update(_ context.Context, row *domain.JobRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *row
	f.jobs[row.ID] = &cp
	return nil
}

func (f *fakeJobRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j, ok := f.jobs[id]; ok {
		j.Status = status
	}
	return nil
}

func (f *fakeJobRepo) SetApproved(_ context.Context, id uuid.UUID, approved bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j, ok := f.jobs[id]; ok {
		j.Approved = approved
	}
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[uuid.UUID]*domain.ApplicationRow
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[uuid.UUID]*domain.ApplicationRow)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, jobID, candidateID uuid.UUID, coverLetter string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.apps[id] = &domain.ApplicationRow{
		ID: id, JobID: jobID, CandidateID: candidateID,
		CoverLetter: coverLetter, Status: domain.ApplicationPending,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	return id, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ApplicationRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.apps[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeApplicationRepo) ExistsByJobAndCandidate(_ context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.JobID == jobID && a.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]domain.ApplicationRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ApplicationRow
	for _, a := range f.apps {
		if a.CandidateID == candidateID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]domain.ApplicationRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ApplicationRow
	for _, a := range f.apps {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.apps[id]; ok {
		a.Status = status
	}
	return nil
}

type fakeSender struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeSender) Send(_ context.Context, to, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}
