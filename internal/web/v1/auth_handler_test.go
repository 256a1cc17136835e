package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawzeef/tawzeef/internal/auth"
	"github.com/tawzeef/tawzeef/internal/core/domain"
	logicv1 "github.com/tawzeef/tawzeef/internal/logic/v1"
	"github.com/tawzeef/tawzeef/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.UserRow
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*domain.UserRow)}
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.UserRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(ctx, email)
	return u != nil, nil
}

func (r *memUserRepo) Create(ctx context.Context, role, name, email, passwordHash string) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.users[id] = &domain.UserRow{
		ID: id, Role: role, Name: name, Email: email,
		PasswordHash: passwordHash, Active: true, CreatedAt: time.Now(),
	}
	return id, nil
}

func (r *memUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memUserRepo) List(ctx context.Context) ([]domain.UserRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.UserRow, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.Active = active
	}
	return nil
}

type memEmployerRepo struct{}

func (memEmployerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.EmployerRow, error) {
	return nil, nil
}
func (memEmployerRepo) Create(ctx context.Context, userID uuid.UUID) error { return nil }
func (memEmployerRepo) Update(ctx context.Context, row *domain.EmployerRow) error { return nil }

type memCandidateRepo struct{}

func (memCandidateRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateRow, error) {
	return nil, nil
}
func (memCandidateRepo) Create(ctx context.Context, userID uuid.UUID) error { return nil }
func (memCandidateRepo) Update(ctx context.Context, row *domain.CandidateRow) error { return nil }

// newAuthRouter wires the auth routes against in-memory storage, the
// way main does against postgres.
func newAuthRouter(t *testing.T, loginLimit int) *gin.Engine {
	t.Helper()

	codec := auth.NewCodec("test-secret-key-0123456789abcdef", 7*24*time.Hour)
	guard := middleware.NewGuard(codec)
	limiter := middleware.NewRateLimiter(loginLimit, time.Minute)

	svc := logicv1.NewAuthService(newMemUserRepo(), memEmployerRepo{}, memCandidateRepo{}, codec, "", "")

	r := gin.New()
	api := r.Group("/api/v1")
	NewAuthHandler(svc, 7*24*time.Hour, false).RegisterRoutes(api, guard, limiter.Middleware())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	return nil
}

func TestRegisterLoginMeFlow(t *testing.T) {
	r := newAuthRouter(t, 100)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Sara","email":"sara@example.com","password":"supersecret","role":"CANDIDATE"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie, "registration must set the session cookie")
	assert.True(t, cookie.HttpOnly)

	// The cookie authenticates subsequent requests.
	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var me domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "sara@example.com", me.Email)
	assert.Equal(t, "CANDIDATE", me.Role)

	// Fresh login with the same credentials.
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login",
		`{"email":"sara@example.com","password":"supersecret"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, sessionCookie(w.Result()))
}

func TestMeWithoutSession(t *testing.T) {
	r := newAuthRouter(t, 100)

	w := doJSON(t, r, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := newAuthRouter(t, 100)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Omar","email":"omar@example.com","password":"supersecret","role":"EMPLOYER"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login",
		`{"email":"omar@example.com","password":"wrong-password"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, sessionCookie(w.Result()))
}

func TestRegisterValidation(t *testing.T) {
	r := newAuthRouter(t, 100)

	cases := []struct {
		name string
		body string
	}{
		{"short password", `{"name":"X","email":"x@example.com","password":"short","role":"CANDIDATE"}`},
		{"bad role", `{"name":"X","email":"x@example.com","password":"supersecret","role":"ADMIN"}`},
		{"bad email", `{"name":"X","email":"not-an-email","password":"supersecret","role":"CANDIDATE"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", tc.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginRateLimit(t *testing.T) {
	r := newAuthRouter(t, 3)

	body := `{"email":"nobody@example.com","password":"whatever1"}`
	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", body, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newAuthRouter(t, 100)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
