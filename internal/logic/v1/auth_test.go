package v1

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tawzeef/tawzeef/internal/auth"
	"github.com/tawzeef/tawzeef/internal/core/domain"
)

func testAuthService(t *testing.T) (*AuthService, *fakeUserRepo, *fakeEmployerRepo, *fakeCandidateRepo) {
	t.Helper()
	users := newFakeUserRepo()
	employers := newFakeEmployerRepo()
	candidates := newFakeCandidateRepo()
	codec := auth.NewCodec("logic-test-secret", 7*24*time.Hour)
	svc := NewAuthService(users, employers, candidates, codec, "boss@tawzeef.example", "root-pass")
	return svc, users, employers, candidates
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, employers, candidates := testAuthService(t)
	ctx := context.Background()

	resp, token, err := svc.Register(ctx, domain.RegisterRequest{
		Name: "Amr", Email: "a@x.com", Password: "password1", Role: "CANDIDATE",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "CANDIDATE", resp.User.Role)
	assert.Equal(t, "Amr", resp.User.Name)

	// Registration created the role-matching profile row.
	assert.Len(t, candidates.profiles, 1)
	assert.Empty(t, employers.profiles)

	// The same email cannot register twice.
	_, _, err = svc.Register(ctx, domain.RegisterRequest{
		Name: "Amr2", Email: "a@x.com", Password: "password1", Role: "EMPLOYER",
	})
	assert.ErrorIs(t, err, ErrUserExists)

	// Login round-trips the credentials.
	loginResp, loginToken, err := svc.Login(ctx, domain.LoginRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, resp.User.ID, loginResp.User.ID)
}

func TestLoginFailures(t *testing.T) {
	svc, users, _, _ := testAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	id := users.add("EMPLOYER", "Sara", "s@x.com", string(hash))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"wrong password", "s@x.com", "wrong", ErrInvalidCredentials},
		{"unknown user", "nobody@x.com", "whatever", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, domain.LoginRequest{Email: tt.email, Password: tt.password})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("disabled account", func(t *testing.T) {
		require.NoError(t, users.SetActive(ctx, id, false))
		_, _, err := svc.Login(ctx, domain.LoginRequest{Email: "s@x.com", Password: "correct-pass"})
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})
}

func TestSuperuserLogin(t *testing.T) {
	svc, _, _, _ := testAuthService(t)
	ctx := context.Background()

	resp, token, err := svc.Login(ctx, domain.LoginRequest{
		Email: "boss@tawzeef.example", Password: "root-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Superuser sessions use the sentinel subject and ADMIN role
	// without any backing user row.
	assert.Equal(t, auth.SuperuserSubject, resp.User.ID)
	assert.Equal(t, "ADMIN", resp.User.Role)

	// Wrong superuser password falls through to the (empty) user
	// table and fails like any bad credential.
	_, _, err = svc.Login(ctx, domain.LoginRequest{
		Email: "boss@tawzeef.example", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSuperuserDisabledWhenUnconfigured(t *testing.T) {
	users := newFakeUserRepo()
	codec := auth.NewCodec("logic-test-secret", 7*24*time.Hour)
	svc := NewAuthService(users, newFakeEmployerRepo(), newFakeCandidateRepo(), codec, "", "")

	_, _, err := svc.Login(context.Background(), domain.LoginRequest{Email: "", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	svc, _, _, _ := testAuthService(t)

	sess := &auth.Session{Subject: "u1", Role: auth.RoleCandidate, DisplayName: "Amr", Email: "a@x.com"}
	u := svc.CurrentUser(sess)

	assert.Equal(t, domain.User{ID: "u1", Role: "CANDIDATE", Name: "Amr", Email: "a@x.com"}, u)
}
