package v1

import (
	"context"
	"crypto/subtle"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/tawzeef/tawzeef/internal/auth"
	"github.com/tawzeef/tawzeef/internal/core/domain"
	"github.com/tawzeef/tawzeef/middleware"
)

// AuthService implements registration and login. It depends on
// repository interfaces and the token codec, injected via the
// constructor; it never touches SQL directly.
type AuthService struct {
	users      domain.UserRepository
	employers  domain.EmployerRepository
	candidates domain.CandidateRepository
	codec      *auth.Codec

	// The single superuser bootstrap identity. Empty means disabled.
	superEmail    string
	superPassword string
}

// NewAuthService creates an AuthService. superEmail/superPassword may
// be empty to disable the superuser bootstrap path.
func NewAuthService(
	users domain.UserRepository,
	employers domain.EmployerRepository,
	candidates domain.CandidateRepository,
	codec *auth.Codec,
	superEmail, superPassword string,
) *AuthService {
	return &AuthService{
		users:         users,
		employers:     employers,
		candidates:    candidates,
		codec:         codec,
		superEmail:    superEmail,
		superPassword: superPassword,
	}
}

// Register creates a user with the requested role plus its empty
// profile row, and returns the response together with a session token
// for the new principal.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, string, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("role", req.Role),
	))
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		return nil, "", fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		span.SetAttributes(attribute.Bool("registration.success", false))
		return nil, "", fmt.Errorf("register %q: %w", req.Email, ErrUserExists)
	}

	userID, err := s.users.Create(ctx, req.Role, req.Name, req.Email, string(hash))
	if err != nil {
		span.RecordError(err)
		return nil, "", fmt.Errorf("insert user: %w", err)
	}

	// Every principal owns exactly one profile row for its role.
	switch req.Role {
	case string(auth.RoleEmployer):
		err = s.employers.Create(ctx, userID)
	case string(auth.RoleCandidate):
		err = s.candidates.Create(ctx, userID)
	}
	if err != nil {
		span.RecordError(err)
		return nil, "", fmt.Errorf("create profile: %w", err)
	}

	token, err := s.codec.Issue(auth.Claims{
		Subject:     userID.String(),
		Role:        auth.Role(req.Role),
		DisplayName: req.Name,
		Email:       req.Email,
	})
	if err != nil {
		span.RecordError(err)
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	span.SetAttributes(
		attribute.String("user.id", userID.String()),
		attribute.Bool("registration.success", true),
	)

	return &domain.AuthResponse{User: domain.User{
		ID:    userID.String(),
		Role:  req.Role,
		Name:  req.Name,
		Email: req.Email,
	}}, token, nil
}

// Login verifies credentials and returns a session token. The
// superuser bootstrap identity is checked first and is not backed by
// a user row; everything else goes through the user table and bcrypt.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, string, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if resp, token, ok := s.superuserLogin(req); ok {
		span.SetAttributes(attribute.Bool("auth.superuser", true))
		return resp, token, nil
	}

	row, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		return nil, "", fmt.Errorf("query user: %w", err)
	}
	if row == nil {
		// Same sentinel as a wrong password: login must not reveal
		// whether the account exists.
		span.SetAttributes(attribute.Bool("auth.success", false))
		return nil, "", fmt.Errorf("authenticate %q: %w", req.Email, ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(req.Password)); err != nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		return nil, "", fmt.Errorf("authenticate %q: %w", req.Email, ErrInvalidCredentials)
	}

	if !row.Active {
		span.SetAttributes(attribute.Bool("auth.success", false))
		return nil, "", fmt.Errorf("authenticate %q: %w", req.Email, ErrAccountDisabled)
	}

	// Best-effort; a failed timestamp update never fails login.
	if err := s.users.UpdateLastLogin(ctx, row.ID); err != nil {
		span.RecordError(fmt.Errorf("update last_login: %w", err))
	}

	token, err := s.codec.Issue(auth.Claims{
		Subject:     row.ID.String(),
		Role:        auth.Role(row.Role),
		DisplayName: row.Name,
		Email:       row.Email,
	})
	if err != nil {
		span.RecordError(err)
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	span.SetAttributes(
		attribute.String("user.id", row.ID.String()),
		attribute.Bool("auth.success", true),
	)

	return &domain.AuthResponse{User: domain.User{
		ID:    row.ID.String(),
		Role:  row.Role,
		Name:  row.Name,
		Email: row.Email,
	}}, token, nil
}

// superuserLogin matches the request against the single configured
// bootstrap identity. Exactly one such identity exists; the sentinel
// subject marks sessions not backed by a user row.
func (s *AuthService) superuserLogin(req domain.LoginRequest) (*domain.AuthResponse, string, bool) {
	if s.superEmail == "" {
		return nil, "", false
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.superEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.superPassword)) == 1
	if !emailOK || !passOK {
		return nil, "", false
	}

	token, err := s.codec.Issue(auth.Claims{
		Subject:     auth.SuperuserSubject,
		Role:        auth.RoleAdmin,
		DisplayName: "Administrator",
		Email:       s.superEmail,
	})
	if err != nil {
		return nil, "", false
	}

	return &domain.AuthResponse{User: domain.User{
		ID:    auth.SuperuserSubject,
		Role:  string(auth.RoleAdmin),
		Name:  "Administrator",
		Email: s.superEmail,
	}}, token, true
}

// CurrentUser maps a verified session to the public user shape.
// Embedded name/email may be stale relative to storage until the next
// login; that staleness is accepted.
func (s *AuthService) CurrentUser(sess *auth.Session) domain.User {
	return domain.User{
		ID:    sess.Subject,
		Role:  string(sess.Role),
		Name:  sess.DisplayName,
		Email: sess.Email,
	}
}
