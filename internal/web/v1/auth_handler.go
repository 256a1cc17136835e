package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tawzeef/tawzeef/internal/auth"
	"github.com/tawzeef/tawzeef/internal/core/domain"
	"github.com/tawzeef/tawzeef/internal/logger"
	logicv1 "github.com/tawzeef/tawzeef/internal/logic/v1"
	"github.com/tawzeef/tawzeef/middleware"
)

// AuthHandler serves registration, login, logout and the current-user
// endpoint. Successful login and registration set the session cookie;
// logout clears it.
type AuthHandler struct {
	auth         *logicv1.AuthService
	cookieTTL    time.Duration
	cookieSecure bool
}

// NewAuthHandler creates an AuthHandler. cookieTTL must match the
// codec's token validity window so the cookie and the token expire
// together.
func NewAuthHandler(svc *logicv1.AuthService, cookieTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: svc, cookieTTL: cookieTTL, cookieSecure: cookieSecure}
}

// RegisterRoutes registers the auth routes. The login route carries
// the rate limiter; /auth/me runs behind the any-authenticated guard.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, guard *middleware.Guard, loginLimit gin.HandlerFunc) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", loginLimit, h.Login)
	rg.POST("/auth/logout", h.Logout)
	rg.GET("/auth/me", guard.RequireAuth(), h.GetMe)
}

// Register handles HTTP request for user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, token, err := h.auth.Register(ctx, req)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	auth.SetCookie(c.Writer, token, h.cookieTTL, h.cookieSecure)

	log.Info().Str("user_id", resp.User.ID).Str("role", resp.User.Role).Msg("Registration successful")
	c.JSON(http.StatusCreated, resp)
}

// Login handles HTTP request for user login.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, token, err := h.auth.Login(ctx, req)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	auth.SetCookie(c.Writer, token, h.cookieTTL, h.cookieSecure)

	log.Info().Str("user_id", resp.User.ID).Msg("Login successful")
	c.JSON(http.StatusOK, resp)
}

// Logout clears the session cookie. There is no server-side session
// state to destroy.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearCookie(c.Writer, h.cookieSecure)
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// GetMe returns the current principal from the verified session.
func (h *AuthHandler) GetMe(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, h.auth.CurrentUser(sess))
}
