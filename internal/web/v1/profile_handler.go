package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tawzeef/tawzeef/internal/auth"
	"github.com/tawzeef/tawzeef/internal/core/domain"
	logicv1 "github.com/tawzeef/tawzeef/internal/logic/v1"
	"github.com/tawzeef/tawzeef/middleware"
)

// ProfileHandler serves the calling principal's own profile. The
// response and accepted body are shaped by the session role.
type ProfileHandler struct {
	profiles *logicv1.ProfileService
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles *logicv1.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// RegisterRoutes registers the profile routes behind the
// any-authenticated guard; the handlers branch on role themselves.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, guard *middleware.Guard) {
	rg.GET("/profile", guard.RequireAuth(), h.Get)
	rg.PUT("/profile", guard.RequireAuth(), h.Update)
}

// Get returns the role-matching profile of the caller.
func (h *ProfileHandler) Get(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	switch sess.Role {
	case auth.RoleEmployer:
		row, err := h.profiles.GetEmployer(c.Request.Context(), sess)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
	case auth.RoleCandidate:
		row, err := h.profiles.GetCandidate(c.Request.Context(), sess)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
	default:
		// Admins have no profile row.
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	}
}

// Update replaces the role-matching profile of the caller.
func (h *ProfileHandler) Update(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	switch sess.Role {
	case auth.RoleEmployer:
		var input domain.EmployerProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		row, err := h.profiles.UpdateEmployer(c.Request.Context(), sess, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
	case auth.RoleCandidate:
		var input domain.CandidateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		row, err := h.profiles.UpdateCandidate(c.Request.Context(), sess, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	}
}
