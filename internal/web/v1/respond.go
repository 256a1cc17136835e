// Package v1 exposes the HTTP handlers for API version 1. Handlers
// bind input, delegate to the logic layer and translate sentinel
// errors into statuses; they never touch storage directly.
package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tawzeef/tawzeef/internal/logger"
	logicv1 "github.com/tawzeef/tawzeef/internal/logic/v1"
)

// respondError maps a logic-layer error onto its HTTP status. The
// mapping lives in one place so every resource handler fails the same
// way. 401 and 403 stay distinct: "please authenticate" and
// "authenticated but not allowed" are different client decisions.
func respondError(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Warn().Err(err).Msg("Request failed")

	switch {
	case errors.Is(err, logicv1.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, logicv1.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": "Account disabled"})
	case errors.Is(err, logicv1.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, logicv1.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, logicv1.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, logicv1.ErrAlreadyApplied):
		c.JSON(http.StatusConflict, gin.H{"error": "Already applied to this job"})
	case errors.Is(err, logicv1.ErrJobNotOpen):
		c.JSON(http.StatusConflict, gin.H{"error": "Job is not accepting applications"})
	case errors.Is(err, logicv1.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status change"})
	case errors.Is(err, logicv1.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
	case errors.Is(err, logicv1.ErrUnknownTerm):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown taxonomy term"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathUUID parses a :param as a UUID, answering 400 itself on failure.
// The bool reports whether the handler should continue.
func pathUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return uuid.Nil, false
	}
	return id, true
}
