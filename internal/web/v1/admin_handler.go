package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tawzeef/tawzeef/internal/logger"
	logicv1 "github.com/tawzeef/tawzeef/internal/logic/v1"
)

// AdminHandler covers user moderation and job approval.
type AdminHandler struct {
	admin *logicv1.AdminService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(admin *logicv1.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// RegisterRoutes registers the moderation routes on the admin group.
func (h *AdminHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", h.ListUsers)
	admin.PUT("/users/:id/active", h.SetUserActive)
	admin.POST("/jobs/:id/approve", h.ApproveJob)
}

// ListUsers returns every account on the platform.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// SetUserActive enables or disables an account.
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.admin.SetUserActive(c.Request.Context(), id, *req.Active); err != nil {
		respondError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info().
		Str("user_id", id.String()).
		Bool("active", *req.Active).
		Msg("user activation changed")

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// ApproveJob marks a posting as reviewed and visible to the public.
func (h *AdminHandler) ApproveJob(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.admin.ApproveJob(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info().
		Str("job_id", id.String()).
		Msg("job approved")

	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}
