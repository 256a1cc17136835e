package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tawzeef/tawzeef/internal/core/domain"
	logicv1 "github.com/tawzeef/tawzeef/internal/logic/v1"
	"github.com/tawzeef/tawzeef/middleware"
)

// ApplicationHandler serves the applications workflow: candidates
// apply and list their own applications; employers review and advance
// applications for jobs they own.
type ApplicationHandler struct {
	applications *logicv1.ApplicationService
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(applications *logicv1.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// RegisterRoutes registers candidate- and employer-side routes.
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, guard *middleware.Guard) {
	candidate := rg.Group("", guard.RequireCandidate())
	candidate.POST("/jobs/:id/apply", h.Apply)
	candidate.GET("/applications", h.ListOwn)

	employer := rg.Group("", guard.RequireEmployer())
	employer.GET("/jobs/:id/applications", h.ListForJob)
	employer.PUT("/applications/:id/status", h.UpdateStatus)
}

// Apply submits the calling candidate's application to the job.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	// The cover letter is optional; an empty body is a valid apply.
	var req domain.ApplyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	app, err := h.applications.Apply(c.Request.Context(), middleware.SessionFromContext(c), jobID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListOwn returns the calling candidate's applications.
func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	apps, err := h.applications.ListOwn(c.Request.Context(), middleware.SessionFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListForJob returns a job's applications for its owner.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	apps, err := h.applications.ListForJob(c.Request.Context(), middleware.SessionFromContext(c), jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// UpdateStatus advances an application through the workflow.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req domain.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applications.UpdateStatus(c.Request.Context(), middleware.SessionFromContext(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
