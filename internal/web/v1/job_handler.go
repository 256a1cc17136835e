package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tawzeef/tawzeef/internal/core/domain"
	logicv1 "github.com/tawzeef/tawzeef/internal/logic/v1"
	"github.com/tawzeef/tawzeef/middleware"
)

// JobHandler serves the public job search and the employer-side job
// management endpoints.
type JobHandler struct {
	jobs *logicv1.JobService
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(jobs *logicv1.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// RegisterRoutes registers public and employer job routes.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, guard *middleware.Guard) {
	rg.GET("/jobs", h.Search)
	rg.GET("/jobs/:id", guard.WithSession(), h.Get)

	employer := rg.Group("", guard.RequireEmployer())
	employer.POST("/jobs", h.Create)
	employer.PUT("/jobs/:id", h.Update)
	employer.DELETE("/jobs/:id", h.Delete)
	employer.POST("/jobs/:id/close", h.Close)
	employer.GET("/employer/jobs", h.ListOwn)
}

// Search lists publicly visible jobs with filters and paging.
func (h *JobHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	filter := domain.JobFilter{
		Keyword:  c.Query("q"),
		Category: c.Query("category"),
		JobType:  c.Query("job_type"),
		City:     c.Query("city"),
		Page:     page,
		PerPage:  perPage,
	}

	jobs, total, err := h.jobs.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": total, "page": page})
}

// Get returns one job. A nil session is fine here: the logic layer
// hides unpublished jobs from anonymous readers.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobs.Get(c.Request.Context(), middleware.SessionFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create inserts a job owned by the calling employer.
func (h *JobHandler) Create(c *gin.Context) {
	var input domain.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), middleware.SessionFromContext(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update replaces a job's posting fields.
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input domain.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), middleware.SessionFromContext(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Close stops the job from accepting applications.
func (h *JobHandler) Close(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.jobs.Close(c.Request.Context(), middleware.SessionFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

// Delete removes the job and its applications.
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), middleware.SessionFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListOwn returns every job owned by the calling employer.
func (h *JobHandler) ListOwn(c *gin.Context) {
	jobs, err := h.jobs.ListOwn(c.Request.Context(), middleware.SessionFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
