package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	logicv1 "github.com/tawzeef/tawzeef/internal/logic/v1"
)

// TaxonomyHandler serves the static bilingual lookup lists used by
// search filters and posting forms.
type TaxonomyHandler struct {
	taxonomy *logicv1.TaxonomyService
}

// NewTaxonomyHandler creates a TaxonomyHandler.
func NewTaxonomyHandler(taxonomy *logicv1.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomy: taxonomy}
}

// RegisterRoutes registers the lookup routes on rg.
func (h *TaxonomyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/taxonomy/categories", h.Categories)
	rg.GET("/taxonomy/job-types", h.JobTypes)
	rg.GET("/taxonomy/cities", h.Cities)
}

func (h *TaxonomyHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.taxonomy.Categories()})
}

func (h *TaxonomyHandler) JobTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"job_types": h.taxonomy.JobTypes()})
}

func (h *TaxonomyHandler) Cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": h.taxonomy.Cities()})
}
