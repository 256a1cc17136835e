package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tawzeef/tawzeef/internal/core/domain"
	logicv1 "github.com/tawzeef/tawzeef/internal/logic/v1"
)

// ContentHandler serves the public CMS reads (pages, blog) and the
// admin-only CMS and settings writes.
type ContentHandler struct {
	content *logicv1.ContentService
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(content *logicv1.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// RegisterRoutes registers the public reads on rg and the writes on
// the admin group.
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup) {
	rg.GET("/pages/:slug", h.GetPage)
	rg.GET("/posts", h.ListPublishedPosts)
	rg.GET("/posts/:slug", h.GetPost)

	admin.GET("/pages", h.ListPages)
	admin.PUT("/pages/:slug", h.UpsertPage)
	admin.GET("/posts", h.ListAllPosts)
	admin.POST("/posts", h.CreatePost)
	admin.PUT("/posts/:id", h.UpdatePost)
	admin.DELETE("/posts/:id", h.DeletePost)
	admin.GET("/settings", h.GetSettings)
	admin.PUT("/settings", h.SetSetting)
}

// GetPage returns one CMS page by slug.
func (h *ContentHandler) GetPage(c *gin.Context) {
	page, err := h.content.GetPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListPages returns all CMS pages (admin).
func (h *ContentHandler) ListPages(c *gin.Context) {
	pages, err := h.content.ListPages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// UpsertPage creates or replaces a CMS page (admin).
func (h *ContentHandler) UpsertPage(c *gin.Context) {
	var input domain.PageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.content.UpsertPage(c.Request.Context(), c.Param("slug"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListPublishedPosts returns the public blog listing.
func (h *ContentHandler) ListPublishedPosts(c *gin.Context) {
	posts, err := h.content.ListPosts(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ListAllPosts returns all posts including drafts (admin).
func (h *ContentHandler) ListAllPosts(c *gin.Context) {
	posts, err := h.content.ListPosts(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost returns one published post by slug.
func (h *ContentHandler) GetPost(c *gin.Context) {
	post, err := h.content.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost inserts a blog post (admin).
func (h *ContentHandler) CreatePost(c *gin.Context) {
	var input domain.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.content.CreatePost(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost replaces a post's fields (admin).
func (h *ContentHandler) UpdatePost(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input domain.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.content.UpdatePost(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post (admin).
func (h *ContentHandler) DeletePost(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.content.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetSettings returns the site settings table (admin).
func (h *ContentHandler) GetSettings(c *gin.Context) {
	settings, err := h.content.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// SetSetting upserts one settings key (admin).
func (h *ContentHandler) SetSetting(c *gin.Context) {
	var input domain.SettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.content.SetSetting(c.Request.Context(), input.Key, input.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
