package handlers

import (
	"errors"
	"net/http"

	contentRepo "atelier/database/repository/content"
	"atelier/models"
	"atelier/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves public portfolio content and the admin CMS surface.
type ContentHandler struct {
	Svc content.ContentService
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc content.ContentService) *ContentHandler {
	return &ContentHandler{Svc: svc}
}

// ListProjectsHandler returns published projects.
func (h *ContentHandler) ListProjectsHandler(c *gin.Context) {
	logger := getLogger(c)

	projects, err := h.Svc.PublicProjects(c.Request.Context())
	if err != nil {
		logger.Error("failed to list projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
}

// GetProjectHandler returns one published project by slug.
func (h *ContentHandler) GetProjectHandler(c *gin.Context) {
	p, err := h.Svc.GetProject(c.Request.Context(), c.Param("slug"))
	if err != nil || !p.Published || p.MemberOnly {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

// ListTestimonialsHandler returns published testimonials.
func (h *ContentHandler) ListTestimonialsHandler(c *gin.Context) {
	logger := getLogger(c)

	testimonials, err := h.Svc.PublicTestimonials(c.Request.Context())
	if err != nil {
		logger.Error("failed to list testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not list testimonials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "testimonials": testimonials})
}

// AdminListProjectsHandler returns every project, drafts included.
func (h *ContentHandler) AdminListProjectsHandler(c *gin.Context) {
	logger := getLogger(c)

	projects, err := h.Svc.AllProjects(c.Request.Context())
	if err != nil {
		logger.Error("failed to list projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
}

// CreateProjectHandler creates a project entry.
func (h *ContentHandler) CreateProjectHandler(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	err := h.Svc.CreateProject(c.Request.Context(), p)
	switch {
	case errors.Is(err, content.ErrInvalidProject):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, contentRepo.ErrDuplicateSlug):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Slug already exists"})
	case err != nil:
		getLogger(c).Error("failed to create project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not create project"})
	default:
		c.JSON(http.StatusCreated, gin.H{"success": true})
	}
}

// UpdateProjectHandler replaces a project by slug.
func (h *ContentHandler) UpdateProjectHandler(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	err := h.Svc.UpdateProject(c.Request.Context(), c.Param("slug"), p)
	switch {
	case errors.Is(err, content.ErrInvalidProject):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, contentRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
	case err != nil:
		getLogger(c).Error("failed to update project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not update project"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DeleteProjectHandler removes a project by slug.
func (h *ContentHandler) DeleteProjectHandler(c *gin.Context) {
	err := h.Svc.DeleteProject(c.Request.Context(), c.Param("slug"))
	switch {
	case errors.Is(err, contentRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
	case err != nil:
		getLogger(c).Error("failed to delete project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not delete project"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// AdminListTestimonialsHandler returns all testimonials.
func (h *ContentHandler) AdminListTestimonialsHandler(c *gin.Context) {
	logger := getLogger(c)

	testimonials, err := h.Svc.AllTestimonials(c.Request.Context())
	if err != nil {
		logger.Error("failed to list testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not list testimonials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "testimonials": testimonials})
}

// CreateTestimonialHandler creates a testimonial.
func (h *ContentHandler) CreateTestimonialHandler(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	id, err := h.Svc.CreateTestimonial(c.Request.Context(), t)
	switch {
	case errors.Is(err, content.ErrInvalidTestimonial):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case err != nil:
		getLogger(c).Error("failed to create testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not create testimonial"})
	default:
		c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
	}
}

// DeleteTestimonialHandler removes a testimonial by ID.
func (h *ContentHandler) DeleteTestimonialHandler(c *gin.Context) {
	err := h.Svc.DeleteTestimonial(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, contentRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Testimonial not found"})
	case err != nil:
		getLogger(c).Error("failed to delete testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not delete testimonial"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
