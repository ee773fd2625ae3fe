package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/shared/response"
)

const maxImageBytes = 10 << 20 // 10 MiB

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListPublished returns the public projects in display order
// GET /api/v1/projects
func (h *ProjectHandler) ListPublished(c *gin.Context) {
	projects, err := h.projectService.ListPublished(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, projects)
}

// GetBySlug returns one published project
// GET /api/v1/projects/:slug
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	p, err := h.projectService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// ListAll returns every project for the dashboard
// GET /api/v1/admin/projects
func (h *ProjectHandler) ListAll(c *gin.Context) {
	projects, err := h.projectService.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, projects)
}

// Create adds a new project
// POST /api/v1/admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req model.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// Update replaces a project's fields
// PUT /api/v1/admin/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project ID")
		return
	}

	var req model.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.projectService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Delete removes a project
// DELETE /api/v1/admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project ID")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// UploadImage stores a new cover image
// POST /api/v1/admin/projects/:id/image
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file upload")
		return
	}

	if fileHeader.Size > maxImageBytes {
		response.BadRequest(c, "file too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "failed to read upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		response.InternalServerError(c, "failed to read upload")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.projectService.UploadImage(c.Request.Context(), id, data, contentType)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url})
}

func (h *ProjectHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrProjectNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrSlugTaken):
		response.Conflict(c, err.Error())
	default:
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", vErrs)
			return
		}
		response.InternalServerError(c, "operation failed")
	}
}
