package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/experience/model"
	"portfolio-backend/internal/domains/experience/service"
	"portfolio-backend/internal/shared/response"
)

type ExperienceHandler struct {
	experienceService service.ExperienceService
}

func NewExperienceHandler(experienceService service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		experienceService: experienceService,
	}
}

// List returns the work and education timelines
// GET /api/v1/experiences
func (h *ExperienceHandler) List(c *gin.Context) {
	grouped, err := h.experienceService.ListGrouped(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, grouped)
}

// ListAll returns the flat entry list for the dashboard
// GET /api/v1/admin/experiences
func (h *ExperienceHandler) ListAll(c *gin.Context) {
	exps, err := h.experienceService.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, exps)
}

// Create adds a timeline entry
// POST /api/v1/admin/experiences
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req model.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	exp, err := h.experienceService.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, exp)
}

// Update replaces a timeline entry's fields
// PUT /api/v1/admin/experiences/:id
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid experience ID")
		return
	}

	var req model.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	exp, err := h.experienceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, exp)
}

// Delete removes a timeline entry
// DELETE /api/v1/admin/experiences/:id
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid experience ID")
		return
	}

	if err := h.experienceService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *ExperienceHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrExperienceNotFound):
		response.NotFound(c, err.Error())
	default:
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", vErrs)
			return
		}
		response.InternalServerError(c, "operation failed")
	}
}
