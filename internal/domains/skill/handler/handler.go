package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/domains/skill/service"
	"portfolio-backend/internal/shared/response"
)

type SkillHandler struct {
	skillService service.SkillService
}

func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// List returns skills grouped by category, each group in display order
// GET /api/v1/skills
func (h *SkillHandler) List(c *gin.Context) {
	grouped, err := h.skillService.ListGrouped(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, grouped)
}

// ListAll returns the flat skill list for the dashboard
// GET /api/v1/admin/skills
func (h *SkillHandler) ListAll(c *gin.Context) {
	skills, err := h.skillService.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, skills)
}

// Create adds a skill
// POST /api/v1/admin/skills
func (h *SkillHandler) Create(c *gin.Context) {
	var req model.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	skill, err := h.skillService.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, skill)
}

// Update replaces a skill's fields
// PUT /api/v1/admin/skills/:id
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid skill ID")
		return
	}

	var req model.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	skill, err := h.skillService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, skill)
}

// Delete removes a skill
// DELETE /api/v1/admin/skills/:id
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid skill ID")
		return
	}

	if err := h.skillService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *SkillHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrSkillNotFound):
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
