package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/social/model"
	"portfolio-backend/internal/domains/social/service"
	"portfolio-backend/internal/shared/response"
)

type SocialHandler struct {
	socialService service.SocialService
}

func NewSocialHandler(socialService service.SocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

// ListVisible returns the public links in display order
// GET /api/v1/socials
func (h *SocialHandler) ListVisible(c *gin.Context) {
	links, err := h.socialService.ListVisible(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, links)
}

// ListAll returns every link for the dashboard
// GET /api/v1/admin/socials
func (h *SocialHandler) ListAll(c *gin.Context) {
	links, err := h.socialService.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, links)
}

// Create adds a new link
// POST /api/v1/admin/socials
func (h *SocialHandler) Create(c *gin.Context) {
	var req model.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	link, err := h.socialService.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, link)
}

// Update replaces a link's fields
// PUT /api/v1/admin/socials/:id
func (h *SocialHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid social link ID")
		return
	}

	var req model.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	link, err := h.socialService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, link)
}

// Delete removes a link
// DELETE /api/v1/admin/socials/:id
func (h *SocialHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid social link ID")
		return
	}

	if err := h.socialService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *SocialHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrSocialLinkNotFound):
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
