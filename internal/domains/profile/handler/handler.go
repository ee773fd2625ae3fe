package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/profile/model"
	"portfolio-backend/internal/domains/profile/service"
	"portfolio-backend/internal/shared/response"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Get returns the public profile
// GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Upsert creates or replaces the profile
// PUT /api/v1/admin/profile
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req model.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.profileService.Upsert(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// UploadAvatar stores a new avatar image
// POST /api/v1/admin/profile/avatar
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	data, contentType, ok := readUpload(c, "file")
	if !ok {
		return
	}

	url, err := h.profileService.UploadAvatar(c.Request.Context(), data, contentType)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url})
}

// UploadResume stores a new resume file
// POST /api/v1/admin/profile/resume
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	data, contentType, ok := readUpload(c, "file")
	if !ok {
		return
	}

	url, err := h.profileService.UploadResume(c.Request.Context(), data, contentType)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url})
}

func (h *ProfileHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
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

func readUpload(c *gin.Context, field string) ([]byte, string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		response.BadRequest(c, "missing file upload")
		return nil, "", false
	}

	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, "file too large")
		return nil, "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "failed to read upload")
		return nil, "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		response.InternalServerError(c, "failed to read upload")
		return nil, "", false
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return data, contentType, true
}
