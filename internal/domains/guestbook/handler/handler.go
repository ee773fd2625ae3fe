package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/guestbook/model"
	"portfolio-backend/internal/domains/guestbook/service"
	usermodel "portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

type GuestbookHandler struct {
	guestbookService service.GuestbookService
}

func NewGuestbookHandler(guestbookService service.GuestbookService) *GuestbookHandler {
	return &GuestbookHandler{
		guestbookService: guestbookService,
	}
}

// List returns the approved wall, with the viewer's likes marked when a
// valid token is presented
// GET /api/v1/guestbook
func (h *GuestbookHandler) List(c *gin.Context) {
	var viewer *middleware.Identity
	if identity, ok := middleware.GetIdentity(c); ok {
		viewer = &identity
	}

	entries, err := h.guestbookService.ListApproved(c.Request.Context(), viewer)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entries)
}

// ListReplies returns all replies to one entry
// GET /api/v1/guestbook/:id/replies
func (h *GuestbookHandler) ListReplies(c *gin.Context) {
	parentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry ID")
		return
	}

	var viewer *middleware.Identity
	if identity, ok := middleware.GetIdentity(c); ok {
		viewer = &identity
	}

	replies, err := h.guestbookService.ListReplies(c.Request.Context(), parentID, viewer)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, replies)
}

// Post creates a top-level entry
// POST /api/v1/guestbook
func (h *GuestbookHandler) Post(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.guestbookService.PostEntry(c.Request.Context(), identity, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, entry)
}

// Reply creates a reply to a top-level entry
// POST /api/v1/guestbook/:id/replies
func (h *GuestbookHandler) Reply(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	parentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry ID")
		return
	}

	var req model.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.guestbookService.PostReply(c.Request.Context(), identity, parentID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, entry)
}

// Delete removes an entry; only the author or an admin may do this
// DELETE /api/v1/guestbook/:id
func (h *GuestbookHandler) Delete(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry ID")
		return
	}

	if err := h.guestbookService.DeleteEntry(c.Request.Context(), identity, entryID); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": entryID})
}

// ToggleLike flips the viewer's like on an entry
// POST /api/v1/guestbook/:id/like
func (h *GuestbookHandler) ToggleLike(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry ID")
		return
	}

	result, err := h.guestbookService.ToggleLike(c.Request.Context(), identity, entryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// ListForModeration shows all top-level entries and the pending count
// GET /api/v1/admin/guestbook
func (h *GuestbookHandler) ListForModeration(c *gin.Context) {
	list, err := h.guestbookService.ListForModeration(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, list)
}

// SetApproved approves or hides an entry
// PUT /api/v1/admin/guestbook/:id/approval
func (h *GuestbookHandler) SetApproved(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry ID")
		return
	}

	var req model.SetApprovedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.guestbookService.SetApproved(c.Request.Context(), entryID, *req.IsApproved); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": entryID, "is_approved": *req.IsApproved})
}

func (h *GuestbookHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrEntryNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeEntryNotFound, err.Error())
	case errors.Is(err, model.ErrCannotReplyToReply):
		response.ErrorResponse(c, http.StatusUnprocessableEntity, model.ErrCodeCannotReplyToReply, err.Error())
	case errors.Is(err, model.ErrForbidden):
		response.ErrorResponse(c, http.StatusForbidden, model.ErrCodeForbidden, err.Error())
	case errors.Is(err, usermodel.ErrUserNotFound):
		response.Unauthorized(c, "account no longer exists")
	default:
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", vErrs)
			return
		}
		response.InternalServerError(c, "operation failed")
	}
}
