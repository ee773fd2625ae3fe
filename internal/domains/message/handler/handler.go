package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/message/model"
	"portfolio-backend/internal/domains/message/service"
	"portfolio-backend/internal/shared/response"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// Submit accepts a contact form submission
// POST /api/v1/contact
func (h *MessageHandler) Submit(c *gin.Context) {
	var req model.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.messageService.Submit(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": msg.ID})
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// List shows the inbox
// GET /api/v1/admin/messages?unread=true
func (h *MessageHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	onlyUnread := c.Query("unread") == "true"

	msgs, total, err := h.messageService.List(c.Request.Context(), onlyUnread, page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, msgs, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// MarkRead flags a message as handled
// PUT /api/v1/admin/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid message ID")
		return
	}

	if err := h.messageService.MarkRead(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// Delete removes a message
// DELETE /api/v1/admin/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid message ID")
		return
	}

	if err := h.messageService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *MessageHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrMessageNotFound):
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
