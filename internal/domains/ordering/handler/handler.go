package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/ordering/model"
	"portfolio-backend/internal/domains/ordering/service"
	"portfolio-backend/internal/shared/response"
)

type OrderingHandler struct {
	orderingService service.OrderingService
}

func NewOrderingHandler(orderingService service.OrderingService) *OrderingHandler {
	return &OrderingHandler{
		orderingService: orderingService,
	}
}

// Reorder persists a drag-and-drop result for one collection
// PUT /api/v1/admin/reorder/:collection
func (h *OrderingHandler) Reorder(c *gin.Context) {
	var req model.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.orderingService.Reorder(c.Request.Context(), c.Param("collection"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

func (h *OrderingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUnknownCollection):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeUnknownCollection, err.Error())
	case errors.Is(err, model.ErrGroupRequired):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeGroupRequired, err.Error())
	default:
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", vErrs)
			return
		}
		response.InternalServerError(c, "operation failed")
	}
}
