package handlers

import (
	"errors"
	"log"
	"net/http"

	"restauplus/internal/usecase"
	"restauplus/pkg"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler serves printable receipts.

type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
}

func NewReceiptHandler(uc usecase.IReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

// GetReceipt renders the order as a self-contained HTML document ready for
// the browser's print dialog.
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	orderID := c.Param("order_id")

	doc, err := h.usecase.Render(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[receipt][handler] render failed order_id=%s err=%v", orderID, err)
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
