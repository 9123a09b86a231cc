// internal/interfaces/http/handlers/receipt.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/snackshop-backend/internal/domain/order"
	"github.com/your-org/snackshop-backend/internal/pkg/pdf"
	"github.com/your-org/snackshop-backend/internal/pkg/receipt"
)

// ReceiptHandler serves receipt downloads for persisted orders
type ReceiptHandler struct {
	orders     order.Repository
	pdfService *pdf.Service
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(repo order.Repository, pdfService *pdf.Service) *ReceiptHandler {
	return &ReceiptHandler{
		orders:     repo,
		pdfService: pdfService,
	}
}

// GetReceipt handles GET /orders/:order_id/receipt
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	o, ok := h.loadOrder(c)
	if !ok {
		return
	}

	text := receipt.Format(o)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.txt", o.OrderID))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// GetReceiptPDF handles GET /orders/:order_id/receipt.pdf
func (h *ReceiptHandler) GetReceiptPDF(c *gin.Context) {
	o, ok := h.loadOrder(c)
	if !ok {
		return
	}

	pdfBuffer, err := h.pdfService.GenerateReceipt(o)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt PDF",
		})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", o.OrderID))
	c.Header("Content-Length", strconv.Itoa(len(pdfBuffer.Bytes())))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}

func (h *ReceiptHandler) loadOrder(c *gin.Context) (*order.Order, bool) {
	o, err := h.orders.GetByOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return nil, false
	}
	return o, true
}
