// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/snackshop-backend/internal/domain/checkout"
	"github.com/your-org/snackshop-backend/internal/domain/order"
	"github.com/your-org/snackshop-backend/internal/domain/session"
)

// CheckoutHandler handles checkout submission
type CheckoutHandler struct {
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Please fill all required fields and confirm the order",
			"details": err.Error(),
		})
		return
	}

	o, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrIncompleteCheckout):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, session.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, order.ErrPersistenceFailure):
			// Cart and session are preserved; the user may retry
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Failed to save order, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to place order",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    o,
	})
}
