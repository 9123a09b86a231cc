// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/domain/cart"
	"github.com/your-org/snackshop-backend/internal/domain/order"
	"github.com/your-org/snackshop-backend/internal/domain/session"
)

// Service orchestrates the checkout flow: build the order, persist it, and
// only then clear the cart and move the session to confirmation. On any
// failure the cart and session are left exactly as they were so the user can
// correct input or retry.
type Service struct {
	carts    *cart.Service
	sessions *session.Service
	orders   order.Repository
	builder  *order.Builder
	log      *logrus.Logger
}

// NewService creates a new checkout service
func NewService(cartService *cart.Service, sessionService *session.Service, repo order.Repository, builder *order.Builder, log *logrus.Logger) *Service {
	return &Service{
		carts:    cartService,
		sessions: sessionService,
		orders:   repo,
		builder:  builder,
		log:      log,
	}
}

// PlaceOrderRequest represents the submitted checkout form. The delivery
// type is bound here, at submission time, never from an earlier render.
type PlaceOrderRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address" binding:"required"`
	DeliveryType string `json:"delivery_type" binding:"required"`
	Confirmed    bool   `json:"confirmed"`
}

// PlaceOrder runs the full checkout flow for a session
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, req *PlaceOrderRequest) (*order.Order, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Page != session.PageCheckout {
		return nil, fmt.Errorf("%w: checkout can only be submitted from the checkout page", session.ErrInvalidTransition)
	}

	deliveryType, err := order.ParseDeliveryType(req.DeliveryType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", order.ErrIncompleteCheckout, err)
	}

	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	o, err := s.builder.Build(c, order.CustomerDetails{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}, deliveryType, req.Confirmed)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	if err := s.orders.Save(ctx, o); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"order_id":   o.OrderID,
		}).WithError(err).Error("order persistence failed, cart preserved")
		return nil, err
	}

	// The order is durable from here on. Cart and session cleanup failures
	// are logged but must not un-place the order.
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.log.WithField("session_id", sessionID).WithError(err).Warn("failed to clear cart after order persistence")
	}

	if _, err := s.sessions.ConfirmOrder(ctx, sessionID, o.OrderID); err != nil {
		s.log.WithField("session_id", sessionID).WithError(err).Warn("failed to move session to confirmation")
	}

	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"order_id":   o.OrderID,
		"total":      o.Total,
		"latency":    time.Since(started),
	}).Info("order placed")

	return o, nil
}
