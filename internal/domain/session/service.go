// internal/domain/session/service.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/snackshop-backend/internal/domain/cart"
)

// Service handles navigation state for a session
type Service struct {
	store Store
	carts *cart.Service
}

// NewService creates a new session service
func NewService(store Store, cartService *cart.Service) *Service {
	return &Service{
		store: store,
		carts: cartService,
	}
}

// NavigateRequest represents a user-triggered navigation event
type NavigateRequest struct {
	Event string `json:"event" binding:"required"`
}

// Get retrieves the current session, creating one on first contact
func (s *Service) Get(ctx context.Context, sessionID string) (*Session, error) {
	return s.store.Load(ctx, sessionID)
}

// Navigate applies a user navigation event. EventOrderPlaced is reserved for
// the checkout flow, since its guard is a confirmed persistence write.
func (s *Service) Navigate(ctx context.Context, sessionID string, event Event) (*Session, error) {
	if event == EventOrderPlaced {
		return nil, fmt.Errorf("%w: %q requires a placed order", ErrInvalidTransition, event)
	}

	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.Apply(event, c.IsEmpty(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return sess, nil
}

// ConfirmOrder moves the session to the confirmation page and records the
// persisted order ID. Only the checkout flow calls this, after the
// repository confirms the write.
func (s *Service) ConfirmOrder(ctx context.Context, sessionID, orderID string) (*Session, error) {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.Apply(EventOrderPlaced, false, time.Now().UTC()); err != nil {
		return nil, err
	}
	sess.FinalOrderID = orderID

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return sess, nil
}
