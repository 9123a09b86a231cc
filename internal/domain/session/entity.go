// internal/domain/session/entity.go
package session

import (
	"errors"
	"fmt"
	"time"
)

// Page is the screen the session is currently on
type Page string

const (
	PageMenu         Page = "menu"
	PageCart         Page = "cart"
	PageCheckout     Page = "checkout"
	PageConfirmation Page = "confirmation"
)

// Event is an explicit user action that drives a page transition
type Event string

const (
	EventViewCart     Event = "view-cart"
	EventBack         Event = "back"
	EventCheckout     Event = "checkout"
	EventOrderPlaced  Event = "order-placed"
	EventPlaceAnother Event = "place-another"
)

// ErrInvalidTransition is returned when an event is not available from the
// current page or its guard is not satisfied
var ErrInvalidTransition = errors.New("navigation action not available")

// Session holds one customer's interaction state. Transitions happen only
// through Apply, one user action at a time.
type Session struct {
	ID           string    `json:"id"`
	Page         Page      `json:"page"`
	FinalOrderID string    `json:"final_order_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// New creates a session starting on the menu page
func New(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Page:      PageMenu,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply runs one transition. cartEmpty feeds the guards on view-cart and
// checkout. EventOrderPlaced is applied by the checkout flow after a
// confirmed write; EventPlaceAnother clears the final-order record.
func (s *Session) Apply(event Event, cartEmpty bool, now time.Time) error {
	next, err := s.nextPage(event, cartEmpty)
	if err != nil {
		return err
	}

	if event == EventPlaceAnother {
		s.FinalOrderID = ""
	}

	s.Page = next
	s.UpdatedAt = now
	return nil
}

func (s *Session) nextPage(event Event, cartEmpty bool) (Page, error) {
	switch s.Page {
	case PageMenu:
		if event == EventViewCart {
			if cartEmpty {
				return "", fmt.Errorf("%w: cart is empty", ErrInvalidTransition)
			}
			return PageCart, nil
		}
	case PageCart:
		switch event {
		case EventBack:
			return PageMenu, nil
		case EventCheckout:
			if cartEmpty {
				return "", fmt.Errorf("%w: cart is empty", ErrInvalidTransition)
			}
			return PageCheckout, nil
		}
	case PageCheckout:
		switch event {
		case EventBack:
			return PageCart, nil
		case EventOrderPlaced:
			return PageConfirmation, nil
		}
	case PageConfirmation:
		if event == EventPlaceAnother {
			return PageMenu, nil
		}
	}
	return "", fmt.Errorf("%w: %q on page %q", ErrInvalidTransition, event, s.Page)
}
