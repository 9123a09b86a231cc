// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/snackshop-backend/internal/domain/catalog"
)

// Service handles cart business logic
type Service struct {
	store   Store
	catalog *catalog.Service
}

// NewService creates a new cart service
func NewService(store Store, catalogService *catalog.Service) *Service {
	return &Service{
		store:   store,
		catalog: catalogService,
	}
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Size   string `json:"size" binding:"required"`
}

// UpdateQuantityRequest represents a quantity update request. Quantity is a
// pointer so that an absent field can be told apart from an explicit zero.
type UpdateQuantityRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required"`
}

// RemoveItemRequest represents a remove-from-cart request
type RemoveItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Size   string `json:"size" binding:"required"`
}

// Snapshot represents a cart with computed totals for rendering
type Snapshot struct {
	SessionID     string `json:"session_id"`
	Lines         []Line `json:"lines"`
	TotalQuantity int    `json:"total_quantity"`
	Subtotal      int64  `json:"subtotal"`
}

// Get retrieves the current cart snapshot for a session
func (s *Service) Get(ctx context.Context, sessionID string) (*Snapshot, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return snapshot(c), nil
}

// AddItem adds one unit of (itemID, size) to the session's cart. The unit
// price is looked up in the catalog at call time; an existing line keeps the
// price it was created with.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*Snapshot, error) {
	item, err := s.catalog.Get(req.ItemID)
	if err != nil {
		return nil, err
	}
	price, err := s.catalog.PriceFor(req.ItemID, req.Size)
	if err != nil {
		return nil, err
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.AddItem(item.ID, item.Name, req.Size, price, time.Now().UTC())

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return snapshot(c), nil
}

// SetQuantity updates a line's quantity. Zero removes the line; negative
// input is rejected with ErrInvalidQuantity before the cart is touched.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, req *UpdateQuantityRequest) (*Snapshot, error) {
	if req.Quantity == nil || *req.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.SetQuantity(req.ItemID, req.Size, *req.Quantity, time.Now().UTC())

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return snapshot(c), nil
}

// RemoveItem removes a line from the session's cart
func (s *Service) RemoveItem(ctx context.Context, sessionID string, req *RemoveItemRequest) (*Snapshot, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Remove(req.ItemID, req.Size, time.Now().UTC())

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return snapshot(c), nil
}

// Load returns the raw cart for a session (used by the checkout flow)
func (s *Service) Load(ctx context.Context, sessionID string) (*Cart, error) {
	return s.store.Load(ctx, sessionID)
}

// Clear removes the session's cart entirely. Called exactly once per order,
// immediately after a successful persistence.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func snapshot(c *Cart) *Snapshot {
	return &Snapshot{
		SessionID:     c.SessionID,
		Lines:         c.Lines,
		TotalQuantity: c.TotalQuantity(),
		Subtotal:      c.Subtotal(),
	}
}
