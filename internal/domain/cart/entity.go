// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"time"
)

// ErrInvalidQuantity is returned when a quantity update is not a whole
// number of zero or more
var ErrInvalidQuantity = errors.New("quantity must be a whole number of zero or more")

// Line is one cart entry, keyed by (item ID, size). The unit price is
// captured when the line is created and never re-read from the catalog.
type Line struct {
	ItemID    string    `json:"item_id"`
	Name      string    `json:"name"`
	Size      string    `json:"size"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Subtotal returns unit price times quantity for this line
func (l Line) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart represents a single session's shopping cart (stored in Redis)
type Cart struct {
	SessionID string    `json:"session_id"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates an empty cart for a session
func New(sessionID string, now time.Time) *Cart {
	return &Cart{
		SessionID: sessionID,
		Lines:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem merges one unit into an existing (itemID, size) line or inserts a
// new line with quantity 1. An existing line keeps the unit price it was
// created with.
func (c *Cart) AddItem(itemID, name, size string, unitPrice int64, now time.Time) {
	if i := c.find(itemID, size); i >= 0 {
		c.Lines[i].Quantity++
	} else {
		c.Lines = append(c.Lines, Line{
			ItemID:    itemID,
			Name:      name,
			Size:      size,
			UnitPrice: unitPrice,
			Quantity:  1,
			AddedAt:   now,
		})
	}
	c.UpdatedAt = now
}

// SetQuantity sets the quantity for an existing line. A quantity of zero or
// less removes the line; removing an absent line is a no-op.
func (c *Cart) SetQuantity(itemID, size string, quantity int, now time.Time) {
	i := c.find(itemID, size)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	} else {
		c.Lines[i].Quantity = quantity
	}
	c.UpdatedAt = now
}

// Remove deletes a line regardless of its quantity
func (c *Cart) Remove(itemID, size string, now time.Time) {
	c.SetQuantity(itemID, size, 0, now)
}

// Subtotal returns the sum of all line subtotals, zero for an empty cart
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, line := range c.Lines {
		subtotal += line.Subtotal()
	}
	return subtotal
}

// TotalQuantity returns the sum of all line quantities
func (c *Cart) TotalQuantity() int {
	var total int
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear removes all lines
func (c *Cart) Clear(now time.Time) {
	c.Lines = c.Lines[:0]
	c.UpdatedAt = now
}

func (c *Cart) find(itemID, size string) int {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID && c.Lines[i].Size == size {
			return i
		}
	}
	return -1
}
