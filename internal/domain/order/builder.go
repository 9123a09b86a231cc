// internal/domain/order/builder.go
package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/snackshop-backend/internal/domain/cart"
)

// ErrIncompleteCheckout is returned when checkout preconditions are unmet.
// It is always returned before any side effect: no partial order exists.
var ErrIncompleteCheckout = errors.New("checkout details incomplete")

// CustomerDetails are the fields collected on the checkout form
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Builder turns a finalized cart into an immutable Order. The clock and ID
// generator are injectable for tests; production builders use time.Now and a
// uuid-derived 8-hex-char token (32 bits of entropy).
type Builder struct {
	deliveryFee int64
	now         func() time.Time
	newID       func() string
}

// NewBuilder creates a Builder with the given home-delivery fee in paise
func NewBuilder(deliveryFee int64) *Builder {
	return &Builder{
		deliveryFee: deliveryFee,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       func() string { return uuid.New().String()[:8] },
	}
}

// WithClock overrides the timestamp source
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WithIDGenerator overrides the order ID source
func (b *Builder) WithIDGenerator(newID func() string) *Builder {
	b.newID = newID
	return b
}

// Build validates the checkout and produces a fully populated Order. It does
// not persist the order or clear the cart; that is the checkout flow's job,
// performed only after the repository confirms the write.
func (b *Builder) Build(c *cart.Cart, customer CustomerDetails, deliveryType DeliveryType, confirmed bool) (*Order, error) {
	if c == nil || c.IsEmpty() {
		return nil, fmt.Errorf("%w: cart is empty", ErrIncompleteCheckout)
	}
	if strings.TrimSpace(customer.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrIncompleteCheckout)
	}
	if strings.TrimSpace(customer.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrIncompleteCheckout)
	}
	if strings.TrimSpace(customer.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", ErrIncompleteCheckout)
	}
	if deliveryType != DeliveryHome && deliveryType != DeliveryTakeaway {
		return nil, fmt.Errorf("%w: invalid delivery type %q", ErrIncompleteCheckout, deliveryType)
	}
	if !confirmed {
		return nil, fmt.Errorf("%w: order must be confirmed", ErrIncompleteCheckout)
	}

	var deliveryCharge int64
	if deliveryType == DeliveryHome {
		deliveryCharge = b.deliveryFee
	}

	subtotal := c.Subtotal()

	items := make([]Item, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, Item{
			Name:      line.Name,
			Size:      line.Size,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal(),
		})
	}

	return &Order{
		OrderID:        b.newID(),
		CustomerName:   strings.TrimSpace(customer.Name),
		Phone:          strings.TrimSpace(customer.Phone),
		Address:        strings.TrimSpace(customer.Address),
		DeliveryType:   deliveryType,
		Subtotal:       subtotal,
		DeliveryCharge: deliveryCharge,
		Total:          subtotal + deliveryCharge,
		CreatedAt:      b.now(),
		Items:          items,
	}, nil
}
