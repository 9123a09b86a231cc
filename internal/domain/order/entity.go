// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"
)

// DeliveryType enumerates how an order is fulfilled
type DeliveryType string

const (
	DeliveryHome     DeliveryType = "home_delivery"
	DeliveryTakeaway DeliveryType = "takeaway"
)

// ParseDeliveryType converts user input into a DeliveryType
func ParseDeliveryType(s string) (DeliveryType, error) {
	switch DeliveryType(s) {
	case DeliveryHome, DeliveryTakeaway:
		return DeliveryType(s), nil
	default:
		return "", fmt.Errorf("unknown delivery type %q", s)
	}
}

// Order represents a finalized purchase. Immutable once created; the line
// items are snapshots copied out of the cart, so later cart mutations cannot
// alter a placed order. Money values are in paise.
type Order struct {
	ID             uint         `gorm:"primaryKey" json:"-"`
	OrderID        string       `gorm:"uniqueIndex;not null;size:16" json:"order_id"`
	CustomerName   string       `gorm:"not null;size:255" json:"customer_name"`
	Phone          string       `gorm:"not null;size:20" json:"phone"`
	Address        string       `gorm:"not null;type:text" json:"address"`
	DeliveryType   DeliveryType `gorm:"not null;size:20" json:"delivery_type"`
	Subtotal       int64        `gorm:"not null" json:"subtotal"`
	DeliveryCharge int64        `gorm:"not null" json:"delivery_charge"`
	Total          int64        `gorm:"not null" json:"total"`
	CreatedAt      time.Time    `json:"created_at"`

	Items []Item `gorm:"foreignKey:OrderRef;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Item is one line snapshot inside an order
type Item struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	OrderRef  uint   `gorm:"not null;index" json:"-"`
	Name      string `gorm:"not null;size:255" json:"name"`
	Size      string `gorm:"not null;size:20" json:"size"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	UnitPrice int64  `gorm:"not null" json:"unit_price"`
	Subtotal  int64  `gorm:"not null" json:"subtotal"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }
