// internal/domain/order/repository.go
package order

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrPersistenceFailure is returned when the order store rejects a write.
// The caller must leave the cart and session untouched so the user can retry.
var ErrPersistenceFailure = errors.New("failed to persist order")

// ErrNotFound is returned when no order matches the given order ID
var ErrNotFound = errors.New("order not found")

// Repository persists finalized orders. Save must be called at most once per
// order.
type Repository interface {
	Save(ctx context.Context, o *Order) error
	GetByOrderID(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
}

// GormRepository stores orders via GORM (sqlite or postgres)
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a GORM-backed order repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Save writes the order and its line items in one transaction
func (r *GormRepository) Save(ctx context.Context, o *Order) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return nil
}

// GetByOrderID loads an order with its line items
func (r *GormRepository) GetByOrderID(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		First(&o)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}

	return &o, nil
}

// List returns all persisted orders, newest first
func (r *GormRepository) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
