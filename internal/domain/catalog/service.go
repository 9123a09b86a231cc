// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an item or size is not in the catalog
var ErrNotFound = errors.New("catalog item not found")

// Service serves the fixed menu
type Service struct {
	items []Item
	byID  map[string]*Item
}

// NewService creates a new catalog service over the built-in menu
func NewService() *Service {
	s := &Service{
		items: menu,
		byID:  make(map[string]*Item, len(menu)),
	}
	for i := range s.items {
		s.byID[s.items[i].ID] = &s.items[i]
	}
	return s
}

// List returns every catalog item in menu order
func (s *Service) List() []Item {
	return s.items
}

// Get returns a single catalog item by ID
func (s *Service) Get(itemID string) (*Item, error) {
	item, ok := s.byID[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, itemID)
	}
	return item, nil
}

// PriceFor returns the current unit price for an item and size
func (s *Service) PriceFor(itemID, size string) (int64, error) {
	item, err := s.Get(itemID)
	if err != nil {
		return 0, err
	}
	price, ok := item.Prices[size]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no size %q", ErrNotFound, itemID, size)
	}
	return price, nil
}
