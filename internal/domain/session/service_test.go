// internal/domain/session/service_test.go
package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/snackshop-backend/internal/domain/cart"
	"github.com/your-org/snackshop-backend/internal/domain/catalog"
)

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]*Session)}
}

func (s *memoryStore) Load(_ context.Context, sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		copied := *sess
		return &copied, nil
	}
	return New(sessionID, time.Now().UTC()), nil
}

func (s *memoryStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sessions[sess.ID] = &copied
	return nil
}

type memoryCartStore struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: make(map[string]*cart.Cart)}
}

func (s *memoryCartStore) Load(_ context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		return c, nil
	}
	return cart.New(sessionID, time.Now().UTC()), nil
}

func (s *memoryCartStore) Save(_ context.Context, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[c.SessionID] = c
	return nil
}

func (s *memoryCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

func newTestService(t *testing.T) (*Service, *cart.Service) {
	t.Helper()
	cartService := cart.NewService(newMemoryCartStore(), catalog.NewService())
	return NewService(newMemoryStore(), cartService), cartService
}

func TestGetCreatesSessionOnFirstContact(t *testing.T) {
	svc, _ := newTestService(t)

	sess, err := svc.Get(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, "s1", sess.ID)
	assert.Equal(t, PageMenu, sess.Page)
}

func TestNavigateRejectsOrderPlaced(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Navigate(context.Background(), "s1", EventOrderPlaced)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNavigateViewCartGuardedByEmptyCart(t *testing.T) {
	svc, carts := newTestService(t)
	ctx := context.Background()

	_, err := svc.Navigate(ctx, "s1", EventViewCart)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = carts.AddItem(ctx, "s1", &cart.AddItemRequest{ItemID: "item1", Size: "250g"})
	require.NoError(t, err)

	sess, err := svc.Navigate(ctx, "s1", EventViewCart)
	require.NoError(t, err)
	assert.Equal(t, PageCart, sess.Page)
}

func TestNavigatePersistsPageAcrossLoads(t *testing.T) {
	svc, carts := newTestService(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "s1", &cart.AddItemRequest{ItemID: "item1", Size: "250g"})
	require.NoError(t, err)

	_, err = svc.Navigate(ctx, "s1", EventViewCart)
	require.NoError(t, err)
	_, err = svc.Navigate(ctx, "s1", EventCheckout)
	require.NoError(t, err)

	sess, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, PageCheckout, sess.Page)
}

func TestConfirmOrderRecordsOrderID(t *testing.T) {
	svc, carts := newTestService(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "s1", &cart.AddItemRequest{ItemID: "item1", Size: "250g"})
	require.NoError(t, err)
	_, err = svc.Navigate(ctx, "s1", EventViewCart)
	require.NoError(t, err)
	_, err = svc.Navigate(ctx, "s1", EventCheckout)
	require.NoError(t, err)

	sess, err := svc.ConfirmOrder(ctx, "s1", "ab12cd34")

	require.NoError(t, err)
	assert.Equal(t, PageConfirmation, sess.Page)
	assert.Equal(t, "ab12cd34", sess.FinalOrderID)
}

func TestConfirmOrderRequiresCheckoutPage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ConfirmOrder(context.Background(), "s1", "ab12cd34")

	assert.ErrorIs(t, err, ErrInvalidTransition)
}
