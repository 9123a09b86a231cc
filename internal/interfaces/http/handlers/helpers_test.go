// internal/interfaces/http/handlers/helpers_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/domain/cart"
	"github.com/your-org/snackshop-backend/internal/domain/catalog"
	"github.com/your-org/snackshop-backend/internal/domain/checkout"
	"github.com/your-org/snackshop-backend/internal/domain/order"
	"github.com/your-org/snackshop-backend/internal/domain/session"
	"github.com/your-org/snackshop-backend/internal/pkg/pdf"
)

const testSessionID = "test-session"

type memoryCartStore struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
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

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session.Session
}

func (s *memorySessionStore) Load(_ context.Context, sessionID string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		copied := *sess
		return &copied, nil
	}
	return session.New(sessionID, time.Now().UTC()), nil
}

func (s *memorySessionStore) Save(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sessions[sess.ID] = &copied
	return nil
}

type stubOrderRepo struct {
	mu      sync.Mutex
	saveErr error
	saved   []*order.Order
}

func (r *stubOrderRepo) Save(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, o)
	return nil
}

func (r *stubOrderRepo) GetByOrderID(_ context.Context, orderID string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.saved {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return nil, order.ErrNotFound
}

func (r *stubOrderRepo) List(_ context.Context) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]order.Order, 0, len(r.saved))
	for i := len(r.saved) - 1; i >= 0; i-- {
		orders = append(orders, *r.saved[i])
	}
	return orders, nil
}

// testApp wires the full handler stack over in-memory stores
type testApp struct {
	router   *gin.Engine
	carts    *cart.Service
	sessions *session.Service
	repo     *stubOrderRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogService := catalog.NewService()
	cartService := cart.NewService(&memoryCartStore{carts: make(map[string]*cart.Cart)}, catalogService)
	sessionService := session.NewService(&memorySessionStore{sessions: make(map[string]*session.Session)}, cartService)
	repo := &stubOrderRepo{}

	builder := order.NewBuilder(5000).
		WithClock(func() time.Time { return time.Date(2026, 8, 24, 12, 30, 0, 0, time.UTC) }).
		WithIDGenerator(func() string { return "ab12cd34" })

	log := logrus.New()
	log.SetOutput(io.Discard)

	checkoutService := checkout.NewService(cartService, sessionService, repo, builder, log)
	pdfService := pdf.NewService(&config.Config{})

	menuHandler := NewMenuHandler(catalogService)
	cartHandler := NewCartHandler(cartService)
	sessionHandler := NewSessionHandler(sessionService)
	checkoutHandler := NewCheckoutHandler(checkoutService)
	orderHandler := NewOrderHandler(repo)
	receiptHandler := NewReceiptHandler(repo, pdfService)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/menu", menuHandler.GetMenu)
	api.GET("/cart", cartHandler.GetCart)
	api.DELETE("/cart", cartHandler.ClearCart)
	api.POST("/cart/items", cartHandler.AddItem)
	api.PUT("/cart/items", cartHandler.UpdateQuantity)
	api.DELETE("/cart/items", cartHandler.RemoveItem)
	api.GET("/session", sessionHandler.GetSession)
	api.POST("/session/navigate", sessionHandler.Navigate)
	api.POST("/checkout", checkoutHandler.PlaceOrder)
	api.GET("/orders", orderHandler.ListOrders)
	api.GET("/orders/:order_id", orderHandler.GetOrder)
	api.GET("/orders/:order_id/receipt", receiptHandler.GetReceipt)
	api.GET("/orders/:order_id/receipt.pdf", receiptHandler.GetReceiptPDF)

	return &testApp{
		router:   router,
		carts:    cartService,
		sessions: sessionService,
		repo:     repo,
	}
}

// do issues a request bound to the test session cookie
func (a *testApp) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionID})

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// reachCheckout puts two units of item1 in the cart and walks the session to
// the checkout page
func (a *testApp) reachCheckout(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := a.carts.AddItem(ctx, testSessionID, &cart.AddItemRequest{ItemID: "item1", Size: "250g"})
	require.NoError(t, err)
	_, err = a.carts.AddItem(ctx, testSessionID, &cart.AddItemRequest{ItemID: "item1", Size: "250g"})
	require.NoError(t, err)

	_, err = a.sessions.Navigate(ctx, testSessionID, session.EventViewCart)
	require.NoError(t, err)
	_, err = a.sessions.Navigate(ctx, testSessionID, session.EventCheckout)
	require.NoError(t, err)
}
