// internal/interfaces/http/handlers/checkout_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/snackshop-backend/internal/domain/order"
)

func validCheckoutBody() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Asha Deshpande",
		"phone":         "9876543210",
		"address":       "12 MG Road, Pune",
		"delivery_type": "home_delivery",
		"confirmed":     true,
	}
}

func TestPlaceOrderReturns201(t *testing.T) {
	app := newTestApp(t)
	app.reachCheckout(t)

	w := app.do(t, http.MethodPost, "/api/v1/checkout", validCheckoutBody())

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "ab12cd34", data["order_id"])
	assert.Equal(t, float64(35000), data["total"])

	// Cart is empty afterwards
	w = app.do(t, http.MethodGet, "/api/v1/cart", nil)
	cartData := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), cartData["total_quantity"])
}

func TestPlaceOrderFromWrongPageReturns409(t *testing.T) {
	app := newTestApp(t)

	// Session never reached the checkout page
	w := app.do(t, http.MethodPost, "/api/v1/checkout", validCheckoutBody())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPlaceOrderMissingFieldsReturns400(t *testing.T) {
	app := newTestApp(t)
	app.reachCheckout(t)

	body := validCheckoutBody()
	delete(body, "phone")

	w := app.do(t, http.MethodPost, "/api/v1/checkout", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderUnconfirmedReturns400(t *testing.T) {
	app := newTestApp(t)
	app.reachCheckout(t)

	body := validCheckoutBody()
	body["confirmed"] = false

	w := app.do(t, http.MethodPost, "/api/v1/checkout", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderInvalidDeliveryTypeReturns400(t *testing.T) {
	app := newTestApp(t)
	app.reachCheckout(t)

	body := validCheckoutBody()
	body["delivery_type"] = "drone"

	w := app.do(t, http.MethodPost, "/api/v1/checkout", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderPersistenceFailureReturns503(t *testing.T) {
	app := newTestApp(t)
	app.reachCheckout(t)
	app.repo.saveErr = order.ErrPersistenceFailure

	w := app.do(t, http.MethodPost, "/api/v1/checkout", validCheckoutBody())

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// Cart survives the failure so the user can retry
	w = app.do(t, http.MethodGet, "/api/v1/cart", nil)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_quantity"])
}
