// internal/interfaces/http/handlers/menu_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuReturnsFullCatalog(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/v1/menu", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 12)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "item1", first["id"])
	assert.Equal(t, "Besan Ladoo", first["name"])

	prices := first["prices"].(map[string]interface{})
	assert.Equal(t, float64(15000), prices["250g"])
	assert.Equal(t, float64(30000), prices["500g"])
	assert.Equal(t, float64(60000), prices["1kg"])
}
