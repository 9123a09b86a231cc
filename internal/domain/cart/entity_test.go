// internal/domain/cart/entity_test.go
package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartIsEmpty(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Subtotal())
	assert.Equal(t, 0, c.TotalQuantity())
	assert.Equal(t, "session-1", c.SessionID)
}

func TestAddItemMergesSameItemAndSize(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)

	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)
	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)
	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, 3, c.TotalQuantity())
}

func TestAddItemDifferentSizesAreSeparateLines(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)

	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)
	c.AddItem("item1", "Besan Ladoo", "500g", 30000, now)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 2, c.TotalQuantity())
}

func TestAddItemKeepsOriginalUnitPrice(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)

	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)
	// A later add with a different price must not touch the captured price
	c.AddItem("item1", "Besan Ladoo", "250g", 99999, now)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(15000), c.Lines[0].UnitPrice)
	assert.Equal(t, int64(30000), c.Subtotal())
}

func TestAddItemAlwaysIncrementsTotalQuantityByOne(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)

	items := []struct{ id, size string }{
		{"item1", "250g"},
		{"item1", "250g"},
		{"item2", "500g"},
		{"item1", "1kg"},
		{"item2", "500g"},
	}

	for i, it := range items {
		before := c.TotalQuantity()
		c.AddItem(it.id, "name", it.size, 10000, now)
		assert.Equal(t, before+1, c.TotalQuantity(), "add %d", i)
	}
}

func TestSetQuantityUpdatesLine(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)
	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)

	c.SetQuantity("item1", "250g", 5, now)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Quantity)
	assert.Equal(t, int64(75000), c.Subtotal())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)
	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)
	c.AddItem("item2", "Rava Ladoo", "500g", 26000, now)

	c.SetQuantity("item1", "250g", 0, now)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "item2", c.Lines[0].ItemID)
}

func TestSetQuantityAbsentLineIsNoOp(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)
	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)

	c.SetQuantity("item9", "1kg", 0, now)
	c.SetQuantity("item9", "1kg", 3, now)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "item1", c.Lines[0].ItemID)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestRemoveDeletesLineRegardlessOfQuantity(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)
	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)
	c.SetQuantity("item1", "250g", 7, now)

	c.Remove("item1", "250g", now)

	assert.True(t, c.IsEmpty())
}

func TestSubtotalSumsAllLines(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)
	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)
	c.SetQuantity("item1", "250g", 2, now)
	c.AddItem("item5", "Patal Pohe Chivda", "500g", 23000, now)

	// 2*15000 + 1*23000
	assert.Equal(t, int64(53000), c.Subtotal())
}

func TestClearRemovesAllLines(t *testing.T) {
	now := time.Now().UTC()
	c := New("session-1", now)
	c.AddItem("item1", "Besan Ladoo", "250g", 15000, now)
	c.AddItem("item2", "Rava Ladoo", "500g", 26000, now)

	c.Clear(now)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Subtotal())
}
