package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avidela/tienda/internal/models"
)

func product(id int, title string, priceVal float64) models.Product {
	return models.Product{ID: id, Title: title, Price: priceVal, Category: "electronics"}
}

func TestCart_AddMergesByID(t *testing.T) {
	c := &Cart{}
	p := product(1, "headphones", 10)

	c.Add(p)
	c.Add(p)
	c.Add(p)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, c.Count())
}

func TestCart_AddPicksDescription(t *testing.T) {
	c := &Cart{}

	custom := product(1, "radio", 5)
	custom.Description = "hand-built radio"
	c.Add(custom)

	byCategory := product(2, "cable", 2)
	c.Add(byCategory)

	unknown := product(3, "thing", 1)
	unknown.Category = "misc"
	c.Add(unknown)

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "hand-built radio", lines[0].Description)
	assert.Equal(t, categoryDescriptions["electronics"], lines[1].Description)
	assert.Equal(t, fallbackDescription, lines[2].Description)
}

func TestCart_ChangeQuantity(t *testing.T) {
	c := &Cart{}
	c.Add(product(1, "shirt", 8))
	c.ChangeQuantity(1, 2)
	require.Equal(t, 3, c.Lines()[0].Quantity)

	c.ChangeQuantity(1, -1)
	require.Equal(t, 2, c.Lines()[0].Quantity)

	// dropping to zero or below removes the line
	c.ChangeQuantity(1, -2)
	assert.Equal(t, 0, c.Len())

	// unknown id is a no-op
	c.ChangeQuantity(42, 1)
	assert.Equal(t, 0, c.Len())
}

func TestCart_Total(t *testing.T) {
	c := &Cart{}
	assert.True(t, c.Total().IsZero(), "empty cart total should be 0")

	c.Add(product(1, "a", 10.00))
	c.Add(product(1, "a", 10.00))
	c.Add(product(2, "b", 5.00))

	assert.True(t, c.Total().Equal(decimal.RequireFromString("25.00")),
		"total = %s, want 25.00", c.Total())
}

func TestCart_AddTwiceThenDropBelowZero(t *testing.T) {
	c := &Cart{}
	p := product(1, "socks", 10.00)

	c.Add(p)
	c.Add(p)
	c.ChangeQuantity(1, -5)

	assert.Equal(t, 0, c.Len(), "line should be removed when quantity drops to 0 or less")
	assert.True(t, c.Total().IsZero())
}

func TestCart_RemoveAndClear(t *testing.T) {
	c := &Cart{}
	c.Add(product(1, "a", 1))
	c.Add(product(2, "b", 2))

	c.Remove(1)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].ID)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Count())
}
