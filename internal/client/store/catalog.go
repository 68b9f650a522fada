package store

import (
	"strings"
	"sync"

	"github.com/avidela/tienda/internal/models"
)

// Catalog holds the last catalog fetched from the store API together
// with the current free-text search filter. The visible subset is
// derived on every read rather than cached.
type Catalog struct {
	mu       sync.Mutex
	products []models.Product
	filter   string
}

// Replace swaps the product list wholesale, keeping the current filter.
func (c *Catalog) Replace(products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
}

// SetFilter updates the free-text search filter.
func (c *Catalog) SetFilter(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = text
}

// Filter returns the current search filter text.
func (c *Catalog) Filter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Find returns the product with the given id and whether it is present.
func (c *Catalog) Find(id int) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Visible returns the products matching the current filter: a
// case-insensitive substring match against title or category. An empty
// filter matches every product.
func (c *Catalog) Visible() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	needle := strings.ToLower(c.filter)
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}
