// Package store holds the client-side state of the storefront: the
// fetched catalog with its search filter, the shopping cart, and the
// logged-in session. Each store is mutated only by the command loop and
// guards its state with a mutex.
package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/avidela/tienda/internal/models"
)

// CartLine is one cart entry: a product snapshot plus a quantity.
// The cart holds at most one line per product id.
type CartLine struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

// Cart is the in-memory shopping cart. Contents do not survive a restart.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

// Add puts a product in the cart. A repeat add of the same product id
// increments the existing line's quantity instead of creating a new line.
func (c *Cart) Add(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Description: DescriptionFor(p.Description, p.Category),
		Quantity:    1,
	})
}

// Remove deletes the line with the given product id, if present.
func (c *Cart) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Cart) removeLocked(id int) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// ChangeQuantity adds delta to the quantity of the line with the given
// id. A resulting quantity of zero or less removes the line. A missing
// id is a no-op.
func (c *Cart) ChangeQuantity(id, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ID != id {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.removeLocked(id)
		}
		return
	}
}

// Total returns the sum of price × quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, l := range c.lines {
		line := decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
		total = total.Add(line)
	}
	return total
}

// Count returns the total item count, summing quantities across lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Lines returns a copy of the current cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}
