package db

import (
	"context"
	"database/sql"
	"fmt"
)

// defaultCatalog is inserted the first time the server starts against an
// empty database, so the storefront has something to sell out of the box.
var defaultCatalog = []struct {
	title       string
	price       float64
	image       string
	category    string
	description string
}{
	{"Mens Cotton Jacket", 55.99, "/img/jacket.jpg", "men's clothing", ""},
	{"Slim Fit T-Shirt", 15.99, "/img/tshirt.jpg", "men's clothing", ""},
	{"Women's Short Sleeve Boat Neck", 9.85, "/img/boatneck.jpg", "women's clothing", ""},
	{"Rain Jacket Windbreaker", 39.99, "/img/windbreaker.jpg", "women's clothing", ""},
	{"Gold Chain Bracelet", 695, "/img/bracelet.jpg", "jewelery", "18k gold plated chain with secure clasp."},
	{"Silver Dragon Ring", 168, "/img/ring.jpg", "jewelery", ""},
	{"Portable SSD 1TB", 109, "/img/ssd.jpg", "electronics", ""},
	{"Gaming Monitor 27\"", 599, "/img/monitor.jpg", "electronics", "144Hz IPS panel with thin bezels."},
	{"Home Team Jersey", 89.9, "/img/jersey.jpg", "sportswear", ""},
}

// SeedCatalog inserts the default product catalog when the products
// table is empty. It is a no-op on an already populated database.
func SeedCatalog(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range defaultCatalog {
		_, err := db.ExecContext(ctx,
			`INSERT INTO products (title, price, image, category, description)
             VALUES ($1, $2, $3, $4, $5)`,
			p.title, p.price, p.image, p.category, p.description,
		)
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.title, err)
		}
	}
	return nil
}
