package repository

import (
	"context"
	"database/sql"

	"github.com/avidela/tienda/internal/models"
)

// PostgresCatalogRepository serves the product catalog from PostgreSQL.
type PostgresCatalogRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository
// with the given database connection.
func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

// ListProducts returns every product in the catalog, ordered by id.
func (r *PostgresCatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT id, title, price, image, category, description FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Image, &p.Category, &p.Description); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
