package service

import (
	"context"

	"github.com/avidela/tienda/internal/models"
)

// CatalogRepository defines the persistence operations required by the
// catalog service.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// CatalogService serves the product catalog.
type CatalogService struct {
	repo CatalogRepository
}

// NewCatalogService constructs a CatalogService using the provided repository.
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListProducts returns the full catalog. A nil slice becomes an empty
// one so the handler always serves a JSON array.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
