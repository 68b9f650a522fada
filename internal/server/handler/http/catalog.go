package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avidela/tienda/internal/models"
)

// CatalogService defines the catalog operations required by the HTTP
// handlers.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// CatalogHandler serves the product catalog.
type CatalogHandler struct {
	CatalogService CatalogService
}

// Products handles GET /api/products and responds with the full catalog
// as a JSON array.
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.CatalogService.ListProducts(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(products)
}
