package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/avidela/tienda/internal/models"
)

type fakeCatalogService struct {
	products []models.Product
	err      error
}

func (f *fakeCatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func TestCatalogHandler_Products(t *testing.T) {
	h := &CatalogHandler{CatalogService: &fakeCatalogService{
		products: []models.Product{
			{ID: 1, Title: "Jacket", Price: 55.99, Category: "men's clothing"},
		},
	}}

	rec := httptest.NewRecorder()
	h.Products(rec, httptest.NewRequest("GET", "/api/products", nil))
	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got []models.Product
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Jacket" {
		t.Errorf("unexpected products: %+v", got)
	}
}

func TestCatalogHandler_EmptyCatalogIsArray(t *testing.T) {
	h := &CatalogHandler{CatalogService: &fakeCatalogService{products: []models.Product{}}}

	rec := httptest.NewRecorder()
	h.Products(rec, httptest.NewRequest("GET", "/api/products", nil))

	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("empty catalog should serialize as [], got %q", body)
	}
}

func TestCatalogHandler_ServiceError(t *testing.T) {
	h := &CatalogHandler{CatalogService: &fakeCatalogService{err: errors.New("db down")}}

	rec := httptest.NewRecorder()
	h.Products(rec, httptest.NewRequest("GET", "/api/products", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestRouter_Routes(t *testing.T) {
	catalog := &CatalogHandler{CatalogService: &fakeCatalogService{products: []models.Product{}}}
	auth := &AuthHandler{AuthService: &fakeAuthService{}}
	router := NewRouter(catalog, auth, zap.NewNop())

	srv := httptest.NewServer(router)
	defer srv.Close()

	t.Run("products route", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/products")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("auth routes reject non-JSON content type", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/auth/login", "text/plain", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("POST failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnsupportedMediaType {
			t.Errorf("expected 415, got %d", resp.StatusCode)
		}
	})
}
