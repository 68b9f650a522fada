// Package api is the client's gateway to the store's HTTP endpoints:
// one call to fetch the product catalog and one to log in.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avidela/tienda/internal/models"
)

// ErrLoginRejected covers every failed login uniformly: bad credentials,
// server errors and unreachable servers all look the same to the caller.
var ErrLoginRejected = errors.New("login rejected")

// Client talks to the store API. Base URLs for the catalog and auth
// endpoints are configured independently so either can point elsewhere.
type Client struct {
	http       *http.Client
	catalogURL string
	authURL    string
}

// New returns a Client for the given catalog and auth endpoint URLs.
func New(catalogURL, authURL string) *Client {
	return &Client{
		http:       &http.Client{Timeout: 10 * time.Second},
		catalogURL: catalogURL,
		authURL:    authURL,
	}
}

// FetchProducts issues a single GET for the product catalog. Transport
// errors and non-2xx statuses come back as one error; there is no retry.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.catalogURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}

// Login posts the credentials as JSON. Any failure — wrong credentials,
// transport error, malformed response — collapses into ErrLoginRejected;
// the storefront shows one message for all of them.
func (c *Client) Login(ctx context.Context, username, password string) (models.LoginResult, error) {
	body, _ := json.Marshal(models.Credentials{Username: username, Password: password})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, bytes.NewReader(body))
	if err != nil {
		return models.LoginResult{}, ErrLoginRejected
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.LoginResult{}, ErrLoginRejected
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.LoginResult{}, ErrLoginRejected
	}

	var result models.LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.LoginResult{}, ErrLoginRejected
	}
	return result, nil
}
