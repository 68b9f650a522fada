// Package http provides the HTTP handlers of the store API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avidela/tienda/internal/models"
	"github.com/avidela/tienda/internal/service"
)

// AuthService defines the authentication operations required by the
// HTTP handlers.
type AuthService interface {
	// Login verifies credentials and returns the username with a
	// signed token, or service.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (models.LoginResult, error)
	// Register creates a new user, or returns service.ErrUserExists.
	Register(ctx context.Context, username, password string) error
}

// AuthHandler handles login and registration requests.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// Login handles POST /api/auth/login. It expects a JSON body with
// non-empty "username" and "password" fields and responds with the
// username and a token on success. Unknown users and wrong passwords
// both produce 401 with no further detail.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.AuthService.Login(r.Context(), creds.Username, creds.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// Register handles POST /api/auth/register. A taken username yields 409.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err := h.AuthService.Register(r.Context(), creds.Username, creds.Password)
	if errors.Is(err, service.ErrUserExists) {
		http.Error(w, "user already exists", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "username": creds.Username})
}
