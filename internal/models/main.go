// Package models defines the core data structures shared by the store
// server and the storefront client.
package models

// Product is a catalog entry. It is served by the store API and treated
// as read-only by the client; the shape mirrors the public catalog JSON.
type Product struct {
	// ID is the externally assigned product identifier.
	ID int `json:"id"`
	// Title is the display name of the product.
	Title string `json:"title"`
	// Price is the unit price in dollars.
	Price float64 `json:"price"`
	// Image is the URL of the product picture.
	Image string `json:"image"`
	// Category is the product category label.
	Category string `json:"category"`
	// Description is an optional per-product blurb; empty when the
	// catalog carries no custom text for the product.
	Description string `json:"description,omitempty"`
}

// User represents a registered store customer.
type User struct {
	// Username is the login name chosen by the user.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte
}

// Credentials is the JSON payload of a login or registration request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the JSON payload returned on a successful login.
type LoginResult struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
