package main

import (
	"strings"
	"testing"

	"github.com/avidela/tienda/internal/client/store"
	"github.com/avidela/tienda/internal/models"
)

func TestCheckoutOutcome_EmptyCart(t *testing.T) {
	cart := &store.Cart{}
	session := &store.Session{}
	session.Set("ana", "tok")

	msg, clear := checkoutOutcome(cart, session)
	if clear {
		t.Error("empty cart checkout must not clear anything")
	}
	if !strings.Contains(msg, "cart is empty") {
		t.Errorf("expected empty-cart warning, got %q", msg)
	}
}

func TestCheckoutOutcome_NoSession(t *testing.T) {
	cart := &store.Cart{}
	cart.Add(models.Product{ID: 1, Title: "Socks", Price: 5})
	cart.Add(models.Product{ID: 2, Title: "Hat", Price: 7})

	msg, clear := checkoutOutcome(cart, &store.Session{})
	if clear {
		t.Error("checkout without a session must not clear the cart")
	}
	if !strings.Contains(msg, "Log in") {
		t.Errorf("expected login-required warning, got %q", msg)
	}
	if cart.Len() != 2 {
		t.Errorf("cart should be untouched, got %d lines", cart.Len())
	}
}

func TestCheckoutOutcome_Confirmed(t *testing.T) {
	cart := &store.Cart{}
	cart.Add(models.Product{ID: 1, Title: "Socks", Price: 10})
	cart.Add(models.Product{ID: 2, Title: "Hat", Price: 15})
	session := &store.Session{}
	session.Set("ana", "tok")

	msg, clear := checkoutOutcome(cart, session)
	if !clear {
		t.Fatal("checkout with items and a session should clear the cart")
	}
	if !strings.Contains(msg, "ana") || !strings.Contains(msg, "$25.00") {
		t.Errorf("confirmation should name the user and total, got %q", msg)
	}
}
