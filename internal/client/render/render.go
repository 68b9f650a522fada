// Package render projects store state onto text views for the terminal.
// Every function is a pure projection: the command loop prints the
// returned string wholesale after each state change, so a view never
// carries state of its own between renders.
package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avidela/tienda/internal/client/store"
	"github.com/avidela/tienda/internal/models"
	"github.com/avidela/tienda/internal/price"
)

// Palette holds the ANSI sequences for one theme. The light palette is
// empty, leaving the terminal's defaults untouched.
type Palette struct {
	Title string
	Muted string
	Price string
	Reset string
}

var (
	Light = Palette{}
	Dark  = Palette{
		Title: "\x1b[1;97m",
		Muted: "\x1b[90m",
		Price: "\x1b[1;92m",
		Reset: "\x1b[0m",
	}
)

// View renders store state with a fixed palette.
type View struct {
	pal Palette
}

// New returns a View using the dark or light palette.
func New(dark bool) *View {
	if dark {
		return &View{pal: Dark}
	}
	return &View{pal: Light}
}

// Catalog renders the product grid for the given visible products.
// An empty result yields a "no results" message quoting the filter text.
func (v *View) Catalog(products []models.Product, filter string) string {
	if len(products) == 0 {
		return fmt.Sprintf("No products found for %q.\n", filter)
	}

	var b strings.Builder
	for _, p := range products {
		desc := store.DescriptionFor(p.Description, p.Category)
		fmt.Fprintf(&b, "[%d] %s%s%s\n", p.ID, v.pal.Title, p.Title, v.pal.Reset)
		fmt.Fprintf(&b, "    %s%s%s\n", v.pal.Muted, desc, v.pal.Reset)
		fmt.Fprintf(&b, "    %sCategory: %s%s\n", v.pal.Muted, p.Category, v.pal.Reset)
		fmt.Fprintf(&b, "    %s%s%s  (add %d)\n", v.pal.Price, price.FormatFloat(p.Price), v.pal.Reset, p.ID)
	}
	return b.String()
}

// Cart renders the cart panel: a placeholder when empty, otherwise one
// block per line plus an item count and formatted total.
func (v *View) Cart(lines []store.CartLine, count int, total decimal.Decimal) string {
	var b strings.Builder
	if len(lines) == 0 {
		b.WriteString("Your cart is empty.\n")
	} else {
		for _, l := range lines {
			fmt.Fprintf(&b, "[%d] %s%s%s x%d\n", l.ID, v.pal.Title, l.Title, v.pal.Reset, l.Quantity)
			fmt.Fprintf(&b, "    %s%s%s\n", v.pal.Muted, l.Description, v.pal.Reset)
			fmt.Fprintf(&b, "    %sCategory: %s%s\n", v.pal.Muted, l.Category, v.pal.Reset)
			fmt.Fprintf(&b, "    Price: %s%s%s\n", v.pal.Price, price.FormatFloat(l.Price), v.pal.Reset)
		}
	}
	fmt.Fprintf(&b, "Items: %d  Total: %s%s%s\n", count, v.pal.Price, price.Format(total), v.pal.Reset)
	return b.String()
}

// EmptyCartWarning is shown when checkout is attempted with no items.
func EmptyCartWarning() string {
	return "Your cart is empty."
}

// LoginRequiredWarning is shown when checkout is attempted without a session.
func LoginRequiredWarning() string {
	return "Log in to complete your purchase."
}

// CheckoutConfirmation thanks the logged-in user and names the total.
func CheckoutConfirmation(username string, total decimal.Decimal) string {
	return fmt.Sprintf("Thank you, %s. Total: %s.", username, price.Format(total))
}

// CatalogUnavailable is shown when the catalog fetch fails.
func CatalogUnavailable() string {
	return "There was a problem loading the products. Please try again later."
}

// LoginFailed is shown for any failed login attempt.
func LoginFailed() string {
	return "Incorrect username or password."
}
