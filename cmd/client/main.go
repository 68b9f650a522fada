package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/avidela/tienda/internal/client/api"
	"github.com/avidela/tienda/internal/client/render"
	"github.com/avidela/tienda/internal/client/store"
	"github.com/avidela/tienda/internal/client/theme"
)

var (
	version   string
	buildDate string
)

// app owns the client-side state. Every store is mutated only from the
// command loop, and each mutation is followed by a full re-render of
// the affected view.
type app struct {
	client  *api.Client
	catalog *store.Catalog
	cart    *store.Cart
	session *store.Session
	prefs   theme.Prefs
	view    *render.View
}

func (a *app) renderCatalog() {
	fmt.Print(a.view.Catalog(a.catalog.Visible(), a.catalog.Filter()))
}

func (a *app) renderCart() {
	fmt.Print(a.view.Cart(a.cart.Lines(), a.cart.Count(), a.cart.Total()))
}

// loadCatalog fetches the product list once. On failure the storefront
// stays usable; the user sees the retry-later message and can `reload`.
func (a *app) loadCatalog(ctx context.Context) {
	products, err := a.client.FetchProducts(ctx)
	if err != nil {
		fmt.Println(render.CatalogUnavailable())
		log.Println(err)
		return
	}
	a.catalog.Replace(products)
	a.renderCatalog()
}

func (a *app) addToCart(arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Usage: add <id>")
		return
	}
	p, ok := a.catalog.Find(id)
	if !ok {
		fmt.Printf("No product with id %d.\n", id)
		return
	}
	a.cart.Add(p)
	a.renderCart()
}

func (a *app) changeQuantity(arg string, delta int) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Usage: inc|dec|rm <id>")
		return
	}
	if delta == 0 {
		a.cart.Remove(id)
	} else {
		a.cart.ChangeQuantity(id, delta)
	}
	a.renderCart()
}

// checkoutOutcome decides what checkout does for the current state: the
// message to show and whether the cart is cleared. An empty cart and a
// missing session are terminal warnings that leave the cart untouched.
func checkoutOutcome(cart *store.Cart, session *store.Session) (string, bool) {
	if cart.Len() == 0 {
		return render.EmptyCartWarning(), false
	}
	if !session.Active() {
		return render.LoginRequiredWarning(), false
	}
	return render.CheckoutConfirmation(session.Username(), cart.Total()), true
}

func (a *app) checkout() {
	msg, clear := checkoutOutcome(a.cart, a.session)
	fmt.Println(msg)
	if clear {
		a.cart.Clear()
		a.renderCart()
	}
}

func (a *app) login(ctx context.Context, scanner *bufio.Scanner) {
	fmt.Print("Username: ")
	if !scanner.Scan() {
		return
	}
	username := strings.TrimSpace(scanner.Text())
	fmt.Print("Password: ")
	if !scanner.Scan() {
		return
	}
	password := scanner.Text()

	result, err := a.client.Login(ctx, username, password)
	if err != nil {
		fmt.Println(render.LoginFailed())
		return
	}
	a.session.Set(result.Username, result.Token)
	fmt.Printf("Logged in as %s.\n", result.Username)
}

func (a *app) toggleDark() {
	a.prefs.Toggle()
	a.view = render.New(a.prefs.IsDark())
	if err := a.prefs.Save(); err != nil {
		log.Println("failed to save preferences:", err)
	}
	fmt.Printf("Theme: %s.\n", a.prefs.Theme)
}

// repl runs the interactive storefront loop.
func repl(ctx context.Context, a *app) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("tienda> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.SplitN(line, " ", 2)
		if args[0] == "" {
			continue
		}
		arg := ""
		if len(args) > 1 {
			arg = strings.TrimSpace(args[1])
		}

		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, list, search <text>, add <id>, cart, inc <id>, dec <id>, rm <id>, empty, checkout, login, reload, dark, exit")
		case "list":
			a.renderCatalog()
		case "search":
			a.catalog.SetFilter(arg)
			a.renderCatalog()
		case "add":
			a.addToCart(arg)
		case "cart":
			a.renderCart()
		case "inc":
			a.changeQuantity(arg, 1)
		case "dec":
			a.changeQuantity(arg, -1)
		case "rm":
			a.changeQuantity(arg, 0)
		case "empty":
			a.cart.Clear()
			a.renderCart()
		case "checkout":
			a.checkout()
		case "login":
			a.login(ctx, scanner)
		case "reload":
			a.loadCatalog(ctx)
		case "dark":
			a.toggleDark()
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func main() {
	var (
		catalogURL string
		authURL    string
		showVer    bool
	)

	flag.StringVar(&catalogURL, "catalog", "http://localhost:8080/api/products", "product catalog endpoint")
	flag.StringVar(&authURL, "auth", "http://localhost:8080/api/auth/login", "login endpoint")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("Tienda Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	prefs, err := theme.Load()
	if err != nil {
		log.Println("failed to load preferences:", err)
		prefs = theme.Prefs{Theme: theme.Light}
	}

	a := &app{
		client:  api.New(catalogURL, authURL),
		catalog: &store.Catalog{},
		cart:    &store.Cart{},
		session: &store.Session{},
		prefs:   prefs,
		view:    render.New(prefs.IsDark()),
	}

	ctx := context.Background()
	a.loadCatalog(ctx)
	repl(ctx, a)
}
