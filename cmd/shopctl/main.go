// shopctl is a terminal storefront: browse the catalog, manage the cart and
// wishlist, place orders and, with an admin account, run the admin surface.
// Session state lives in a local state file (or a database when
// SHOPFRONT_STATE_DSN is set), so a login survives across invocations.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marketbee/shopfront/internal/config"
	"github.com/marketbee/shopfront/internal/logging"
	"github.com/marketbee/shopfront/pkg/api"
	"github.com/marketbee/shopfront/pkg/session"
	"github.com/marketbee/shopfront/pkg/store"
)

type App struct {
	cfg     config.Config
	log     *slog.Logger
	store   store.Store
	client  *api.Client
	session *session.Session
	out     io.Writer
}

func newApp() (*App, error) {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)

	var st store.Store
	if cfg.StateDSN != "" {
		dbStore, err := store.OpenDBStore(cfg.StateDSN)
		if err != nil {
			return nil, fmt.Errorf("open state store: %w", err)
		}
		st = dbStore
	} else {
		st = store.OpenFileStore(cfg.StateFile)
	}

	client := api.New(cfg.APIBaseURL, st)
	sess := session.New(client, st)

	app := &App{
		cfg:     cfg,
		log:     log,
		store:   st,
		client:  client,
		session: sess,
		out:     os.Stdout,
	}
	client.OnUnauthenticated(func() {
		fmt.Fprintln(app.out, "Session expired. Run 'shopctl login' to continue.")
	})
	sess.OnRedirect(func() {
		fmt.Fprintln(app.out, "You are not logged in. Run 'shopctl login' first.")
	})
	return app, nil
}

type command struct {
	name string
	help string
	run  func(*App, context.Context, []string) error
}

var commands = []command{
	{"login", "log in with email and password", cmdLogin},
	{"admin-login", "log in through the admin endpoint", cmdAdminLogin},
	{"signup", "create a new account", cmdSignup},
	{"logout", "discard the stored session", cmdLogout},
	{"whoami", "show the logged-in user", cmdWhoami},
	{"products", "list products, with optional filters", cmdProducts},
	{"product", "show one product with its reviews", cmdProduct},
	{"search", "search products by text", cmdSearch},
	{"categories", "list categories", cmdCategories},
	{"cart", "show|add|update|remove|clear", cmdCart},
	{"wishlist", "show|add|remove|move", cmdWishlist},
	{"orders", "list your orders", cmdOrders},
	{"order", "show one order", cmdOrder},
	{"checkout", "place an order from the cart", cmdCheckout},
	{"profile", "show|update your profile", cmdProfile},
	{"addresses", "list|add|update|delete delivery addresses", cmdAddresses},
	{"reviews", "list|add|update|delete product reviews", cmdReviews},
	{"admin", "products|add-product|update-product|delete-product|orders|set-status|analytics", cmdAdmin},
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: shopctl <command> [arguments]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-12s %s\n", c.name, c.help)
	}
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	app, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	name := os.Args[1]
	for _, c := range commands {
		if c.name == name {
			if err := c.run(app, context.Background(), os.Args[2:]); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", errText(err))
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
	usage(os.Stderr)
	os.Exit(2)
}
