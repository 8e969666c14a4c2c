package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/marketbee/shopfront/pkg/api"
)

func cmdAdmin(a *App, ctx context.Context, args []string) error {
	if !a.session.RequireAuth() {
		return nil
	}
	if !a.session.IsAdmin() {
		return fmt.Errorf("this command needs an admin session, use 'shopctl admin-login'")
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: shopctl admin <products|add-product|update-product|delete-product|orders|set-status|analytics>")
	}
	sub, args := args[0], args[1:]

	switch sub {
	case "products":
		products, err := a.client.AdminProducts(ctx)
		if err != nil {
			return err
		}
		a.printProducts(products)
		return nil

	case "add-product":
		fs := flag.NewFlagSet("admin add-product", flag.ExitOnError)
		p := productFlags(fs)
		fs.Parse(args)
		if p.Name == "" || p.Price <= 0 {
			return fmt.Errorf("-name and a positive -price are required")
		}
		created, err := a.client.AdminCreateProduct(ctx, *p)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Product %d created.\n", created.ID)
		return nil

	case "update-product":
		if len(args) < 1 {
			return fmt.Errorf("usage: shopctl admin update-product <id> [flags]")
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		fs := flag.NewFlagSet("admin update-product", flag.ExitOnError)
		p := productFlags(fs)
		fs.Parse(args[1:])
		if _, err := a.client.AdminUpdateProduct(ctx, uint(id), *p); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Product updated.")
		return nil

	case "delete-product":
		if len(args) < 1 {
			return fmt.Errorf("usage: shopctl admin delete-product <id>")
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		if err := a.client.AdminDeleteProduct(ctx, uint(id)); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Product deleted.")
		return nil

	case "orders":
		orders, err := a.client.AdminOrders(ctx)
		if err != nil {
			return err
		}
		a.printOrders(orders)
		return nil

	case "set-status":
		if len(args) < 2 {
			return fmt.Errorf("usage: shopctl admin set-status <order-id> <status>")
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}
		status := strings.ToUpper(args[1])
		order, err := a.client.AdminUpdateOrderStatus(ctx, uint(id), status)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Order #%d is now %s.\n", order.ID, order.Status)
		return nil

	case "analytics":
		an, err := a.client.AdminAnalytics(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Users: %d\nOrders: %d\nRevenue: %s\n",
			an.TotalUsers, an.TotalOrders, money(an.TotalRevenue))
		if len(an.TopProducts) > 0 {
			a.table(func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "TOP PRODUCT\tUNITS\tREVENUE")
				for _, tp := range an.TopProducts {
					fmt.Fprintf(w, "%s\t%d\t%s\n", tp.Name, tp.UnitsSold, money(tp.Revenue))
				}
			})
		}
		return nil

	default:
		return fmt.Errorf("unknown admin subcommand %q", sub)
	}
}

func productFlags(fs *flag.FlagSet) *api.Product {
	p := &api.Product{}
	fs.StringVar(&p.Name, "name", "", "product name")
	fs.StringVar(&p.Description, "description", "", "product description")
	fs.Float64Var(&p.Price, "price", 0, "unit price")
	fs.IntVar(&p.Stock, "stock", 0, "units in stock")
	fs.StringVar(&p.ImageURL, "image", "", "image url")
	fs.UintVar(&p.CategoryID, "category", 0, "category id")
	return p
}
