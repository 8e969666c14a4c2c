package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/marketbee/shopfront/pkg/api"
	"github.com/marketbee/shopfront/pkg/store"
)

func cmdOrders(a *App, ctx context.Context, args []string) error {
	if !a.session.RequireAuth() {
		return nil
	}
	orders, err := a.client.Orders(ctx)
	if err != nil {
		return err
	}
	a.printOrders(orders)
	return nil
}

func cmdOrder(a *App, ctx context.Context, args []string) error {
	if !a.session.RequireAuth() {
		return nil
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: shopctl order <id>")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid order id %q", args[0])
	}

	o, err := a.client.Order(ctx, uint(id))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Order #%d  %s  %s\n", o.ID, o.OrderDate.Format("2006-01-02 15:04"), o.Status)
	for _, it := range o.Items {
		fmt.Fprintf(a.out, "  %s x%d @ %s\n", it.Product.Name, it.Quantity, money(it.Price))
	}
	if o.Address != nil {
		fmt.Fprintf(a.out, "Deliver to: %s, %s, %s %s\n",
			o.Address.FullName, o.Address.City, o.Address.State, o.Address.ZipCode)
	}
	fmt.Fprintf(a.out, "Total: %s\n", money(o.TotalAmount))
	return nil
}

func cmdCheckout(a *App, ctx context.Context, args []string) error {
	if !a.session.RequireAuth() {
		return nil
	}
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	addressID := fs.Uint("address", 0, "delivery address id")
	payment := fs.String("payment", "", "payment method: CARD, UPI or COD")
	fs.Parse(args)
	if *addressID == 0 || *payment == "" {
		return fmt.Errorf("both -address and -payment are required")
	}

	method := strings.ToUpper(*payment)
	switch method {
	case api.PaymentCard, api.PaymentUPI, api.PaymentCOD:
	default:
		return fmt.Errorf("payment method must be CARD, UPI or COD")
	}

	// Show the summary the way the cart page would before placing the order.
	cart, err := a.client.Cart(ctx)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		return fmt.Errorf("your cart is empty")
	}
	a.printSummary(cart.TotalPrice)

	order, err := a.client.Checkout(ctx, uint(*addressID), method)
	if err != nil {
		return err
	}
	a.store.Set(store.KeyCartCount, 0)
	fmt.Fprintf(a.out, "Order #%d placed, status %s.\n", order.ID, order.Status)
	return nil
}
