package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/marketbee/shopfront/pkg/store"
)

func cmdCart(a *App, ctx context.Context, args []string) error {
	if !a.session.RequireAuth() {
		return nil
	}
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "show":
		cart, err := a.client.Cart(ctx)
		if err != nil {
			return err
		}
		a.refreshCartCount(cart)
		a.printCart(cart)
		return nil

	case "add":
		if len(args) < 1 {
			return fmt.Errorf("usage: shopctl cart add <product-id> [quantity]")
		}
		productID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		quantity := 1
		if len(args) > 1 {
			if quantity, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
		}
		cart, err := a.client.AddToCart(ctx, uint(productID), quantity)
		if err != nil {
			return err
		}
		a.refreshCartCount(cart)
		a.printCart(cart)
		return nil

	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: shopctl cart update <item-id> <quantity>")
		}
		itemID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		cart, err := a.client.UpdateCartItem(ctx, uint(itemID), quantity)
		if err != nil {
			return err
		}
		a.refreshCartCount(cart)
		a.printCart(cart)
		return nil

	case "remove":
		if len(args) < 1 {
			return fmt.Errorf("usage: shopctl cart remove <item-id>")
		}
		itemID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		cart, err := a.client.RemoveFromCart(ctx, uint(itemID))
		if err != nil {
			return err
		}
		a.refreshCartCount(cart)
		a.printCart(cart)
		return nil

	case "clear":
		if err := a.client.ClearCart(ctx); err != nil {
			return err
		}
		a.store.Set(store.KeyCartCount, 0)
		fmt.Fprintln(a.out, "Cart cleared.")
		return nil

	default:
		return fmt.Errorf("unknown cart subcommand %q", sub)
	}
}

func cmdWishlist(a *App, ctx context.Context, args []string) error {
	if !a.session.RequireAuth() {
		return nil
	}
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "show":
		entries, err := a.client.Wishlist(ctx)
		if err != nil {
			return err
		}
		a.refreshWishlistCount(len(entries))
		if len(entries) == 0 {
			fmt.Fprintln(a.out, "Your wishlist is empty.")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(a.out, "%d\t%s\t%s\n", e.Product.ID, e.Product.Name, money(e.Product.Price))
		}
		return nil

	case "add", "remove", "move":
		if len(args) < 1 {
			return fmt.Errorf("usage: shopctl wishlist %s <product-id>", sub)
		}
		productID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		switch sub {
		case "add":
			if _, err := a.client.AddToWishlist(ctx, uint(productID)); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Added to wishlist.")
		case "remove":
			if err := a.client.RemoveFromWishlist(ctx, uint(productID)); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Removed from wishlist.")
		case "move":
			if err := a.client.MoveToCart(ctx, uint(productID)); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Moved to cart.")
		}
		entries, err := a.client.Wishlist(ctx)
		if err == nil {
			a.refreshWishlistCount(len(entries))
		}
		return nil

	default:
		return fmt.Errorf("unknown wishlist subcommand %q", sub)
	}
}
