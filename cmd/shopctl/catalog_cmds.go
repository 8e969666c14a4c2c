package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/marketbee/shopfront/pkg/api"
)

func cmdProducts(a *App, ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	category := fs.Uint("category", 0, "filter by category id")
	sortBy := fs.String("sort", "", "price_asc, price_desc or name")
	minPrice := fs.Float64("min", 0, "minimum price")
	maxPrice := fs.Float64("max", 0, "maximum price")
	fs.Parse(args)

	products, err := a.client.Products(ctx, api.ProductFilter{
		CategoryID: uint(*category),
		SortBy:     *sortBy,
		MinPrice:   *minPrice,
		MaxPrice:   *maxPrice,
	})
	if err != nil {
		return err
	}
	a.printProducts(products)
	return nil
}

func cmdProduct(a *App, ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: shopctl product <id>")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	p, err := a.client.Product(ctx, uint(id))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\n%s\n", p.Name, p.Description)
	fmt.Fprintf(a.out, "Price: %s  Stock: %d  Rating: %.1f (%d reviews)\n",
		money(p.Price), p.Stock, p.AverageRating, p.ReviewCount)

	reviews, err := a.client.ProductReviews(ctx, uint(id))
	if err != nil {
		return err
	}
	for _, r := range reviews {
		fmt.Fprintf(a.out, "  %s\n", reviewLine(r))
	}
	return nil
}

func cmdSearch(a *App, ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: shopctl search <query>")
	}
	products, err := a.client.SearchProducts(ctx, args[0])
	if err != nil {
		return err
	}
	a.printProducts(products)
	return nil
}

func cmdCategories(a *App, ctx context.Context, args []string) error {
	categories, err := a.client.Categories(ctx)
	if err != nil {
		return err
	}
	a.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tNAME")
		for _, c := range categories {
			fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
		}
	})
	return nil
}
