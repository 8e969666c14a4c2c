package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/marketbee/shopfront/internal/pricing"
	"github.com/marketbee/shopfront/pkg/api"
	"github.com/marketbee/shopfront/pkg/store"
)

func errText(err error) string {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	if errors.Is(err, api.ErrUnauthenticated) {
		return "session expired, please log in again"
	}
	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return "cannot reach the store: " + netErr.Err.Error()
	}
	return err.Error()
}

func money(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

func reviewLine(r api.Review) string {
	return fmt.Sprintf("[%d/5] %s: %s", r.Rating, r.UserName, r.Comment)
}

func (a *App) table(write func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	write(w)
	w.Flush()
}

func (a *App) printProducts(products []api.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return
	}
	a.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tCATEGORY\tRATING")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%.1f (%d)\n",
				p.ID, p.Name, money(p.Price), p.Stock, p.CategoryName, p.AverageRating, p.ReviewCount)
		}
	})
}

func (a *App) printCart(cart *api.Cart) {
	if len(cart.Items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return
	}
	a.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ITEM\tPRODUCT\tPRICE\tQTY\tLINE TOTAL")
		for _, it := range cart.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
				it.ID, it.Product.Name, money(it.Price), it.Quantity, money(it.Price*float64(it.Quantity)))
		}
	})
	a.printSummary(cart.TotalPrice)
}

func (a *App) printOrders(orders []api.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet.")
		return
	}
	a.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tDATE\tSTATUS\tITEMS\tTOTAL")
		for _, o := range orders {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
				o.ID, o.OrderDate.Format("2006-01-02"), o.Status, len(o.Items), money(o.TotalAmount))
		}
	})
}

func (a *App) printSummary(subtotal float64) {
	sum := pricing.Summarize(subtotal)
	a.table(func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "Subtotal\t%s\n", money(sum.Subtotal))
		fmt.Fprintf(w, "Tax (18%%)\t%s\n", money(sum.Tax))
		fmt.Fprintf(w, "Shipping\tFREE\n")
		fmt.Fprintf(w, "Total\t%s\n", money(sum.Total))
	})
}

// refreshCounts updates the advisory badge counters after cart or wishlist
// mutations. Never authoritative: display only.
func (a *App) refreshCartCount(cart *api.Cart) {
	n := 0
	for _, it := range cart.Items {
		n += it.Quantity
	}
	a.store.Set(store.KeyCartCount, n)
}

func (a *App) refreshWishlistCount(n int) {
	a.store.Set(store.KeyWishlistCount, n)
}
