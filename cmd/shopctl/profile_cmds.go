package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/marketbee/shopfront/pkg/api"
)

func cmdProfile(a *App, ctx context.Context, args []string) error {
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
		u, err := a.client.Profile(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s <%s>\nPhone: %s\nRole: %s\n", u.FullName, u.Email, u.Phone, u.Role)
		return nil

	case "update":
		fs := flag.NewFlagSet("profile update", flag.ExitOnError)
		name := fs.String("name", "", "new full name")
		phone := fs.String("phone", "", "new phone")
		fs.Parse(args)
		if *name == "" && *phone == "" {
			return fmt.Errorf("nothing to update, pass -name or -phone")
		}
		u, err := a.client.UpdateProfile(ctx, api.User{FullName: *name, Phone: *phone})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Profile updated: %s, phone %s\n", u.FullName, u.Phone)
		return nil

	default:
		return fmt.Errorf("unknown profile subcommand %q", sub)
	}
}

func addressFlags(fs *flag.FlagSet) *api.Address {
	addr := &api.Address{}
	fs.StringVar(&addr.FullName, "name", "", "recipient full name")
	fs.StringVar(&addr.Phone, "phone", "", "contact phone")
	fs.StringVar(&addr.AddressLine1, "line1", "", "address line 1")
	fs.StringVar(&addr.AddressLine2, "line2", "", "address line 2")
	fs.StringVar(&addr.City, "city", "", "city")
	fs.StringVar(&addr.State, "state", "", "state")
	fs.StringVar(&addr.ZipCode, "zip", "", "zip code")
	fs.StringVar(&addr.Country, "country", "", "country")
	return addr
}

func cmdAddresses(a *App, ctx context.Context, args []string) error {
	if !a.session.RequireAuth() {
		return nil
	}
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		addresses, err := a.client.Addresses(ctx)
		if err != nil {
			return err
		}
		if len(addresses) == 0 {
			fmt.Fprintln(a.out, "No saved addresses.")
			return nil
		}
		a.table(func(w *tabwriter.Writer) {
			fmt.Fprintln(w, "ID\tNAME\tCITY\tSTATE\tZIP")
			for _, ad := range addresses {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", ad.ID, ad.FullName, ad.City, ad.State, ad.ZipCode)
			}
		})
		return nil

	case "add":
		fs := flag.NewFlagSet("addresses add", flag.ExitOnError)
		addr := addressFlags(fs)
		fs.Parse(args)
		if addr.FullName == "" || addr.AddressLine1 == "" || addr.City == "" {
			return fmt.Errorf("-name, -line1 and -city are required")
		}
		saved, err := a.client.AddAddress(ctx, *addr)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Address %d saved.\n", saved.ID)
		return nil

	case "update":
		if len(args) < 1 {
			return fmt.Errorf("usage: shopctl addresses update <id> [flags]")
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid address id %q", args[0])
		}
		fs := flag.NewFlagSet("addresses update", flag.ExitOnError)
		addr := addressFlags(fs)
		fs.Parse(args[1:])
		saved, err := a.client.UpdateAddress(ctx, uint(id), *addr)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Address %d updated.\n", saved.ID)
		return nil

	case "delete":
		if len(args) < 1 {
			return fmt.Errorf("usage: shopctl addresses delete <id>")
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid address id %q", args[0])
		}
		if err := a.client.DeleteAddress(ctx, uint(id)); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Address deleted.")
		return nil

	default:
		return fmt.Errorf("unknown addresses subcommand %q", sub)
	}
}

func cmdReviews(a *App, ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		if len(args) < 1 {
			return fmt.Errorf("usage: shopctl reviews list <product-id>")
		}
		productID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		reviews, err := a.client.ProductReviews(ctx, uint(productID))
		if err != nil {
			return err
		}
		if len(reviews) == 0 {
			fmt.Fprintln(a.out, "No reviews yet.")
			return nil
		}
		for _, r := range reviews {
			fmt.Fprintf(a.out, "#%d %s\n", r.ID, reviewLine(r))
		}
		return nil

	case "add":
		if !a.session.RequireAuth() {
			return nil
		}
		fs := flag.NewFlagSet("reviews add", flag.ExitOnError)
		productID := fs.Uint("product", 0, "product id")
		rating := fs.Int("rating", 0, "rating, 1-5")
		comment := fs.String("comment", "", "review text")
		fs.Parse(args)
		if *productID == 0 || *rating == 0 {
			return fmt.Errorf("-product and -rating are required")
		}
		r, err := a.client.AddReview(ctx, uint(*productID), *rating, *comment)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Review %d posted.\n", r.ID)
		return nil

	case "update":
		if !a.session.RequireAuth() {
			return nil
		}
		if len(args) < 1 {
			return fmt.Errorf("usage: shopctl reviews update <id> [flags]")
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid review id %q", args[0])
		}
		fs := flag.NewFlagSet("reviews update", flag.ExitOnError)
		rating := fs.Int("rating", 0, "rating, 1-5")
		comment := fs.String("comment", "", "review text")
		fs.Parse(args[1:])
		if *rating == 0 {
			return fmt.Errorf("-rating is required")
		}
		if _, err := a.client.UpdateReview(ctx, uint(id), *rating, *comment); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Review updated.")
		return nil

	case "delete":
		if !a.session.RequireAuth() {
			return nil
		}
		if len(args) < 1 {
			return fmt.Errorf("usage: shopctl reviews delete <id>")
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid review id %q", args[0])
		}
		if err := a.client.DeleteReview(ctx, uint(id)); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Review deleted.")
		return nil

	default:
		return fmt.Errorf("unknown reviews subcommand %q", sub)
	}
}
