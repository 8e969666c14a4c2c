package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/marketbee/shopfront/pkg/api"
)

func cmdLogin(a *App, ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	resp, err := a.session.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", resp.FullName, resp.Role)
	return nil
}

func cmdAdminLogin(a *App, ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin-login", flag.ExitOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	resp, err := a.session.AdminLogin(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", resp.FullName, resp.Role)
	return nil
}

func cmdSignup(a *App, ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email")
	phone := fs.String("phone", "", "phone (optional)")
	password := fs.String("password", "", "password")
	fs.Parse(args)
	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("-name, -email and -password are required")
	}

	err := a.session.Signup(ctx, api.SignupRequest{
		FullName: *name,
		Email:    *email,
		Phone:    *phone,
		Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account created. Log in with 'shopctl login'.")
	return nil
}

func cmdLogout(a *App, ctx context.Context, args []string) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func cmdWhoami(a *App, ctx context.Context, args []string) error {
	if !a.session.IsLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	u, ok := a.session.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Logged in, but the stored user record is unreadable.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", u.FullName, u.Email, u.Role)
	return nil
}
