// Package session tracks the authenticated identity. It is a thin state
// machine over the store: anonymous until a login persists a token and user
// record, anonymous again after logout or after any 401 clears the store.
package session

import (
	"context"
	"log/slog"

	"github.com/marketbee/shopfront/pkg/api"
	"github.com/marketbee/shopfront/pkg/store"
)

type Session struct {
	client *api.Client
	store  store.Store
	log    *slog.Logger

	// onRedirect fires when RequireAuth is called while anonymous.
	onRedirect func()
}

func New(client *api.Client, st store.Store) *Session {
	return &Session{client: client, store: st, log: slog.Default()}
}

func (s *Session) OnRedirect(fn func()) { s.onRedirect = fn }

func (s *Session) SetLogger(l *slog.Logger) { s.log = l }

// Login authenticates and persists the issued token and user record.
// Failures from the client propagate unchanged and leave the session
// anonymous.
func (s *Session) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.persist(resp)
	s.log.Info("logged in", "email", resp.Email, "role", resp.Role)
	return resp, nil
}

// AdminLogin hits the admin login endpoint. It does not check the returned
// role; IsAdmin reads it back from the stored record.
func (s *Session) AdminLogin(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	resp, err := s.client.AdminLogin(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.persist(resp)
	s.log.Info("logged in", "email", resp.Email, "role", resp.Role)
	return resp, nil
}

// Signup creates an account. No token is issued, so the session stays as it
// was; the caller logs in afterwards.
func (s *Session) Signup(ctx context.Context, req api.SignupRequest) error {
	return s.client.Signup(ctx, req)
}

// Logout wipes all stored state. Idempotent: logging out while anonymous is
// a no-op.
func (s *Session) Logout() {
	s.store.Clear()
}

// IsLoggedIn is a token presence check only. Token staleness is discovered
// reactively, via a 401 on some later call.
func (s *Session) IsLoggedIn() bool {
	return store.Token(s.store) != ""
}

// CurrentUser returns the stored user record, false when absent or corrupt.
func (s *Session) CurrentUser() (*api.LoginResponse, bool) {
	var u api.LoginResponse
	if !s.store.Get(store.KeyUserData, &u) {
		return nil, false
	}
	return &u, true
}

// IsAdmin is false whenever the session is anonymous, whatever stale user
// data might still be readable.
func (s *Session) IsAdmin() bool {
	if !s.IsLoggedIn() {
		return false
	}
	u, ok := s.CurrentUser()
	return ok && u.Role == api.RoleAdmin
}

// RequireAuth gates protected operations. When anonymous it fires the
// redirect hook and returns false; it never mutates session state itself.
func (s *Session) RequireAuth() bool {
	if s.IsLoggedIn() {
		return true
	}
	if s.onRedirect != nil {
		s.onRedirect()
	}
	return false
}

func (s *Session) persist(resp *api.LoginResponse) {
	s.store.Set(store.KeyAuthToken, resp.Token)
	s.store.Set(store.KeyUserData, resp)
}
