package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marketbee/shopfront/internal/fixture"
	"github.com/marketbee/shopfront/pkg/api"
	"github.com/marketbee/shopfront/pkg/session"
	"github.com/marketbee/shopfront/pkg/store"
)

func newSession(t *testing.T) (*session.Session, *store.MemStore) {
	t.Helper()
	db, err := fixture.OpenDB("")
	require.NoError(t, err)
	require.NoError(t, fixture.Seed(db))

	ts := httptest.NewServer(fixture.NewServer(db, []byte("test-secret"), nil).Routes())
	t.Cleanup(ts.Close)

	st := store.NewMemStore()
	return session.New(api.New(ts.URL+"/api", st), st), st
}

func TestLoginPersistsIdentity(t *testing.T) {
	sess, st := newSession(t)
	require.False(t, sess.IsLoggedIn())

	resp, err := sess.Login(context.Background(), "amit@shopfront.test", "customer123")
	require.NoError(t, err)
	require.Equal(t, resp.Token, store.Token(st))

	require.True(t, sess.IsLoggedIn())
	u, ok := sess.CurrentUser()
	require.True(t, ok)
	require.Equal(t, "Amit Kumar", u.FullName)
	require.False(t, sess.IsAdmin())
}

func TestFailedLoginStaysAnonymous(t *testing.T) {
	sess, st := newSession(t)

	_, err := sess.Login(context.Background(), "amit@shopfront.test", "wrong")
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)

	require.False(t, sess.IsLoggedIn())
	require.Equal(t, "", store.Token(st))
}

func TestAdminLogin(t *testing.T) {
	sess, _ := newSession(t)

	_, err := sess.AdminLogin(context.Background(), "admin@shopfront.test", "admin123")
	require.NoError(t, err)
	require.True(t, sess.IsAdmin())
}

func TestSignupDoesNotLogIn(t *testing.T) {
	sess, _ := newSession(t)

	err := sess.Signup(context.Background(), api.SignupRequest{
		FullName: "Priya Sharma",
		Email:    "priya@shopfront.test",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	require.False(t, sess.IsLoggedIn())
}

func TestLogoutIsIdempotent(t *testing.T) {
	sess, st := newSession(t)
	_, err := sess.Login(context.Background(), "amit@shopfront.test", "customer123")
	require.NoError(t, err)

	sess.Logout()
	require.False(t, sess.IsLoggedIn())
	_, ok := sess.CurrentUser()
	require.False(t, ok)

	sess.Logout()
	require.False(t, sess.IsLoggedIn())
	require.Equal(t, "", store.Token(st))
}

func TestIsAdminIgnoresStaleUserData(t *testing.T) {
	sess, st := newSession(t)
	_, err := sess.AdminLogin(context.Background(), "admin@shopfront.test", "admin123")
	require.NoError(t, err)
	require.True(t, sess.IsAdmin())

	// Token gone but the user record lingers: still not an admin.
	st.Remove(store.KeyAuthToken)
	require.False(t, sess.IsAdmin())
}

func TestAnonymousGateSkipsRequest(t *testing.T) {
	var hits int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(ts.Close)

	st := store.NewMemStore()
	client := api.New(ts.URL, st)
	sess := session.New(client, st)

	// The gate comes first; while anonymous no request goes out.
	if sess.RequireAuth() {
		_, err := client.AddToCart(context.Background(), 7, 1)
		require.NoError(t, err)
	}
	require.Zero(t, hits)
}

func TestRequireAuth(t *testing.T) {
	sess, _ := newSession(t)

	redirected := false
	sess.OnRedirect(func() { redirected = true })

	require.False(t, sess.RequireAuth())
	require.True(t, redirected)

	_, err := sess.Login(context.Background(), "amit@shopfront.test", "customer123")
	require.NoError(t, err)

	redirected = false
	require.True(t, sess.RequireAuth())
	require.False(t, redirected)
}
