package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marketbee/shopfront/pkg/store"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *store.MemStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	st := store.NewMemStore()
	return New(srv.URL, st), st
}

func TestBearerAttachedOutsideAuthPaths(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string
	client, st := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	})
	st.Set(store.KeyAuthToken, "tok-123")

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/cart", &out))
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.NotEmpty(t, gotRequestID)
}

func TestNoBearerOnAuthEndpoints(t *testing.T) {
	var gotAuth string
	client, st := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	st.Set(store.KeyAuthToken, "stale-token")

	var out map[string]any
	require.NoError(t, client.Post(context.Background(), EndpointLogin, map[string]string{}, &out))
	require.Empty(t, gotAuth)
}

func TestUnauthorizedClearsStoreAndSignals(t *testing.T) {
	client, st := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"whatever the body says"}`))
	})
	st.Set(store.KeyAuthToken, "expired")
	st.Set(store.KeyUserData, map[string]string{"role": "ADMIN"})

	signalled := false
	client.OnUnauthenticated(func() { signalled = true })

	err := client.Get(context.Background(), "/cart", nil)
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.True(t, signalled)
	require.Equal(t, "", store.Token(st))
	var u map[string]string
	require.False(t, st.Get(store.KeyUserData, &u))
}

func TestRequestErrorCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Cart is empty"})
	})

	err := client.Post(context.Background(), "/orders/checkout", map[string]any{}, nil)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusBadRequest, reqErr.Status)
	require.Equal(t, "Cart is empty", reqErr.Message)
}

func TestRequestErrorFallsBackOnUnparsableBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	})

	err := client.Get(context.Background(), "/products", nil)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "request failed", reqErr.Message)
}

func TestEmptySuccessBodyIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var out map[string]any
	require.NoError(t, client.Delete(context.Background(), EndpointCartClear, &out))
	require.Nil(t, out)
}

func TestNetworkErrorIsDistinct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	st := store.NewMemStore()
	client := New(srv.URL, st)
	srv.Close() // connection refused from here on

	err := client.Get(context.Background(), "/products", nil)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	var reqErr *RequestError
	require.False(t, errors.As(err, &reqErr))
	require.NotErrorIs(t, err, ErrUnauthenticated)
}

func TestBodySerialized(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	})

	body := map[string]any{"productId": 7, "quantity": 1}
	require.NoError(t, client.Post(context.Background(), EndpointCartAdd, body, nil))
	require.Equal(t, float64(7), gotBody["productId"])
	require.Equal(t, float64(1), gotBody["quantity"])
}
