// Package api is the typed client for the storefront REST API. A Client
// builds JSON requests against a fixed base URL, attaches the stored bearer
// token on everything outside /auth/, and maps failures onto a small error
// taxonomy: NetworkError, ErrUnauthenticated and RequestError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marketbee/shopfront/pkg/store"
)

type Client struct {
	baseURL    string
	store      store.Store
	httpClient *http.Client
	log        *slog.Logger

	// onUnauthenticated fires after a 401 has cleared the session. The CLI
	// uses it to tell the user to log in again; a UI would redirect.
	onUnauthenticated func()
}

func New(baseURL string, st store.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   st,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: slog.Default(),
	}
}

func (c *Client) OnUnauthenticated(fn func()) { c.onUnauthenticated = fn }

func (c *Client) SetLogger(l *slog.Logger) { c.log = l }

// SetHTTPClient swaps the underlying transport, mainly for tests.
func (c *Client) SetHTTPClient(h *http.Client) { c.httpClient = h }

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	return c.DoWithHeaders(ctx, method, path, nil, body, out)
}

// DoWithHeaders issues one request. A non-nil body is JSON-encoded. A non-nil
// out receives the decoded 2xx body; an empty 2xx body is success with out
// left untouched. On 401 the stored session is cleared before the error is
// returned, so isLoggedIn-style checks go false immediately.
func (c *Client) DoWithHeaders(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Status: 0, Message: "encode request body: " + err.Error()}
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return &NetworkError{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if tok := store.Token(c.store); tok != "" && !isAuthPath(path) {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.store.Clear()
		c.log.Warn("session rejected, cleared stored credentials", "path", path)
		if c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
		return ErrUnauthenticated
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RequestError{Status: resp.StatusCode, Message: "decode response: " + err.Error()}
	}
	return nil
}

func isAuthPath(path string) bool {
	return strings.Contains(path, "/auth/")
}

// errorMessage pulls the "error" field out of a failure body, falling back
// to a generic message when the body is not the expected JSON shape.
func errorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return "request failed"
}
