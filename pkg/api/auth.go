package api

import "context"

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.Post(ctx, EndpointLogin, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminLogin(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.Post(ctx, EndpointAdminLogin, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account. No token is issued; the caller logs in
// afterwards.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.Post(ctx, EndpointSignup, req, nil)
}
