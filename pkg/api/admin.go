package api

import "context"

// Admin operations. The client does not gate these on role; the server
// rejects non-admin tokens and the 401/403 handling above applies.

func (c *Client) AdminProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.Get(ctx, EndpointAdminProducts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminCreateProduct(ctx context.Context, p Product) (*Product, error) {
	var out Product
	if err := c.Post(ctx, EndpointAdminProducts, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateProduct(ctx context.Context, id uint, p Product) (*Product, error) {
	var out Product
	if err := c.Put(ctx, AdminProductPath(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteProduct(ctx context.Context, id uint) error {
	return c.Delete(ctx, AdminProductPath(id), nil)
}

func (c *Client) AdminOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.Get(ctx, EndpointAdminOrders, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminUpdateOrderStatus(ctx context.Context, id uint, status string) (*Order, error) {
	var out Order
	body := map[string]string{"status": status}
	if err := c.Put(ctx, AdminOrderStatusPath(id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminAnalytics(ctx context.Context) (*Analytics, error) {
	var out Analytics
	if err := c.Get(ctx, EndpointAdminAnalytics, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
