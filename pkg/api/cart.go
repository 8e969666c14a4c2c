package api

import "context"

func (c *Client) Cart(ctx context.Context) (*Cart, error) {
	var out Cart
	if err := c.Get(ctx, EndpointCart, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddToCart adds quantity of a product; the server merges into an existing
// line for the same product and returns the whole cart.
func (c *Client) AddToCart(ctx context.Context, productID uint, quantity int) (*Cart, error) {
	var out Cart
	body := map[string]any{"productId": productID, "quantity": quantity}
	if err := c.Post(ctx, EndpointCartAdd, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID uint, quantity int) (*Cart, error) {
	var out Cart
	body := map[string]int{"quantity": quantity}
	if err := c.Put(ctx, CartUpdatePath(itemID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveFromCart(ctx context.Context, itemID uint) (*Cart, error) {
	var out Cart
	if err := c.Delete(ctx, CartRemovePath(itemID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.Delete(ctx, EndpointCartClear, nil)
}
