package api

import "context"

func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.Get(ctx, EndpointOrders, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Order(ctx context.Context, id uint) (*Order, error) {
	var out Order
	if err := c.Get(ctx, OrderPath(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Checkout places an order from the current cart contents.
func (c *Client) Checkout(ctx context.Context, addressID uint, paymentMethod string) (*Order, error) {
	var out Order
	req := CheckoutRequest{AddressID: addressID, PaymentMethod: paymentMethod}
	if err := c.Post(ctx, EndpointCheckout, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
