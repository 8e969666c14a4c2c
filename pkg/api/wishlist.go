package api

import "context"

func (c *Client) Wishlist(ctx context.Context) ([]WishlistEntry, error) {
	var out []WishlistEntry
	if err := c.Get(ctx, EndpointWishlist, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddToWishlist(ctx context.Context, productID uint) (*WishlistEntry, error) {
	var out WishlistEntry
	if err := c.Post(ctx, WishlistAddPath(productID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveFromWishlist(ctx context.Context, productID uint) error {
	return c.Delete(ctx, WishlistRemovePath(productID), nil)
}

// MoveToCart removes the product from the wishlist and adds it to the cart
// in one server-side step.
func (c *Client) MoveToCart(ctx context.Context, productID uint) error {
	return c.Post(ctx, WishlistMoveToCartPath(productID), nil, nil)
}
