package api

import "context"

func (c *Client) ProductReviews(ctx context.Context, productID uint) ([]Review, error) {
	var out []Review
	if err := c.Get(ctx, ProductReviewsPath(productID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddReview(ctx context.Context, productID uint, rating int, comment string) (*Review, error) {
	var out Review
	body := map[string]any{"productId": productID, "rating": rating, "comment": comment}
	if err := c.Post(ctx, EndpointReviews, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReview(ctx context.Context, id uint, rating int, comment string) (*Review, error) {
	var out Review
	body := map[string]any{"rating": rating, "comment": comment}
	if err := c.Put(ctx, ReviewPath(id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReview(ctx context.Context, id uint) error {
	return c.Delete(ctx, ReviewPath(id), nil)
}
