package api

import (
	"context"
	"net/url"
)

func (c *Client) Products(ctx context.Context, filter ProductFilter) ([]Product, error) {
	path := EndpointProducts
	if q := filter.Query(); q != "" {
		path += "?" + q
	}
	var out []Product
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id uint) (*Product, error) {
	var out Product
	if err := c.Get(ctx, ProductPath(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	var out []Product
	path := EndpointProductSearch + "?q=" + url.QueryEscape(query)
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, categoryID uint) ([]Product, error) {
	var out []Product
	if err := c.Get(ctx, ProductsByCategoryPath(categoryID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.Get(ctx, EndpointCategories, &out); err != nil {
		return nil, err
	}
	return out, nil
}
