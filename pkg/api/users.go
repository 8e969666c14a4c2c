package api

import "context"

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := c.Get(ctx, EndpointProfile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update User) (*User, error) {
	var out User
	if err := c.Put(ctx, EndpointProfile, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Addresses(ctx context.Context) ([]Address, error) {
	var out []Address
	if err := c.Get(ctx, EndpointAddresses, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddAddress(ctx context.Context, addr Address) (*Address, error) {
	var out Address
	if err := c.Post(ctx, EndpointAddresses, addr, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAddress(ctx context.Context, id uint, addr Address) (*Address, error) {
	var out Address
	if err := c.Put(ctx, AddressPath(id), addr, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAddress(ctx context.Context, id uint) error {
	return c.Delete(ctx, AddressPath(id), nil)
}
