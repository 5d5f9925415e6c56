package api

import (
	"context"
	"fmt"

	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/coupons"
)

func (c *Client) GetAllCoupons(ctx context.Context) (any, error) {
	return c.get(ctx, "coupons")
}

func (c *Client) CreateCoupon(ctx context.Context, input coupons.Input) (any, error) {
	return c.post(ctx, "coupons", input)
}

func (c *Client) GetCoupon(ctx context.Context, id string) (any, error) {
	return c.get(ctx, fmt.Sprintf("coupons/%s", id))
}

func (c *Client) UpdateCoupon(ctx context.Context, id string, input coupons.Input) (any, error) {
	return c.patch(ctx, fmt.Sprintf("coupons/%s", id), input)
}

func (c *Client) DeleteCoupon(ctx context.Context, id string) (any, error) {
	return c.delete(ctx, fmt.Sprintf("coupons/%s", id))
}
