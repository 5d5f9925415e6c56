package api

import (
	"context"
	"fmt"

	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/invoices"
)

// Orders are called invoices by the API.

func (c *Client) GetAllOrders(ctx context.Context) (any, error) {
	return c.get(ctx, "invoices")
}

func (c *Client) GetOrder(ctx context.Context, id string) (any, error) {
	return c.get(ctx, fmt.Sprintf("invoices/%s", id))
}

func (c *Client) CreateInvoice(ctx context.Context, input invoices.CreateInput) (any, error) {
	return c.post(ctx, "invoices", input)
}

// IssueReplacement sends an empty listings array when listings is nil.
func (c *Client) IssueReplacement(ctx context.Context, id string, listings []any) (any, error) {
	if listings == nil {
		listings = []any{}
	}
	return c.patch(ctx, fmt.Sprintf("invoices/%s/issue-replacement", id), invoices.ReplacementInput{Listings: listings})
}

func (c *Client) CreatePayment(ctx context.Context, id string) (any, error) {
	return c.post(ctx, fmt.Sprintf("invoices/%s/checkout", id), nil)
}
