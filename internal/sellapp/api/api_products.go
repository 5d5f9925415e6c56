package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/invoices"
)

// Products are called listings by the API.

func (c *Client) GetAllProducts(ctx context.Context) (any, error) {
	return c.get(ctx, "listings")
}

// GetAllOrdersDesc searches invoices sorted by field in descending order.
func (c *Client) GetAllOrdersDesc(ctx context.Context, field string) (any, error) {
	input := invoices.SearchInput{
		Sort: []invoices.Sort{{Field: field, Direction: invoices.SortDirectionDesc}},
	}
	return c.request(ctx, http.MethodGet, "invoices/search", input)
}

func (c *Client) GetProduct(ctx context.Context, id string) (any, error) {
	return c.get(ctx, fmt.Sprintf("listings/%s", id))
}

// CreateProduct sends payload as is. Its fields are documented by the API, see createProductDocsURL.
func (c *Client) CreateProduct(ctx context.Context, payload map[string]any) (any, error) {
	if err := requirePayload(payload, createProductDocsURL); err != nil {
		return nil, err
	}
	return c.post(ctx, "listings", payload)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, payload map[string]any) (any, error) {
	if err := requirePayload(payload, updateProductDocsURL); err != nil {
		return nil, err
	}
	return c.patch(ctx, fmt.Sprintf("listings/%s", id), payload)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) (any, error) {
	return c.delete(ctx, fmt.Sprintf("listings/%s", id))
}
