package api

import (
	"context"
	"fmt"

	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/sections"
)

func (c *Client) GetAllSections(ctx context.Context) (any, error) {
	return c.get(ctx, "sections")
}

func (c *Client) GetSection(ctx context.Context, id string) (any, error) {
	return c.get(ctx, fmt.Sprintf("sections/%s", id))
}

func (c *Client) CreateSection(ctx context.Context, input sections.CreateInput) (any, error) {
	return c.post(ctx, "sections", input)
}

func (c *Client) UpdateSection(ctx context.Context, id string, payload map[string]any) (any, error) {
	if err := requirePayload(payload, updateSectionDocsURL); err != nil {
		return nil, err
	}
	return c.patch(ctx, fmt.Sprintf("sections/%s", id), payload)
}

func (c *Client) DeleteSection(ctx context.Context, id string) (any, error) {
	return c.delete(ctx, fmt.Sprintf("sections/%s", id))
}
