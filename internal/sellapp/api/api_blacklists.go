package api

import (
	"context"
	"fmt"

	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/blacklists"
)

func (c *Client) GetAllBlacklists(ctx context.Context) (any, error) {
	return c.get(ctx, "blacklists")
}

func (c *Client) GetBlacklist(ctx context.Context, id string) (any, error) {
	return c.get(ctx, fmt.Sprintf("blacklists/%s", id))
}

// Blacklist bans an email, IP or country. The type is matched case-insensitively and sent upper-cased.
func (c *Client) Blacklist(ctx context.Context, input blacklists.Input) (any, error) {
	t, err := normalizeBlacklistType(input.Type)
	if err != nil {
		return nil, err
	}
	input.Type = t
	return c.post(ctx, "blacklists", input)
}

func (c *Client) UpdateBlacklist(ctx context.Context, id string, input blacklists.Input) (any, error) {
	t, err := normalizeBlacklistType(input.Type)
	if err != nil {
		return nil, err
	}
	input.Type = t
	return c.patch(ctx, fmt.Sprintf("blacklists/%s", id), input)
}

func (c *Client) RemoveBlacklist(ctx context.Context, id string) (any, error) {
	return c.delete(ctx, fmt.Sprintf("blacklists/%s", id))
}
