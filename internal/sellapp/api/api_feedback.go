package api

import (
	"context"
	"fmt"
)

func (c *Client) GetAllFeedback(ctx context.Context) (any, error) {
	return c.get(ctx, "feedback")
}

func (c *Client) GetFeedback(ctx context.Context, id string) (any, error) {
	return c.get(ctx, fmt.Sprintf("feedback/%s", id))
}

func (c *Client) ReplyFeedback(ctx context.Context, id, message string) (any, error) {
	return c.patch(ctx, fmt.Sprintf("feedback/%s", id), map[string]string{"reply": message})
}
