package api

import (
	"context"
	"fmt"

	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/tickets"
)

func (c *Client) GetAllTickets(ctx context.Context) (any, error) {
	return c.get(ctx, "tickets")
}

func (c *Client) GetTicket(ctx context.Context, id string) (any, error) {
	return c.get(ctx, fmt.Sprintf("tickets/%s", id))
}

func (c *Client) GetAllTicketMessages(ctx context.Context, id string) (any, error) {
	return c.get(ctx, fmt.Sprintf("tickets/%s/messages", id))
}

func (c *Client) GetTicketMessage(ctx context.Context, id, messageID string) (any, error) {
	return c.get(ctx, fmt.Sprintf("tickets/%s/messages/%s", id, messageID))
}

// RespondTicket posts a new message to the ticket. An empty author lets the API pick the default.
func (c *Client) RespondTicket(ctx context.Context, id, message string, author tickets.Author) (any, error) {
	normalized, err := normalizeAuthor(author)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, fmt.Sprintf("tickets/%s/messages", id), tickets.MessageInput{
		Content: message,
		Author:  normalized,
	})
}
