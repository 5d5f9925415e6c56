package commands

import (
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/tickets"
	"github.com/spf13/cobra"
)

func newTicketsCmd(rt *Runtime) *cobra.Command {
	ticketsCmd := &cobra.Command{
		Use:     "tickets",
		Aliases: []string{"ticket"},
		Short:   "Read and answer support tickets",
	}

	ticketsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all tickets",
			Args:  cobra.NoArgs,
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetAllTickets(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "get [id]",
			Short: "Show a ticket",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetTicket(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "messages [id]",
			Short: "List the messages of a ticket",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetAllTicketMessages(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "message [id] [message-id]",
			Short: "Show a single ticket message",
			Args:  cobra.ExactArgs(2),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetTicketMessage(cmd.Context(), args[0], args[1])
			}),
		},
		newTicketRespondCmd(rt),
	)

	return ticketsCmd
}

func newTicketRespondCmd(rt *Runtime) *cobra.Command {
	var message, author string

	respondCmd := &cobra.Command{
		Use:   "respond [id]",
		Short: "Post a message to a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
			return client.RespondTicket(cmd.Context(), args[0], message, tickets.Author(author))
		}),
	}

	respondCmd.Flags().StringVarP(&message, "message", "m", "", "Message text")
	respondCmd.Flags().StringVar(&author, "author", "", "Message author: CUSTOMER or STORE")
	_ = respondCmd.MarkFlagRequired("message")

	return respondCmd
}
