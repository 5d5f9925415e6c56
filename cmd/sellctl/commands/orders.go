package commands

import (
	"fmt"

	"github.com/AnotherFullstackDev/sellctl/internal/output"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/invoices"
	"github.com/spf13/cobra"
)

func newOrdersCmd(rt *Runtime) *cobra.Command {
	ordersCmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order", "invoices"},
		Short:   "Manage orders (invoices)",
	}

	ordersCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all orders",
			Args:  cobra.NoArgs,
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetAllOrders(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "get [id]",
			Short: "Show an order",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetOrder(cmd.Context(), args[0])
			}),
		},
		newOrdersSearchCmd(rt),
		newOrdersCreateCmd(rt),
		newOrdersReplaceCmd(rt),
		&cobra.Command{
			Use:   "pay [id]",
			Short: "Create a checkout payment for an order",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.CreatePayment(cmd.Context(), args[0])
			}),
		},
	)

	return ordersCmd
}

func newOrdersSearchCmd(rt *Runtime) *cobra.Command {
	var field string

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "List orders sorted by a field in descending order",
		Args:  cobra.NoArgs,
		RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
			return client.GetAllOrdersDesc(cmd.Context(), field)
		}),
	}
	searchCmd.Flags().StringVar(&field, "sort-field", "created_at", "Field to sort by")

	return searchCmd
}

func newOrdersCreateCmd(rt *Runtime) *cobra.Command {
	var input invoices.CreateInput
	var products string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice",
		Args:  cobra.NoArgs,
		RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
			parsed, err := output.ReadValue(products)
			if err != nil {
				return nil, fmt.Errorf("reading products: %w", err)
			}
			input.Products = parsed
			return client.CreateInvoice(cmd.Context(), input)
		}),
	}

	createCmd.Flags().StringVar(&input.CustomerEmail, "email", "", "Email of the customer placing the order")
	createCmd.Flags().StringVar(&input.Total, "total", "", "Total amount to pay")
	createCmd.Flags().StringVar(&input.PaymentMethod, "payment-method", "", "Payment gateway to process the order with")
	createCmd.Flags().StringVar(&input.Coupon, "coupon", "", "Coupon code to apply")
	createCmd.Flags().StringVar(&products, "products", "", "Products as inline JSON")
	_ = createCmd.MarkFlagRequired("email")

	return createCmd
}

func newOrdersReplaceCmd(rt *Runtime) *cobra.Command {
	var listings string

	replaceCmd := &cobra.Command{
		Use:   "replace [id]",
		Short: "Issue a replacement for an order",
		Args:  cobra.ExactArgs(1),
		RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
			parsed, err := output.ReadValue(listings)
			if err != nil {
				return nil, fmt.Errorf("reading listings: %w", err)
			}

			var items []any
			if parsed != nil {
				var ok bool
				if items, ok = parsed.([]any); !ok {
					return nil, fmt.Errorf("listings must be a json array, got %T", parsed)
				}
			}
			return client.IssueReplacement(cmd.Context(), args[0], items)
		}),
	}
	replaceCmd.Flags().StringVar(&listings, "listings", "", "Listings to replace as a JSON array")

	return replaceCmd
}
