package commands

import (
	"github.com/AnotherFullstackDev/sellctl/internal/output"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api"
	"github.com/spf13/cobra"
)

func newProductsCmd(rt *Runtime) *cobra.Command {
	productsCmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "listings"},
		Short:   "Manage product listings",
	}

	productsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all products",
			Args:  cobra.NoArgs,
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetAllProducts(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "get [id]",
			Short: "Show a product",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetProduct(cmd.Context(), args[0])
			}),
		},
		newPayloadCmd(rt, "create", "Create a product from a JSON or YAML payload", cobra.NoArgs,
			func(cmd *cobra.Command, args []string, client *api.Client, payload map[string]any) (any, error) {
				return client.CreateProduct(cmd.Context(), payload)
			}),
		newPayloadCmd(rt, "update [id]", "Update a product from a JSON or YAML payload", cobra.ExactArgs(1),
			func(cmd *cobra.Command, args []string, client *api.Client, payload map[string]any) (any, error) {
				return client.UpdateProduct(cmd.Context(), args[0], payload)
			}),
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete a product",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.DeleteProduct(cmd.Context(), args[0])
			}),
		},
	)

	return productsCmd
}

// newPayloadCmd builds a command whose request body is free-form, given with --data or --file.
// A missing payload is passed on as nil so the client reports which fields the API expects.
func newPayloadCmd(
	rt *Runtime,
	use, short string,
	argsValidator cobra.PositionalArgs,
	send func(cmd *cobra.Command, args []string, client *api.Client, payload map[string]any) (any, error),
) *cobra.Command {
	var data, file string

	payloadCmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  argsValidator,
		RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
			payload, err := output.ReadPayload(data, file)
			if err != nil {
				return nil, err
			}
			return send(cmd, args, client, payload)
		}),
	}

	payloadCmd.Flags().StringVar(&data, "data", "", "Request body as inline JSON")
	payloadCmd.Flags().StringVarP(&file, "file", "f", "", "Request body from a .json, .yaml or .yml file")

	return payloadCmd
}
