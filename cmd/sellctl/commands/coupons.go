package commands

import (
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/coupons"
	"github.com/spf13/cobra"
)

func newCouponsCmd(rt *Runtime) *cobra.Command {
	couponsCmd := &cobra.Command{
		Use:     "coupons",
		Aliases: []string{"coupon"},
		Short:   "Manage discount coupons",
	}

	couponsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all coupons",
			Args:  cobra.NoArgs,
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetAllCoupons(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "get [id]",
			Short: "Show a coupon",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetCoupon(cmd.Context(), args[0])
			}),
		},
		newCouponWriteCmd(rt, "create", "Create a coupon", cobra.NoArgs,
			func(cmd *cobra.Command, args []string, client *api.Client, input coupons.Input) (any, error) {
				return client.CreateCoupon(cmd.Context(), input)
			}),
		newCouponWriteCmd(rt, "update [id]", "Update a coupon", cobra.ExactArgs(1),
			func(cmd *cobra.Command, args []string, client *api.Client, input coupons.Input) (any, error) {
				return client.UpdateCoupon(cmd.Context(), args[0], input)
			}),
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete a coupon",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.DeleteCoupon(cmd.Context(), args[0])
			}),
		},
	)

	return couponsCmd
}

func newCouponWriteCmd(
	rt *Runtime,
	use, short string,
	argsValidator cobra.PositionalArgs,
	send func(cmd *cobra.Command, args []string, client *api.Client, input coupons.Input) (any, error),
) *cobra.Command {
	var input coupons.Input
	var limit int
	var expiresAt string

	writeCmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  argsValidator,
		RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
			// unset optional fields are sent as null
			if cmd.Flags().Changed("limit") {
				input.Limit = &limit
			}
			if cmd.Flags().Changed("expires-at") {
				input.ExpiresAt = &expiresAt
			}
			return send(cmd, args, client, input)
		}),
	}

	writeCmd.Flags().StringVar(&input.Code, "code", "", "Coupon code customers enter")
	writeCmd.Flags().StringVar(&input.Type, "type", "", "Discount type, e.g. PERCENTAGE or FIXED")
	writeCmd.Flags().StringVar(&input.Discount, "discount", "", "Discount amount")
	writeCmd.Flags().BoolVar(&input.StoreWide, "store-wide", false, "Apply the coupon to every product")
	writeCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of uses")
	writeCmd.Flags().StringVar(&expiresAt, "expires-at", "", "Expiry date")
	_ = writeCmd.MarkFlagRequired("code")

	return writeCmd
}
