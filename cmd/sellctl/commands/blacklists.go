package commands

import (
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/blacklists"
	"github.com/spf13/cobra"
)

func newBlacklistsCmd(rt *Runtime) *cobra.Command {
	blacklistsCmd := &cobra.Command{
		Use:     "blacklists",
		Aliases: []string{"blacklist"},
		Short:   "Manage banned emails, IPs and countries",
	}

	blacklistsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all blacklist entries",
			Args:  cobra.NoArgs,
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetAllBlacklists(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "get [id]",
			Short: "Show a blacklist entry",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetBlacklist(cmd.Context(), args[0])
			}),
		},
		newBlacklistWriteCmd(rt, "create", "Blacklist an email, IP or country", cobra.NoArgs,
			func(cmd *cobra.Command, args []string, client *api.Client, input blacklists.Input) (any, error) {
				return client.Blacklist(cmd.Context(), input)
			}),
		newBlacklistWriteCmd(rt, "update [id]", "Update a blacklist entry", cobra.ExactArgs(1),
			func(cmd *cobra.Command, args []string, client *api.Client, input blacklists.Input) (any, error) {
				return client.UpdateBlacklist(cmd.Context(), args[0], input)
			}),
		&cobra.Command{
			Use:   "remove [id]",
			Short: "Remove a blacklist entry",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.RemoveBlacklist(cmd.Context(), args[0])
			}),
		},
	)

	return blacklistsCmd
}

func newBlacklistWriteCmd(
	rt *Runtime,
	use, short string,
	argsValidator cobra.PositionalArgs,
	send func(cmd *cobra.Command, args []string, client *api.Client, input blacklists.Input) (any, error),
) *cobra.Command {
	var input blacklists.Input
	var blacklistType string

	writeCmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  argsValidator,
		RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
			input.Type = blacklists.Type(blacklistType)
			return send(cmd, args, client, input)
		}),
	}

	writeCmd.Flags().StringVar(&blacklistType, "type", "", "Blacklist type: EMAIL, IP or COUNTRY")
	writeCmd.Flags().StringVar(&input.Data, "data", "", "Email, IP or country code to blacklist")
	writeCmd.Flags().StringVar(&input.Description, "description", "", "Why the entry is blacklisted")
	_ = writeCmd.MarkFlagRequired("type")
	_ = writeCmd.MarkFlagRequired("data")

	return writeCmd
}
