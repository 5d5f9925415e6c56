package commands

import (
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/sections"
	"github.com/spf13/cobra"
)

func newSectionsCmd(rt *Runtime) *cobra.Command {
	sectionsCmd := &cobra.Command{
		Use:     "sections",
		Aliases: []string{"section"},
		Short:   "Manage product sections",
	}

	sectionsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all sections",
			Args:  cobra.NoArgs,
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetAllSections(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "get [id]",
			Short: "Show a section",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetSection(cmd.Context(), args[0])
			}),
		},
		newSectionCreateCmd(rt),
		newPayloadCmd(rt, "update [id]", "Update a section from a JSON or YAML payload", cobra.ExactArgs(1),
			func(cmd *cobra.Command, args []string, client *api.Client, payload map[string]any) (any, error) {
				return client.UpdateSection(cmd.Context(), args[0], payload)
			}),
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete a section",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.DeleteSection(cmd.Context(), args[0])
			}),
		},
	)

	return sectionsCmd
}

func newSectionCreateCmd(rt *Runtime) *cobra.Command {
	var input sections.CreateInput

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a section",
		Args:  cobra.NoArgs,
		RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
			return client.CreateSection(cmd.Context(), input)
		}),
	}

	createCmd.Flags().StringVar(&input.Title, "title", "", "Section title")
	createCmd.Flags().BoolVar(&input.Hidden, "hidden", false, "Hide the section from the storefront")
	createCmd.Flags().IntVar(&input.Order, "order", 0, "Position of the section")
	_ = createCmd.MarkFlagRequired("title")

	return createCmd
}
