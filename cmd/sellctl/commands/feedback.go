package commands

import (
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(rt *Runtime) *cobra.Command {
	var message string

	replyCmd := &cobra.Command{
		Use:   "reply [id]",
		Short: "Reply to a feedback entry",
		Args:  cobra.ExactArgs(1),
		RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
			return client.ReplyFeedback(cmd.Context(), args[0], message)
		}),
	}
	replyCmd.Flags().StringVarP(&message, "message", "m", "", "Reply text")
	_ = replyCmd.MarkFlagRequired("message")

	feedbackCmd := &cobra.Command{
		Use:   "feedback",
		Short: "Read and answer customer feedback",
	}

	feedbackCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all feedback",
			Args:  cobra.NoArgs,
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetAllFeedback(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "get [id]",
			Short: "Show a feedback entry",
			Args:  cobra.ExactArgs(1),
			RunE: rt.call(func(cmd *cobra.Command, args []string, client *api.Client) (any, error) {
				return client.GetFeedback(cmd.Context(), args[0])
			}),
		},
		replyCmd,
	)

	return feedbackCmd
}
