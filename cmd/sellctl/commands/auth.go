package commands

import (
	"context"
	"fmt"

	"github.com/AnotherFullstackDev/sellctl/internal/lib"
	"github.com/spf13/cobra"
)

func newAuthCmd(rt *Runtime) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the Sell.app API key",
	}

	authCmd.AddCommand(newAuthLoginCmd(rt), newAuthLogoutCmd(rt), newAuthCheckCmd(rt))

	return authCmd
}

func newAuthLoginCmd(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Validate an API key and store it in the keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			storage := rt.Locator.CredentialsStorage
			if storage == nil {
				return fmt.Errorf("no keyring available to store the api key")
			}

			apiKey, err := lib.RequestSecretInput(rt.Locator.Stdin, cmd.ErrOrStderr(), "Please provide Sell.app API Key")
			if err != nil {
				return err
			}
			if apiKey == "" {
				return fmt.Errorf("api key must not be empty: %w", lib.BadUserInputError)
			}

			if err := checkKey(cmd.Context(), rt, apiKey); err != nil {
				return err
			}

			if err := storage.Set(lib.SellAppApiSecretKey, apiKey, lib.KeyExtras{Label: lib.SellAppApiSecretLabel}); err != nil {
				return fmt.Errorf("storing api key: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "API key stored")
			return err
		},
	}
}

func newAuthLogoutCmd(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			storage := rt.Locator.CredentialsStorage
			if storage == nil {
				return fmt.Errorf("no keyring available")
			}
			if err := storage.Remove(lib.SellAppApiSecretKey); err != nil {
				return fmt.Errorf("removing api key: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "API key removed")
			return err
		},
	}
}

func newAuthCheckCmd(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the configured API key is accepted",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey, err := rt.factory().ApiKey()
			if err != nil {
				return err
			}
			if err := checkKey(cmd.Context(), rt, apiKey); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "API key is valid")
			return err
		},
	}
}

// checkKey always calls the API, whatever validate_key says.
func checkKey(ctx context.Context, rt *Runtime, apiKey string) error {
	_, err := rt.factory().NewApiClientWithKey(ctx, apiKey, true)
	return err
}
