package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/AnotherFullstackDev/sellctl/internal/config"
	"github.com/AnotherFullstackDev/sellctl/internal/factories"
	"github.com/AnotherFullstackDev/sellctl/internal/keyring"
	"github.com/AnotherFullstackDev/sellctl/internal/lib"
	"github.com/AnotherFullstackDev/sellctl/internal/logger"
	"github.com/AnotherFullstackDev/sellctl/internal/output"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultConfigFile = "sellctl.yaml"

// Runtime carries what the subcommands share. Locator is filled by the root command
// right before a subcommand runs.
type Runtime struct {
	Stdin io.Reader
	// Storage overrides the OS keyring when set.
	Storage lib.CredentialsStorage
	Locator *factories.SharedServicesLocator
}

func NewRootCmd(rt *Runtime) *cobra.Command {
	var configPath, profile, outputFormat, logLevel string

	rootCmd := &cobra.Command{
		Use:           "sellctl",
		Short:         "sellctl is a CLI tool for managing a Sell.app store through its API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				if _, err := os.Stat(defaultConfigFile); err == nil {
					path = defaultConfigFile
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("checking default config file: %w", err)
				}
			}

			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if profile != "" {
				cfg, err = cfg.WithProfile(profile)
				if err != nil {
					return fmt.Errorf("selecting profile: %w", err)
				}
			}
			if outputFormat != "" {
				cfg.Output = outputFormat
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("applying flags: %w", err)
			}

			log := logger.Init(cfg.LogLevel)
			log.Debug("config loaded", zap.String("path", path), zap.String("profile", profile), zap.String("base_url", cfg.BaseURL))

			storage := rt.Storage
			if storage == nil {
				ring, err := keyring.NewService(cfg.KeyringService)
				if err != nil {
					log.Warn("keyring unavailable, api key will not be remembered", zap.Error(err))
				} else {
					storage = ring
				}
			}

			rt.Locator = factories.NewSharedServicesLocator(cfg, storage, log, rt.Stdin, cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default ./sellctl.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "Config profile to apply")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: json or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newAuthCmd(rt),
		newBlacklistsCmd(rt),
		newCouponsCmd(rt),
		newProductsCmd(rt),
		newSectionsCmd(rt),
		newFeedbackCmd(rt),
		newOrdersCmd(rt),
		newTicketsCmd(rt),
	)

	return rootCmd
}

func (rt *Runtime) factory() *factories.ServiceFactory {
	return factories.NewServiceFactory(rt.Locator)
}

func (rt *Runtime) print(cmd *cobra.Command, payload any) error {
	return output.Write(cmd.OutOrStdout(), rt.Locator.Config.Output, payload)
}

// call builds a RunE that creates an API client, runs fn and prints its result.
func (rt *Runtime) call(fn func(cmd *cobra.Command, args []string, client *api.Client) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := rt.factory().NewApiClient(cmd.Context())
		if err != nil {
			return fmt.Errorf("creating api client: %w", err)
		}

		payload, err := fn(cmd, args, client)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.CommandPath(), err)
		}
		return rt.print(cmd, payload)
	}
}
