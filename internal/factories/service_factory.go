package factories

import (
	"context"
	"fmt"

	"github.com/AnotherFullstackDev/sellctl/internal/lib"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api"
	"go.uber.org/zap"
)

var apiKeyEnvs = []string{
	lib.SellAppApiKeyEnv,
	lib.SellAppNativeApiKeyEnv,
}

type ServiceFactory struct {
	locator *SharedServicesLocator
}

func NewServiceFactory(locator *SharedServicesLocator) *ServiceFactory {
	return &ServiceFactory{locator: locator}
}

func (f *ServiceFactory) ApiKey() (string, error) {
	apiKey, err := lib.GetSecretFromEnvOrInput(
		f.locator.CredentialsStorage,
		lib.SellAppApiSecretKey,
		lib.SellAppApiSecretLabel,
		apiKeyEnvs,
		f.locator.Stdin,
		f.locator.Prompt,
		"Please provide Sell.app API Key",
	)
	if err != nil {
		return "", fmt.Errorf("getting %s: %w", lib.SellAppApiSecretKey, err)
	}
	return apiKey, nil
}

// NewApiClient resolves the API key and builds a client for the configured base url.
// Unless validate_key is off the key is checked right before the first request, so calls
// rejected on their arguments never reach the API.
func (f *ServiceFactory) NewApiClient(ctx context.Context) (*api.Client, error) {
	apiKey, err := f.ApiKey()
	if err != nil {
		return nil, err
	}

	opts := f.clientOptions()
	if f.locator.Config.ValidateKey {
		opts = append(opts, api.WithDeferredKeyCheck())
	}
	return api.NewClient(apiKey, opts...)
}

// NewApiClientWithKey builds a client for apiKey, checking it against the API first when validate is set.
func (f *ServiceFactory) NewApiClientWithKey(ctx context.Context, apiKey string, validate bool) (*api.Client, error) {
	opts := f.clientOptions()
	if !validate {
		return api.NewClient(apiKey, opts...)
	}

	f.logger().Debug("validating api key", zap.String("base_url", f.locator.Config.BaseURL))
	client, err := api.NewValidatedClient(ctx, apiKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("validating api key: %w", err)
	}
	return client, nil
}

func (f *ServiceFactory) logger() *zap.Logger {
	if f.locator.Logger == nil {
		return zap.NewNop()
	}
	return f.locator.Logger
}

func (f *ServiceFactory) clientOptions() []api.Option {
	cfg := f.locator.Config
	return []api.Option{
		api.WithBaseURL(cfg.BaseURL),
		api.WithLogger(f.logger()),
		api.WithDebug(cfg.LogLevel == "debug"),
	}
}
