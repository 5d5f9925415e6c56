package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/AnotherFullstackDev/sellctl/internal/lib"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const DefaultBaseURL = lib.DefaultBaseURL

// Client talks to the Sell.app v1 REST API. Apart from the auth headers its only state is
// the outcome of a deferred key check, so a single instance can be shared between goroutines.
type Client struct {
	*lib.ApiClient

	keyCheck func(ctx context.Context) error
}

type clientOptions struct {
	api           lib.ApiClientConfig
	deferKeyCheck bool
}

type Option func(*clientOptions)

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.api.BaseURL = baseURL
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.api.HttpClient = hc
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *clientOptions) {
		o.api.Logger = logger
	}
}

// WithDebug dumps requests and responses to the logger, with the Authorization header redacted.
func WithDebug(enabled bool) Option {
	return func(o *clientOptions) {
		o.api.Debug = enabled
	}
}

// WithDeferredKeyCheck runs CheckAPIKey right before the first request instead of at construction.
// Arguments rejected locally never cause a request, not even the key check.
func WithDeferredKeyCheck() Option {
	return func(o *clientOptions) {
		o.deferKeyCheck = true
	}
}

// NewClient builds a client without contacting the API.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	o := clientOptions{
		api: lib.ApiClientConfig{
			BaseURL: DefaultBaseURL,
			ApiKey:  apiKey,
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	apiClient, err := lib.NewProtectedApiClient(o.api)
	if err != nil {
		return nil, fmt.Errorf("creating api client: %w", err)
	}

	c := &Client{ApiClient: apiClient}
	if o.deferKeyCheck {
		c.keyCheck = c.deferredKeyCheck()
	}
	return c, nil
}

// NewValidatedClient builds a client and calls the listings endpoint with it, failing with
// InvalidCredentialsError when the API rejects the key.
func NewValidatedClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	c, err := NewClient(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	if err := c.CheckAPIKey(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// CheckAPIKey reports InvalidCredentialsError when GET listings answers 401 or 403.
// Any other status is treated as a usable key.
func (c *Client) CheckAPIKey(ctx context.Context) error {
	resp, err := c.Do(ctx, http.MethodGet, "listings", nil)
	if err != nil {
		return err
	}
	return MapResponseToError(resp)
}

// deferredKeyCheck remembers the outcome once the API accepted or rejected the key.
// Transport failures are returned without being remembered, so the next request checks again.
func (c *Client) deferredKeyCheck() func(ctx context.Context) error {
	var (
		mu      sync.Mutex
		checked bool
		result  error
	)
	return func(ctx context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		if checked {
			return result
		}

		err := c.CheckAPIKey(ctx)
		if err != nil && !errors.Is(err, InvalidCredentialsError) {
			return err
		}
		checked = true
		if err != nil {
			result = fmt.Errorf("validating api key: %w", err)
		}
		return result
	}
}

func (c *Client) request(ctx context.Context, method, path string, body any) (any, error) {
	if _, err := c.URL(path); err != nil {
		return nil, err
	}
	if c.keyCheck != nil {
		if err := c.keyCheck(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

func (c *Client) get(ctx context.Context, path string) (any, error) {
	return c.request(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (any, error) {
	return c.request(ctx, http.MethodPost, path, body)
}

func (c *Client) patch(ctx context.Context, path string, body any) (any, error) {
	return c.request(ctx, http.MethodPatch, path, body)
}

func (c *Client) delete(ctx context.Context, path string) (any, error) {
	return c.request(ctx, http.MethodDelete, path, nil)
}

// decodeBody decodes the response body as JSON whatever the status code.
// A body that is not JSON, an empty one included, returns the decode error.
func decodeBody(resp *resty.Response) (any, error) {
	var payload any
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
