package lib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestApiClientURL(t *testing.T) {
	r := require.New(t)

	client, err := NewProtectedApiClient(ApiClientConfig{BaseURL: DefaultBaseURL, ApiKey: "key"})
	r.NoError(err)

	cases := map[string]string{
		"blacklists":           "https://sell.app/api/v1/blacklists",
		"invoices/42/checkout": "https://sell.app/api/v1/invoices/42/checkout",
		"tickets/1/messages/2": "https://sell.app/api/v1/tickets/1/messages/2",
		"coupons/a b":          "https://sell.app/api/v1/coupons/a%20b",
		"coupons/a?b#c":        "https://sell.app/api/v1/coupons/a%3Fb%23c",
	}
	for path, want := range cases {
		got, err := client.URL(path)
		r.NoError(err, path)
		r.Equal(want, got, path)
	}
}

func TestApiClientRejectsEmptyAndRelativeSegments(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewProtectedApiClient(ApiClientConfig{BaseURL: srv.URL + "/api/v1/", ApiKey: "key"})
	require.NoError(t, err)

	for _, path := range []string{
		"coupons/",
		"/coupons/1",
		"tickets/1/messages/",
		"tickets//messages/2",
		"tickets/1/messages/..",
		"coupons/../listings",
		"coupons/.",
		"",
	} {
		t.Run(path, func(t *testing.T) {
			_, err := client.URL(path)
			require.ErrorIs(t, err, BadUserInputError)

			_, err = client.Do(context.Background(), http.MethodDelete, path, nil)
			require.ErrorIs(t, err, BadUserInputError)
		})
	}
	require.Zero(t, hits.Load())
}

func TestDebugLogRedactsAuthorization(t *testing.T) {
	r := require.New(t)

	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotAuth.Store(req.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	client, err := NewProtectedApiClient(ApiClientConfig{
		BaseURL: srv.URL + "/api/v1/",
		ApiKey:  "super-secret-key",
		Logger:  zap.New(core),
		Debug:   true,
	})
	r.NoError(err)

	_, err = client.Do(context.Background(), http.MethodGet, "listings", nil)
	r.NoError(err)

	// the real request still carries the key
	r.Equal("Bearer super-secret-key", gotAuth.Load())

	var dumped bool
	for _, entry := range logs.All() {
		r.NotContains(entry.Message, "super-secret-key")
		if strings.Contains(entry.Message, "Bearer <redacted>") {
			dumped = true
		}
	}
	r.True(dumped, "request dump not logged")
}

func TestNewProtectedApiClientValidatesBaseURL(t *testing.T) {
	_, err := NewProtectedApiClient(ApiClientConfig{BaseURL: "://broken"})
	require.Error(t, err)

	_, err = NewProtectedApiClient(ApiClientConfig{BaseURL: "/api/v1"})
	require.ErrorIs(t, err, BadUserInputError)
}
