package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

type fakeSellApp struct {
	mu       sync.Mutex
	requests []recordedRequest

	status   int
	response string
}

func (f *fakeSellApp) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	status, response := f.status, f.response
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, response)
}

func (f *fakeSellApp) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeSellApp) LastRequest(t *testing.T) recordedRequest {
	t.Helper()
	requests := f.Requests()
	require.NotEmpty(t, requests, "no request reached the server")
	return requests[len(requests)-1]
}

// newFakeSellApp starts a server answering every request with status and response and
// returns a client pointed at its /api/v1/ root.
func newFakeSellApp(t *testing.T, status int, response string) (*Client, *fakeSellApp) {
	t.Helper()

	fake := &fakeSellApp{status: status, response: response}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", WithBaseURL(srv.URL+"/api/v1/"))
	require.NoError(t, err)

	return client, fake
}

func newServer(t *testing.T, handler http.Handler) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv.URL
}
