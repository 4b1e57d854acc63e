// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the provider client and
// the server.
package httputil

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pdiddy/pharmacy-genius/pkg/types"
)

// DefaultTimeout bounds outbound provider calls. The original service
// imposed no timeout at all; web searches can run long, so the bound is
// generous rather than absent.
const DefaultTimeout = 2 * time.Minute

// userAgentTransport adds a User-Agent header to every request.
type userAgentTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// NewClient returns an HTTP client with the configured timeout and a
// User-Agent header applied to every request. Zero values fall back to
// DefaultTimeout and no User-Agent override.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := &http.Client{Timeout: timeout}
	if cfg.UserAgent != "" {
		client.Transport = &userAgentTransport{userAgent: cfg.UserAgent}
	}
	return client
}

// WriteJSON encodes v as the JSON response body with the given status code.
// Encoding failures after the header is written can only be logged by the
// caller's server, so they are ignored here.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
