// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pharmacy-genius/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ProviderConfig holds settings for the LLM web-search provider.
type ProviderConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchModel is the web-search-capable model used for drug searches
	// (default "gpt-4o-search-preview").
	SearchModel string `json:"search_model" yaml:"search_model"`

	// PingModel is the lightweight model used by the health check
	// (default "gpt-4o").
	PingModel string `json:"ping_model" yaml:"ping_model"`

	// APIKey is the provider credential. Its absence degrades the search
	// endpoints and the health check but never crashes the process.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxOutputTokens caps the generated answer size (default 2000).
	MaxOutputTokens int64 `json:"max_output_tokens" yaml:"max_output_tokens"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`

	// AllowCORS enables the allow-all CORS middleware (default true).
	AllowCORS bool `json:"allow_cors" yaml:"allow_cors"`

	// ShutdownTimeout bounds graceful shutdown (default 5s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Config groups all service configuration.
type Config struct {
	Provider ProviderConfig `json:"provider" yaml:"provider"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}
