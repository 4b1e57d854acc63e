// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	yaml "go.yaml.in/yaml/v3"

	"github.com/pdiddy/pharmacy-genius/internal/httputil"
	"github.com/pdiddy/pharmacy-genius/internal/search"
	"github.com/pdiddy/pharmacy-genius/internal/secrets"
	"github.com/pdiddy/pharmacy-genius/pkg/types"
)

const (
	defaultAddr            = ":8000"
	defaultUserAgent       = "pharmacy-genius/0.1"
	defaultShutdownTimeout = 5 * time.Second
)

// providerConfig assembles the provider settings from flags, viper
// (config file and PHARMACY_GENIUS_* environment), the OPENAI_API_KEY
// environment variable, and the .secrets/ directory, in that order.
func providerConfig(cmd *cobra.Command) types.ProviderConfig {
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = viper.GetString("openai_api_key")
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		apiKey = secrets.OpenAIKey(loadedSecrets)
	}

	model, _ := cmd.Flags().GetString("search-model")
	if model == "" {
		model = viper.GetString("search_model")
	}
	if model == "" {
		model = search.DefaultSearchModel
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = httputil.DefaultTimeout
	}

	return types.ProviderConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		SearchModel:     model,
		PingModel:       search.DefaultPingModel,
		APIKey:          apiKey,
		MaxOutputTokens: search.DefaultMaxOutputTokens,
	}
}

// buildGateway constructs the search gateway. A missing API key yields an
// unconfigured gateway (searches return service-unavailable) rather than an
// error; the process must come up regardless.
func buildGateway(cfg types.ProviderConfig) (*search.Gateway, error) {
	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "warning: OPENAI_API_KEY not configured; search endpoints will be unavailable")
		return search.NewGateway(nil), nil
	}
	provider, err := search.NewOpenAIProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("configuring OpenAI provider: %w", err)
	}
	return search.NewGateway(provider), nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.Config{
			Provider: providerConfig(cmd),
			Server: types.ServerConfig{
				Addr:            defaultAddr,
				AllowCORS:       true,
				ShutdownTimeout: defaultShutdownTimeout,
			},
		}
		if cfg.Provider.APIKey != "" {
			cfg.Provider.APIKey = "(redacted)"
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
