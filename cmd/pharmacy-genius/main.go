// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pharmacy-genius CLI. It serves the
// drug search HTTP API and provides one-shot searches from the terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pharmacy-genius/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the pharmacy-genius CLI.
var rootCmd = &cobra.Command{
	Use:   "pharmacy-genius",
	Short: "Drug information search backed by GPT-4o web search",
	Long: `pharmacy-genius answers drug information questions by forwarding them to
an LLM web-search model restricted to authoritative medical sources (FDA,
EMA, PubMed, official drug labels).

"serve" runs the HTTP API; "search" performs a one-shot lookup from the
terminal. Both route through the same search gateway.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pharmacy-genius.yaml or ~/.config/pharmacy-genius/config.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "OpenAI API key (overrides env and secrets)")
	rootCmd.PersistentFlags().String("search-model", "", "web-search model (default gpt-4o-search-preview)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "provider request timeout (default 2m)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pharmacy-genius")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pharmacy-genius"))
		}
	}

	viper.SetEnvPrefix("PHARMACY_GENIUS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
