// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pharmacy-genius/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [drug name]",
	Short: "Search for drug information from the terminal",
	Long: `Search performs a one-shot drug information lookup through the same
gateway the HTTP API uses. Dosage and side effect sections are included by
default; interactions are opt-in.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("dosage", true, "include dosage information")
	searchCmd.Flags().Bool("side-effects", true, "include safety and side effects")
	searchCmd.Flags().Bool("interactions", false, "include drug interactions")
	searchCmd.Flags().Bool("json", false, "output the full result envelope as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := providerConfig(cmd)
	if cfg.APIKey == "" {
		return fmt.Errorf("no OpenAI API key configured: set OPENAI_API_KEY, PHARMACY_GENIUS_OPENAI_API_KEY, or .secrets/openai-api-key")
	}

	gateway, err := buildGateway(cfg)
	if err != nil {
		return err
	}

	dosage, _ := cmd.Flags().GetBool("dosage")
	sideEffects, _ := cmd.Flags().GetBool("side-effects")
	interactions, _ := cmd.Flags().GetBool("interactions")
	asJSON, _ := cmd.Flags().GetBool("json")

	req := types.SearchRequest{
		DrugName:            strings.Join(args, " "),
		IncludeDosage:       dosage,
		IncludeSideEffects:  sideEffects,
		IncludeInteractions: interactions,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	result, err := gateway.Search(cmd.Context(), req)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}

	fmt.Println(result.Data.DrugInformation)
	fmt.Fprintf(os.Stderr, "\n%s (%.2fs)\n", result.Message, result.ProcessingTime)
	return nil
}
