// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pdiddy/pharmacy-genius/pkg/types"
)

// ErrNotConfigured reports that no provider credential was configured.
// The HTTP layer translates it to a service-unavailable status; the health
// check reports it as a warning rather than an error.
var ErrNotConfigured = errors.New("search provider not configured: set OPENAI_API_KEY")

// systemInstruction is the fixed system message sent with every search.
const systemInstruction = "You are a medical information specialist. Search the web to find accurate, up-to-date drug information from authoritative medical sources like FDA, EMA, PubMed, and medical literature. Provide comprehensive, well-structured responses with source citations."

// Provider performs text generation with web search. Each provider
// implements this interface per the Strategy pattern; the gateway holds
// exactly one.
type Provider interface {
	// Model identifies the model exercised by Ping; the health probe
	// reports it.
	Model() string

	// Complete sends one synchronous generation request and returns the raw
	// answer text.
	Complete(ctx context.Context, system, user string) (string, error)

	// Ping verifies provider connectivity with a minimal request.
	Ping(ctx context.Context) error
}

// Gateway orchestrates one provider call per search request. It is
// immutable after construction and safe for concurrent use: the only shared
// object is the read-only provider handle.
type Gateway struct {
	provider Provider
}

// NewGateway constructs a gateway around provider. A nil provider yields an
// unconfigured gateway whose searches fail fast with ErrNotConfigured.
func NewGateway(provider Provider) *Gateway {
	return &Gateway{provider: provider}
}

// Configured reports whether a provider is available.
func (g *Gateway) Configured() bool { return g.provider != nil }

// ProviderModel returns the model the health probe exercises, or "".
func (g *Gateway) ProviderModel() string {
	if g.provider == nil {
		return ""
	}
	return g.provider.Model()
}

// Ping checks provider connectivity for the health probe.
func (g *Gateway) Ping(ctx context.Context) error {
	if g.provider == nil {
		return ErrNotConfigured
	}
	return g.provider.Ping(ctx)
}

// Search builds the prompt for req, issues exactly one provider call, and
// maps the outcome into a SearchResult envelope. Upstream failures are
// returned inside the envelope (success=false, error text, elapsed time);
// only the unconfigured state surfaces as a Go error. No retries.
//
// The caller validates req first; Search assumes a well-formed request.
func (g *Gateway) Search(ctx context.Context, req types.SearchRequest) (types.SearchResult, error) {
	// Checked before any timing or prompt-building work.
	if g.provider == nil {
		return types.SearchResult{}, ErrNotConfigured
	}

	prompt := BuildPrompt(req)
	start := time.Now()

	answer, err := g.provider.Complete(ctx, systemInstruction, prompt)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		return types.SearchResult{
			Success:        false,
			Error:          fmt.Sprintf("failed to search for drug information: %v", err),
			ProcessingTime: elapsed,
		}, nil
	}

	return types.SearchResult{
		Success: true,
		Data: &types.SearchData{
			DrugName:        req.DrugName,
			SearchQuery:     Preview(prompt),
			DrugInformation: answer,
			SearchOptions: types.SearchOptions{
				IncludeDosage:       req.IncludeDosage,
				IncludeSideEffects:  req.IncludeSideEffects,
				IncludeInteractions: req.IncludeInteractions,
			},
			Timestamp: start.Format(time.RFC3339),
		},
		Message:        fmt.Sprintf("Successfully retrieved information for '%s'", req.DrugName),
		ProcessingTime: elapsed,
	}, nil
}

// QuickRequest materializes the quick-search form: dosage and side effects
// on, interactions off. The quick path is sugar over Search and shares all
// of its logic.
func QuickRequest(drugName string) types.SearchRequest {
	return types.SearchRequest{
		DrugName:           drugName,
		IncludeDosage:      true,
		IncludeSideEffects: true,
	}
}
