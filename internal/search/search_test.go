// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/pharmacy-genius/pkg/types"
)

// --- mock provider ---

type mockProvider struct {
	answer  string
	err     error
	pingErr error

	calls      int
	lastSystem string
	lastUser   string
}

func (m *mockProvider) Model() string { return "mock-model" }

func (m *mockProvider) Complete(_ context.Context, system, user string) (string, error) {
	m.calls++
	m.lastSystem = system
	m.lastUser = user
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func (m *mockProvider) Ping(_ context.Context) error { return m.pingErr }

// --- Gateway ---

func TestSearchUnconfigured(t *testing.T) {
	g := NewGateway(nil)
	_, err := g.Search(context.Background(), types.SearchRequest{DrugName: "aspirin"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
	if g.Configured() {
		t.Error("Configured() = true for nil provider")
	}
}

func TestSearchSuccess(t *testing.T) {
	provider := &mockProvider{answer: "Aspirin is an NSAID..."}
	g := NewGateway(provider)

	req := types.SearchRequest{
		DrugName:            "aspirin",
		IncludeDosage:       true,
		IncludeSideEffects:  false,
		IncludeInteractions: true,
	}
	result, err := g.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if !result.Success {
		t.Fatal("Success = false")
	}
	if result.Data == nil {
		t.Fatal("Data = nil")
	}
	if result.Data.DrugName != "aspirin" {
		t.Errorf("DrugName = %q", result.Data.DrugName)
	}
	if result.Data.DrugInformation != provider.answer {
		t.Errorf("DrugInformation = %q", result.Data.DrugInformation)
	}
	if want := Preview(BuildPrompt(req)); result.Data.SearchQuery != want {
		t.Errorf("SearchQuery = %q, want prompt preview", result.Data.SearchQuery)
	}
	opts := result.Data.SearchOptions
	if !opts.IncludeDosage || opts.IncludeSideEffects || !opts.IncludeInteractions {
		t.Errorf("SearchOptions = %+v, want flag echo", opts)
	}
	if result.ProcessingTime < 0 {
		t.Errorf("ProcessingTime = %f, want >= 0", result.ProcessingTime)
	}
	if result.Error != "" {
		t.Errorf("Error = %q, want empty on success", result.Error)
	}
	if _, parseErr := time.Parse(time.RFC3339, result.Data.Timestamp); parseErr != nil {
		t.Errorf("Timestamp %q not RFC 3339: %v", result.Data.Timestamp, parseErr)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want exactly 1", provider.calls)
	}
}

func TestSearchPassesInstructions(t *testing.T) {
	provider := &mockProvider{answer: "ok"}
	g := NewGateway(provider)

	req := types.SearchRequest{DrugName: "metformin", IncludeDosage: true}
	if _, err := g.Search(context.Background(), req); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if !strings.Contains(provider.lastSystem, "medical information specialist") {
		t.Errorf("system instruction = %q", provider.lastSystem)
	}
	if provider.lastUser != BuildPrompt(req) {
		t.Error("user instruction should be the built prompt")
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	provider := &mockProvider{err: fmt.Errorf("rate limit exceeded")}
	g := NewGateway(provider)

	result, err := g.Search(context.Background(), types.SearchRequest{DrugName: "aspirin"})
	if err != nil {
		t.Fatalf("upstream failures belong in the envelope, got error %v", err)
	}
	if result.Success {
		t.Error("Success = true on upstream failure")
	}
	if !strings.Contains(result.Error, "rate limit exceeded") {
		t.Errorf("Error = %q, should carry the provider error text", result.Error)
	}
	if result.Data != nil {
		t.Error("Data should be nil on failure")
	}
	if result.ProcessingTime < 0 {
		t.Errorf("ProcessingTime = %f, want >= 0", result.ProcessingTime)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (no retry)", provider.calls)
	}
}

func TestQuickRequestDefaults(t *testing.T) {
	req := QuickRequest("aspirin")
	want := types.SearchRequest{
		DrugName:            "aspirin",
		IncludeDosage:       true,
		IncludeSideEffects:  true,
		IncludeInteractions: false,
	}
	if req != want {
		t.Errorf("QuickRequest() = %+v, want %+v", req, want)
	}
}

// The quick path must be indistinguishable from the detailed path with
// default flags.
func TestQuickSearchMatchesDetailed(t *testing.T) {
	provider := &mockProvider{answer: "info"}
	g := NewGateway(provider)

	quick, err := g.Search(context.Background(), QuickRequest("aspirin"))
	if err != nil {
		t.Fatalf("quick Search() error = %v", err)
	}

	detailed, err := g.Search(context.Background(), types.SearchRequest{
		DrugName:           "aspirin",
		IncludeDosage:      true,
		IncludeSideEffects: true,
	})
	if err != nil {
		t.Fatalf("detailed Search() error = %v", err)
	}

	if quick.Data.SearchOptions != detailed.Data.SearchOptions {
		t.Errorf("flag echo differs: quick %+v, detailed %+v",
			quick.Data.SearchOptions, detailed.Data.SearchOptions)
	}
	if quick.Data.SearchQuery != detailed.Data.SearchQuery {
		t.Error("prompt preview differs between quick and detailed paths")
	}
}

func TestPing(t *testing.T) {
	if err := NewGateway(nil).Ping(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("unconfigured Ping() = %v, want ErrNotConfigured", err)
	}

	pingErr := fmt.Errorf("connection refused")
	g := NewGateway(&mockProvider{pingErr: pingErr})
	if err := g.Ping(context.Background()); !errors.Is(err, pingErr) {
		t.Errorf("Ping() = %v, want provider error", err)
	}

	if err := NewGateway(&mockProvider{}).Ping(context.Background()); err != nil {
		t.Errorf("healthy Ping() = %v", err)
	}
}
