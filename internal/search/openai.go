// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/pharmacy-genius/internal/httputil"
	"github.com/pdiddy/pharmacy-genius/pkg/types"
)

const (
	// DefaultSearchModel is the web-search-capable chat model.
	DefaultSearchModel = "gpt-4o-search-preview"

	// DefaultPingModel is the lightweight model used for connectivity checks.
	DefaultPingModel = "gpt-4o"

	// DefaultMaxOutputTokens caps the generated answer size.
	DefaultMaxOutputTokens = 2000

	// pingMaxTokens keeps the health-check completion tiny.
	pingMaxTokens = 10
)

// OpenAIProvider implements Provider on top of the OpenAI Chat Completions
// API. One instance is created at process start and shared read-only by all
// requests.
type OpenAIProvider struct {
	client          openai.Client
	searchModel     string
	pingModel       string
	maxOutputTokens int64
}

// NewOpenAIProvider constructs a provider from cfg. The API key must be
// non-empty; callers degrade to an unconfigured gateway when no key exists
// instead of constructing a provider.
func NewOpenAIProvider(cfg types.ProviderConfig) (*OpenAIProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("openai provider requires an API key")
	}

	searchModel := cfg.SearchModel
	if searchModel == "" {
		searchModel = DefaultSearchModel
	}
	pingModel := cfg.PingModel
	if pingModel == "" {
		pingModel = DefaultPingModel
	}
	maxTokens := cfg.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxOutputTokens
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithHTTPClient(httputil.NewClient(cfg.HTTPConfig)),
	}

	return &OpenAIProvider{
		client:          openai.NewClient(opts...),
		searchModel:     searchModel,
		pingModel:       pingModel,
		maxOutputTokens: maxTokens,
	}, nil
}

// Model returns the model exercised by Ping.
func (p *OpenAIProvider) Model() string { return p.pingModel }

// Complete issues one chat completion with the given system and user
// instructions and returns the raw answer text. The search-preview models
// reject a sampling temperature, so none is ever set.
func (p *OpenAIProvider) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.searchModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		MaxTokens: openai.Int(p.maxOutputTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Ping verifies connectivity with a minimal completion against the
// lightweight model.
func (p *OpenAIProvider) Ping(ctx context.Context) error {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.pingModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("Say 'API connection successful'"),
		},
		MaxTokens: openai.Int(pingMaxTokens),
	})
	if err != nil {
		return fmt.Errorf("openai ping: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("openai ping returned no choices")
	}
	return nil
}
