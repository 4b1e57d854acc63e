// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/pdiddy/pharmacy-genius/internal/httputil"
	"github.com/pdiddy/pharmacy-genius/internal/search"
	"github.com/pdiddy/pharmacy-genius/pkg/types"
)

// healthPingTimeout bounds the lightweight provider call made by /health.
const healthPingTimeout = 10 * time.Second

// notConfiguredDetail is the service-unavailable message for search calls
// made without a provider credential.
const notConfiguredDetail = "OpenAI client not configured. Please set OPENAI_API_KEY environment variable."

// searchRequestBody is the POST /search/drug body. The inclusion flags are
// pointers so that absent fields take the documented defaults (dosage and
// side effects on, interactions off) instead of Go's zero value.
type searchRequestBody struct {
	DrugName            string `json:"drug_name"`
	IncludeDosage       *bool  `json:"include_dosage"`
	IncludeSideEffects  *bool  `json:"include_side_effects"`
	IncludeInteractions *bool  `json:"include_interactions"`
}

// toRequest applies the defaults and produces the validated-shape request.
func (b searchRequestBody) toRequest() types.SearchRequest {
	req := search.QuickRequest(b.DrugName)
	if b.IncludeDosage != nil {
		req.IncludeDosage = *b.IncludeDosage
	}
	if b.IncludeSideEffects != nil {
		req.IncludeSideEffects = *b.IncludeSideEffects
	}
	if b.IncludeInteractions != nil {
		req.IncludeInteractions = *b.IncludeInteractions
	}
	return req
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message":    "Welcome to PharmacyGenius Drug Search API",
		"version":    s.version,
		"powered_by": "GPT-4o Search Preview",
		"docs":       "/info",
		"health":     "/health",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	timestamp := time.Now().Format(time.RFC3339)

	if !s.gateway.Configured() {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"status":        "warning",
			"openai_client": "not_configured",
			"message":       "OpenAI API key not configured",
			"timestamp":     timestamp,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := s.gateway.Ping(ctx); err != nil {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"status":        "error",
			"openai_client": "error",
			"error":         err.Error(),
			"timestamp":     timestamp,
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":        "healthy",
		"openai_client": "connected",
		"model":         s.gateway.ProviderModel(),
		"timestamp":     timestamp,
	})
}

func (s *Server) handleSearchDrug(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body searchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeClientError(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	s.runSearch(w, r, body.toRequest())
}

func (s *Server) handleQuickSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	drugName := r.URL.Query().Get("drug_name")
	if drugName == "" {
		drugName = r.URL.Query().Get("drugName")
	}
	s.runSearch(w, r, search.QuickRequest(drugName))
}

// runSearch is the single path both entry shapes route through: validate,
// search, translate the outcome to a transport status.
func (s *Server) runSearch(w http.ResponseWriter, r *http.Request, req types.SearchRequest) {
	// Rejected before any prompt building or network activity.
	if err := req.Validate(); err != nil {
		writeClientError(w, err.Error())
		return
	}

	result, err := s.gateway.Search(r.Context(), req)
	if err != nil {
		if errors.Is(err, search.ErrNotConfigured) {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, types.SearchResult{
				Success: false,
				Error:   notConfiguredDetail,
			})
			return
		}
		httputil.WriteJSON(w, http.StatusInternalServerError, types.SearchResult{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	httputil.WriteJSON(w, status, result)
}

func writeClientError(w http.ResponseWriter, msg string) {
	httputil.WriteJSON(w, http.StatusBadRequest, types.SearchResult{
		Success: false,
		Error:   msg,
	})
}

// infoResponse mirrors the search envelope for the static metadata endpoint.
type infoResponse struct {
	Success bool     `json:"success"`
	Data    infoData `json:"data"`
	Message string   `json:"message"`
}

type infoData struct {
	APIName        string            `json:"api_name"`
	Version        string            `json:"version"`
	PoweredBy      string            `json:"powered_by"`
	Capabilities   []string          `json:"capabilities"`
	Endpoints      map[string]string `json:"endpoints"`
	DataSources    []string          `json:"data_sources"`
	RateLimits     string            `json:"rate_limits"`
	Authentication string            `json:"authentication"`
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, infoResponse{
		Success: true,
		Data: infoData{
			APIName:   "PharmacyGenius Drug Search API",
			Version:   s.version,
			PoweredBy: "GPT-4o Search Preview",
			Capabilities: []string{
				"Real-time web search for drug information",
				"Structured drug data extraction",
				"Authoritative source verification",
				"Comprehensive drug profiles",
				"Dosage and safety information",
				"Drug interaction checking",
			},
			Endpoints: map[string]string{
				"/search/drug":  "Main drug search endpoint with detailed options",
				"/search/quick": "Quick drug search with drug name only",
				"/health":       "API health check",
				"/info":         "API information",
			},
			DataSources: []string{
				"FDA (Food and Drug Administration)",
				"EMA (European Medicines Agency)",
				"PubMed",
				"Official drug labels",
				"Medical literature databases",
			},
			RateLimits:     "Standard OpenAI API limits apply",
			Authentication: "OpenAI API key required",
		},
		Message: "API information retrieved successfully",
	})
}
