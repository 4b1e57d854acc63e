// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the wire and configuration structures shared by the
// drug search gateway, the HTTP server, and the CLI.
package types

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxDrugNameLength bounds the drug name accepted by the search endpoints.
const MaxDrugNameLength = 100

// SearchRequest holds the parameters of one drug information search.
// The three inclusion flags select optional prompt sections; the HTTP layer
// applies the defaults (dosage and side effects on, interactions off) before
// this struct is built.
type SearchRequest struct {
	// DrugName is the name of the drug to search for (1-100 characters).
	DrugName string `json:"drug_name" yaml:"drug_name"`

	// IncludeDosage requests the dosage information section.
	IncludeDosage bool `json:"include_dosage" yaml:"include_dosage"`

	// IncludeSideEffects requests the safety and side effects section.
	IncludeSideEffects bool `json:"include_side_effects" yaml:"include_side_effects"`

	// IncludeInteractions requests the drug interactions section.
	IncludeInteractions bool `json:"include_interactions" yaml:"include_interactions"`
}

// Validate reports whether the request is searchable: the drug name must be
// non-empty after trimming and at most MaxDrugNameLength characters. The
// limit counts characters, not bytes, so non-ASCII names are not penalized.
func (r SearchRequest) Validate() error {
	name := strings.TrimSpace(r.DrugName)
	if name == "" {
		return fmt.Errorf("drug_name is required")
	}
	if utf8.RuneCountInString(name) > MaxDrugNameLength {
		return fmt.Errorf("drug_name exceeds %d characters", MaxDrugNameLength)
	}
	return nil
}

// SearchOptions echoes the inclusion flags back to the caller.
type SearchOptions struct {
	IncludeDosage       bool `json:"include_dosage" yaml:"include_dosage"`
	IncludeSideEffects  bool `json:"include_side_effects" yaml:"include_side_effects"`
	IncludeInteractions bool `json:"include_interactions" yaml:"include_interactions"`
}

// SearchData is the payload of a successful search.
type SearchData struct {
	// DrugName is the original drug name from the request.
	DrugName string `json:"drug_name" yaml:"drug_name"`

	// SearchQuery is a truncated preview of the prompt sent to the provider
	// (first 200 characters followed by "...").
	SearchQuery string `json:"search_query" yaml:"search_query"`

	// DrugInformation is the raw textual answer from the provider.
	DrugInformation string `json:"drug_information" yaml:"drug_information"`

	// SearchOptions echoes the inclusion flags of the request.
	SearchOptions SearchOptions `json:"search_options" yaml:"search_options"`

	// Timestamp is the RFC 3339 time at which the search started.
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// SearchResult is the uniform response envelope for search operations.
// Data is populated when Success is true; Error when it is false.
type SearchResult struct {
	Success bool `json:"success" yaml:"success"`

	Data *SearchData `json:"data,omitempty" yaml:"data,omitempty"`

	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// ProcessingTime is the elapsed wall-clock time of the provider call in
	// seconds. Populated on both success and upstream failure; omitted from
	// envelopes that never reached the provider.
	ProcessingTime float64 `json:"processing_time,omitempty" yaml:"processing_time,omitempty"`
}
