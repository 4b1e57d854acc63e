// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"testing"
)

func TestSearchRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		drug    string
		wantErr bool
	}{
		{"valid name", "aspirin", false},
		{"empty", "", true},
		{"whitespace only", "   \t", true},
		{"trimmed to valid", "  aspirin  ", false},
		{"exactly 100 chars", strings.Repeat("a", 100), false},
		{"101 chars rejected", strings.Repeat("a", 101), true},
		{"multibyte name within limit", strings.Repeat("б", 60), false},
		{"exactly 100 multibyte chars", strings.Repeat("б", 100), false},
		{"101 multibyte chars rejected", strings.Repeat("б", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SearchRequest{DrugName: tt.drug}.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
