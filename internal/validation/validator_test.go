// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"testing"
)

type transferRequest struct {
	Domain   string `json:"domain" validate:"required,max=253"`
	AuthCode string `json:"auth_code" validate:"required"`
	Plan     string `json:"plan,omitempty" validate:"omitempty,oneof=basic pro"`
}

func TestValidatorStruct(t *testing.T) {
	tests := []struct {
		name     string
		input    transferRequest
		expected string
	}{
		{
			name:  "valid",
			input: transferRequest{Domain: "example.com", AuthCode: "EPP"},
		},
		{
			name:     "missing fields use json names",
			input:    transferRequest{},
			expected: "domain is required; auth_code is required",
		},
		{
			name:     "oneof",
			input:    transferRequest{Domain: "example.com", AuthCode: "EPP", Plan: "gold"},
			expected: "plan must be one of [basic pro]",
		},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)

			if tt.expected == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			if err == nil || err.Error() != tt.expected {
				t.Errorf("expected %q, got %v", tt.expected, err)
			}
		})
	}
}
