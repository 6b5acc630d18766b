// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func TestVerify(t *testing.T) {
	const (
		secret    = "whsec-test"
		requestID = "bb56a2f1-6aae-46ac-982e-9dcd3581d08e"
		resource  = "123456"
		ts        = "1742505638683"
	)

	valid := Sign(requestID, resource, ts, secret)

	flipped := []byte(valid)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}

	tests := []struct {
		name      string
		header    string
		requestID string
		resource  string
		secret    string
		expected  bool
	}{
		{
			name:      "valid signature",
			header:    "ts=" + ts + ",v1=" + valid,
			requestID: requestID,
			resource:  resource,
			secret:    secret,
			expected:  true,
		},
		{
			name:      "uppercase hex and spaces",
			header:    " ts=" + ts + " , v1=" + strings.ToUpper(valid),
			requestID: requestID,
			resource:  resource,
			secret:    secret,
			expected:  true,
		},
		{
			name:      "parts in any order",
			header:    "v1=" + valid + ",ts=" + ts,
			requestID: requestID,
			resource:  resource,
			secret:    secret,
			expected:  true,
		},
		{
			name:      "flipped character",
			header:    "ts=" + ts + ",v1=" + string(flipped),
			requestID: requestID,
			resource:  resource,
			secret:    secret,
		},
		{
			name:     "missing request id",
			header:   "ts=" + ts + ",v1=" + valid,
			resource: resource,
			secret:   secret,
		},
		{
			name:      "missing timestamp",
			header:    "v1=" + valid,
			requestID: requestID,
			resource:  resource,
			secret:    secret,
		},
		{
			name:      "missing v1",
			header:    "ts=" + ts,
			requestID: requestID,
			resource:  resource,
			secret:    secret,
		},
		{
			name:      "other resource",
			header:    "ts=" + ts + ",v1=" + valid,
			requestID: requestID,
			resource:  "654321",
			secret:    secret,
		},
		{
			name:      "wrong secret",
			header:    "ts=" + ts + ",v1=" + valid,
			requestID: requestID,
			resource:  resource,
			secret:    "other",
		},
		{
			name:      "garbage header",
			header:    "not a signature",
			requestID: requestID,
			resource:  resource,
			secret:    secret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verify(tt.header, tt.requestID, tt.resource, tt.secret); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVerifyRejectsEverySingleFlip(t *testing.T) {
	valid := Sign("req-1", "42", "1700000000", "secret")

	for i := range valid {
		b := []byte(valid)
		if b[i] == '0' {
			b[i] = '1'
		} else {
			b[i] = '0'
		}

		if Verify("ts=1700000000,v1="+string(b), "req-1", "42", "secret") {
			t.Fatalf("signature with position %d changed was accepted", i)
		}
	}
}

func TestManifest(t *testing.T) {
	got := manifest("req-1", "ABC123", "1700000000")
	expected := "id:ABC123;request-id:req-1;ts:1700000000;"

	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestVerifyMixedCaseResource(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("id:PRE-ABC123;request-id:req-1;ts:1700000000;"))
	v1 := hex.EncodeToString(mac.Sum(nil))

	if !Verify("ts=1700000000,v1="+v1, "req-1", "PRE-ABC123", "secret") {
		t.Error("expected a signature over the resource id as delivered to verify")
	}

	if Verify("ts=1700000000,v1="+v1, "req-1", "pre-abc123", "secret") {
		t.Error("expected a signature over another casing of the resource id to be rejected")
	}
}
