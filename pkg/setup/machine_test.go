// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package setup

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/statekit"

	"github.com/canonical/storefront-service/internal/types"
)

func TestTransition(t *testing.T) {
	testCases := []struct {
		from     types.PurchaseStatus
		event    statekit.EventType
		expected types.PurchaseStatus
		invalid  bool
	}{
		{from: types.PurchaseProcessing, event: EventPurchased, expected: types.PurchasePending},
		{from: types.PurchaseProcessing, event: EventFail, expected: types.PurchaseFailed},
		{from: types.PurchasePending, event: EventFail, expected: types.PurchaseFailed},
		{from: types.PurchasePending, event: EventDNSWait, expected: types.PurchaseDNSPending},
		{from: types.PurchaseDNSPending, event: EventDNSWait, expected: types.PurchaseDNSPending},
		{from: types.PurchasePending, event: EventActivate, expected: types.PurchaseActive},
		{from: types.PurchaseDNSPending, event: EventActivate, expected: types.PurchaseActive},
		{from: types.PurchaseActive, event: EventActivate, expected: types.PurchaseActive},
		{from: types.PurchaseProcessing, event: EventActivate, invalid: true},
		{from: types.PurchaseActive, event: EventDNSWait, invalid: true},
		{from: types.PurchaseActive, event: EventFail, invalid: true},
		{from: types.PurchaseFailed, event: EventActivate, invalid: true},
		{from: types.PurchaseFailed, event: EventPurchased, invalid: true},
		{from: types.PurchaseStatus("unknown"), event: EventActivate, invalid: true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"/"+string(tc.event), func(t *testing.T) {
			to, err := Transition(tc.from, tc.event)

			if tc.invalid {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
				if to != tc.from {
					t.Errorf("expected status to stay %s, got %s", tc.from, to)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if to != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, to)
			}
		})
	}
}
