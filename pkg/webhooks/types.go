// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"fmt"

	"github.com/canonical/storefront-service/internal/payments"
)

const (
	TypePayment                 = "payment"
	TypePreapproval             = "preapproval"
	TypeSubscriptionPreapproval = "subscription_preapproval"

	// metadata keys the checkout attaches to a combined purchase payment
	metaCombined      = "combined_purchase"
	metaDomain        = "domain"
	metaStoreName     = "store_name"
	metaPlan          = "plan"
	metaUserID        = "user_id"
	metaBillingPeriod = "billing_period"
	metaPlanAmount    = "plan_amount"
	metaDomainAction  = "domain_action"
	metaAuthCode      = "auth_code"
	metaAutoRenew     = "auto_renew"
	metaDomainPrice   = "domain_price"

	maxBodyBytes = 1 << 20
)

type EventData struct {
	ID payments.ID `json:"id"`
}

// Event is the notification the payment processor posts. RequestID and
// Verified come from the delivery headers.
type Event struct {
	Type   string    `json:"type"`
	Action string    `json:"action,omitempty"`
	Data   EventData `json:"data"`

	RequestID string `json:"-"`
	Verified  bool   `json:"-"`
}

type Received struct {
	Received bool `json:"received"`
}

type Config struct {
	AnnualPlanMinimum float64
	Currency          string
	DashboardURL      string
}

// ProcessingError wraps a failure while applying a verified event. It is
// logged and never changes the response sent to the processor.
type ProcessingError struct {
	Type       string
	ResourceID string
	Err        error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("failed to process %s %s: %v", e.Type, e.ResourceID, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
