// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package checkout

import (
	"errors"

	"github.com/canonical/storefront-service/internal/types"
)

var ErrAlreadySubscribed = errors.New("tenant already has a paid plan")

type Config struct {
	MonthlyPrice float64
	Currency     string
	BackURL      string
}

type Request struct {
	Period types.BillingPeriod `json:"period" validate:"omitempty,oneof=monthly yearly"`
}

// Session is where the payer approves the recurring charge.
type Session struct {
	SubscriptionID string              `json:"subscription_id"`
	PreapprovalID  string              `json:"preapproval_id"`
	InitPoint      string              `json:"init_point"`
	Amount         float64             `json:"amount"`
	Period         types.BillingPeriod `json:"period"`
}
