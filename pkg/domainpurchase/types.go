// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domainpurchase

import (
	"errors"
)

var (
	ErrPurchaseInProgress     = errors.New("a purchase for this domain is already in progress")
	ErrDomainAlreadyPurchased = errors.New("domain already has a live purchase")
	ErrTenantNotFound         = errors.New("tenant not found")
	ErrAuthCodeRequired       = errors.New("auth code is required for transfers")
	ErrUnsupportedAction      = errors.New("unsupported purchase action")
)

// Quote is the availability answer shown before purchase. Prices are zero
// when the domain is taken.
type Quote struct {
	Domain     string  `json:"domain"`
	Available  bool    `json:"available"`
	PriceUSD   float64 `json:"price_usd"`
	PriceLocal int64   `json:"price_local"`
	Currency   string  `json:"currency"`
	Display    string  `json:"display,omitempty"`
}

type PurchaseRequest struct {
	Domain string `json:"domain" validate:"required,max=253"`
}

type TransferRequest struct {
	Domain   string `json:"domain" validate:"required,max=253"`
	AuthCode string `json:"auth_code" validate:"required,max=64"`
}
