// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"context"
)

type ClientInterface interface {
	CheckAvailability(ctx context.Context, label, ext string) (*Availability, error)
	QuotePrice(ctx context.Context, label, ext string, op Operation) (float64, error)
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
	Transfer(ctx context.Context, req TransferRequest) (*PurchaseResult, error)
	ContactHandle() string
}
