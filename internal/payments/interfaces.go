// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
)

type ClientInterface interface {
	GetPayment(ctx context.Context, id string) (*Payment, error)
	GetPreapproval(ctx context.Context, id string) (*Preapproval, error)
	CreatePreapproval(ctx context.Context, req PreapprovalRequest) (*Preapproval, error)
}
