// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package checkout

import (
	"context"

	"github.com/canonical/storefront-service/internal/payments"
	"github.com/canonical/storefront-service/internal/types"
)

type ServiceInterface interface {
	StartSubscription(ctx context.Context, tenantID, userID string, period types.BillingPeriod) (*Session, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	CreateSubscription(ctx context.Context, s *types.Subscription) (*types.Subscription, error)
}

type PaymentsInterface interface {
	CreatePreapproval(ctx context.Context, req payments.PreapprovalRequest) (*payments.Preapproval, error)
}

type IdentityInterface interface {
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}

type AuthorizerInterface interface {
	CheckTenantAccess(ctx context.Context, tenantID, userID, relation string) (bool, error)
}
