// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package setup

import (
	"context"

	"github.com/canonical/storefront-service/internal/hosting"
	"github.com/canonical/storefront-service/internal/notifications"
	"github.com/canonical/storefront-service/internal/types"
)

type ServiceInterface interface {
	RunSetup(ctx context.Context, purchaseID string, opts Options) (*Report, error)
	RecheckPending(ctx context.Context, limit int) ([]*Report, error)
}

type StorageInterface interface {
	GetDomainPurchase(ctx context.Context, id string) (*types.DomainPurchase, error)
	ListDomainPurchasesByStatus(ctx context.Context, status types.PurchaseStatus, limit uint64) ([]*types.DomainPurchase, error)
	UpdateDomainPurchase(ctx context.Context, p *types.DomainPurchase, paths []string) error
	PatchDomainPurchaseMetadata(ctx context.Context, id string, patch types.MetadataPatch) error
	IncrementDNSCheckAttempts(ctx context.Context, id string) (int, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantOwner(ctx context.Context, tenantID string) (*types.Membership, error)
	AddTenantHost(ctx context.Context, tenantID, host string) error
}

type HostingInterface interface {
	GetDomain(ctx context.Context, domain string) (*hosting.Domain, error)
	AddDomain(ctx context.Context, domain string) error
	GetDomainConfig(ctx context.Context, domain string) (*hosting.DomainConfig, error)
}

type NotifierInterface interface {
	SendStoreReady(ctx context.Context, to string, msg notifications.StoreReady) error
}

type IdentityInterface interface {
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}
