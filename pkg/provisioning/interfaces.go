// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"

	"github.com/canonical/storefront-service/internal/tasks"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/pkg/setup"
)

type ServiceInterface interface {
	ProvisionTenant(ctx context.Context, req Request) (*types.Tenant, error)
	RegisterDNSOnly(ctx context.Context, tenantID, rawDomain string) (*types.DomainPurchase, error)
	ResolveHost(ctx context.Context, host string) (*types.Tenant, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByHost(ctx context.Context, host string) (*types.Tenant, error)
	SetTenantPrimaryHost(ctx context.Context, id, host string) error
	AddMember(ctx context.Context, tenantID, userID, role string) (string, error)
	CreateSettings(ctx context.Context, s *types.Settings) error
	CreateCategory(ctx context.Context, c *types.Category) error
	CreateContentBlocks(ctx context.Context, blocks []*types.ContentBlock) error
	CreateSubscription(ctx context.Context, s *types.Subscription) (*types.Subscription, error)
	CreateDomainPurchase(ctx context.Context, p *types.DomainPurchase) (*types.DomainPurchase, error)
}

// TransactorInterface is the part of db.DBClientInterface provisioning needs.
type TransactorInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	AdvisoryXactLock(ctx context.Context, key string) error
}

type AuthorizerInterface interface {
	AssignTenantOwner(ctx context.Context, tenantID, userID string) error
	LinkTenantToPlatform(ctx context.Context, tenantID string) error
	CheckTenantAccess(ctx context.Context, tenantID, userID, relation string) (bool, error)
}

type SetupInterface interface {
	RunSetup(ctx context.Context, purchaseID string, opts setup.Options) (*setup.Report, error)
}

type TaskRunnerInterface interface {
	Submit(name string, fn tasks.Task) error
}
