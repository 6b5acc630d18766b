// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	ory "github.com/ory/client-go"

	"github.com/canonical/storefront-service/internal/types"
)

type ServiceInterface interface {
	ListMyTenants(ctx context.Context, userID string) ([]*types.Tenant, error)
	ListTenants(ctx context.Context, pageToken string, size int) (*Page, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListMembers(ctx context.Context, tenantID string) ([]*types.TenantUser, error)
	SetStatus(ctx context.Context, id string, status types.TenantStatus) (*types.Tenant, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, offset, limit uint64) ([]*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
}

type KratosClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
}

type HostCacheInterface interface {
	Delete(ctx context.Context, key string) error
}

type AuthorizerInterface interface {
	CheckTenantAccess(ctx context.Context, tenantID, userID, relation string) (bool, error)
}
