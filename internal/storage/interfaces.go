// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/storefront-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByHost(ctx context.Context, host string) (*types.Tenant, error)
	ListTenants(ctx context.Context, offset, limit uint64) ([]*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	SetTenantPrimaryHost(ctx context.Context, id, host string) error
	AddTenantHost(ctx context.Context, tenantID, host string) error
	SetTenantPlan(ctx context.Context, id string, plan types.Plan) error
	SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
	AddMember(ctx context.Context, tenantID, userID, role string) (string, error)
	GetTenantOwner(ctx context.Context, tenantID string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	CreateSettings(ctx context.Context, s *types.Settings) error
	CreateCategory(ctx context.Context, c *types.Category) error
	CreateContentBlocks(ctx context.Context, blocks []*types.ContentBlock) error

	CreateDomainPurchase(ctx context.Context, p *types.DomainPurchase) (*types.DomainPurchase, error)
	GetDomainPurchase(ctx context.Context, id string) (*types.DomainPurchase, error)
	ListDomainPurchasesByTenant(ctx context.Context, tenantID string) ([]*types.DomainPurchase, error)
	ListDomainPurchasesByStatus(ctx context.Context, status types.PurchaseStatus, limit uint64) ([]*types.DomainPurchase, error)
	UpdateDomainPurchase(ctx context.Context, p *types.DomainPurchase, paths []string) error
	PatchDomainPurchaseMetadata(ctx context.Context, id string, patch types.MetadataPatch) error
	IncrementDNSCheckAttempts(ctx context.Context, id string) (int, error)

	CreateSubscription(ctx context.Context, s *types.Subscription) (*types.Subscription, error)
	GetSubscriptionByPreapprovalID(ctx context.Context, preapprovalID string) (*types.Subscription, error)
	SetSubscriptionStatus(ctx context.Context, id string, status types.SubscriptionStatus) error
	ApplySubscriptionPayment(ctx context.Context, p *types.SubscriptionPayment, period types.BillingPeriod) (bool, error)
	CreateDomainRenewal(ctx context.Context, r *types.DomainRenewal) error

	GetOrderByID(ctx context.Context, id string) (*types.Order, error)
	MarkOrderPaid(ctx context.Context, id, paymentID string) (bool, error)

	RecordWebhookEvent(ctx context.Context, e *types.WebhookEvent) error
}
