// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/storefront-service/internal/notifications"
	"github.com/canonical/storefront-service/internal/payments"
	"github.com/canonical/storefront-service/internal/registrar"
	"github.com/canonical/storefront-service/internal/tasks"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/pkg/provisioning"
	"github.com/canonical/storefront-service/pkg/setup"
)

type ServiceInterface interface {
	HandleEvent(ctx context.Context, ev Event) error
}

type StorageInterface interface {
	RecordWebhookEvent(ctx context.Context, e *types.WebhookEvent) error
	GetSubscriptionByPreapprovalID(ctx context.Context, preapprovalID string) (*types.Subscription, error)
	SetSubscriptionStatus(ctx context.Context, id string, status types.SubscriptionStatus) error
	ApplySubscriptionPayment(ctx context.Context, p *types.SubscriptionPayment, period types.BillingPeriod) (bool, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantOwner(ctx context.Context, tenantID string) (*types.Membership, error)
	SetTenantPlan(ctx context.Context, id string, plan types.Plan) error
	SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
	GetOrderByID(ctx context.Context, id string) (*types.Order, error)
	MarkOrderPaid(ctx context.Context, id, paymentID string) (bool, error)
	CreateDomainPurchase(ctx context.Context, p *types.DomainPurchase) (*types.DomainPurchase, error)
	CreateDomainRenewal(ctx context.Context, r *types.DomainRenewal) error
}

type TransactorInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type PaymentsInterface interface {
	GetPayment(ctx context.Context, id string) (*payments.Payment, error)
	GetPreapproval(ctx context.Context, id string) (*payments.Preapproval, error)
}

type ProvisionerInterface interface {
	ProvisionTenant(ctx context.Context, req provisioning.Request) (*types.Tenant, error)
}

type RegistrarInterface interface {
	RegisterDomain(ctx context.Context, domain string, action types.PurchaseAction, authCode string) (*registrar.PurchaseResult, error)
}

type SetupInterface interface {
	RunSetup(ctx context.Context, purchaseID string, opts setup.Options) (*setup.Report, error)
}

type TaskRunnerInterface interface {
	Submit(name string, fn tasks.Task) error
}

type NotifierInterface interface {
	SendOrderPaid(ctx context.Context, to string, msg notifications.OrderPaid) error
}

type IdentityInterface interface {
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}
