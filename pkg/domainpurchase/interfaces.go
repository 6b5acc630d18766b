// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domainpurchase

import (
	"context"

	"github.com/canonical/storefront-service/internal/registrar"
	"github.com/canonical/storefront-service/internal/tasks"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/pkg/setup"
)

type ServiceInterface interface {
	CheckAvailabilityAndPrice(ctx context.Context, rawDomain string) (*Quote, error)
	PurchaseDomain(ctx context.Context, rawDomain, tenantID string) (*types.DomainPurchase, error)
	TransferDomain(ctx context.Context, rawDomain, tenantID, authCode string) (*types.DomainPurchase, error)
	RegisterDomain(ctx context.Context, domain string, action types.PurchaseAction, authCode string) (*registrar.PurchaseResult, error)
	ListPurchases(ctx context.Context, tenantID string) ([]*types.DomainPurchase, error)
	GetPurchase(ctx context.Context, id string) (*types.DomainPurchase, error)
}

type StorageInterface interface {
	CreateDomainPurchase(ctx context.Context, p *types.DomainPurchase) (*types.DomainPurchase, error)
	GetDomainPurchase(ctx context.Context, id string) (*types.DomainPurchase, error)
	ListDomainPurchasesByTenant(ctx context.Context, tenantID string) ([]*types.DomainPurchase, error)
	UpdateDomainPurchase(ctx context.Context, p *types.DomainPurchase, paths []string) error
}

type RegistrarInterface interface {
	CheckAvailability(ctx context.Context, label, ext string) (*registrar.Availability, error)
	QuotePrice(ctx context.Context, label, ext string, op registrar.Operation) (float64, error)
	Purchase(ctx context.Context, req registrar.PurchaseRequest) (*registrar.PurchaseResult, error)
	Transfer(ctx context.Context, req registrar.TransferRequest) (*registrar.PurchaseResult, error)
	ContactHandle() string
}

type SetupInterface interface {
	RunSetup(ctx context.Context, purchaseID string, opts setup.Options) (*setup.Report, error)
}

type TaskRunnerInterface interface {
	Submit(name string, fn tasks.Task) error
}

type AuthorizerInterface interface {
	CheckTenantAccess(ctx context.Context, tenantID, userID, relation string) (bool, error)
}
