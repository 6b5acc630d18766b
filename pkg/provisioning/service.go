// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/canonical/storefront-service/internal/cache"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/pkg/domains"
	"github.com/canonical/storefront-service/pkg/setup"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	db      TransactorInterface
	authz   AuthorizerInterface
	setup   SetupInterface
	tasks   TaskRunnerInterface
	hosts   cache.CacheInterface[*types.Tenant]

	hostTTL time.Duration
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ProvisionTenant creates the tenant with its owner membership, defaults and
// optional subscription in one transaction. The owner grant in the
// authorization model is written after commit.
func (s *Service) ProvisionTenant(ctx context.Context, req Request) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.ProvisionTenant")
	defer span.End()

	var host *string
	if req.Domain != "" {
		h, err := normalizeHost(req.Domain)
		if err != nil {
			return nil, err
		}
		host = &h
	}

	var tenant *types.Tenant

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.db.AdvisoryXactLock(ctx, "provision:"+req.OwnerUserID); err != nil {
			return err
		}

		t, err := s.storage.CreateTenant(ctx, &types.Tenant{
			Name:        strings.TrimSpace(req.Name),
			PrimaryHost: host,
			Plan:        req.Plan,
			Status:      types.TenantActive,
			OwnerUserID: req.OwnerUserID,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return ErrHostTaken
		}
		if err != nil {
			return err
		}

		if _, err := s.storage.AddMember(ctx, t.ID, req.OwnerUserID, types.RoleAdmin); err != nil {
			return fmt.Errorf("failed to add owner: %w", err)
		}

		if err := s.seed(ctx, t, req.SeedContent); err != nil {
			return err
		}

		if req.BillingAmount > 0 {
			if err := s.subscribe(ctx, t.ID, req); err != nil {
				return err
			}
		}

		tenant = t
		return nil
	})

	if err != nil {
		s.count("provision", "error")
		return nil, err
	}

	s.grant(ctx, tenant.ID, req.OwnerUserID)
	s.count("provision", "created")
	s.logger.Infof("provisioned tenant %s (%s) for %s", tenant.ID, tenant.Name, req.OwnerUserID)

	return tenant, nil
}

func (s *Service) seed(ctx context.Context, t *types.Tenant, content bool) error {
	err := s.storage.CreateSettings(ctx, &types.Settings{
		TenantID:       t.ID,
		PrimaryColor:   defaultPrimaryColor,
		SecondaryColor: defaultSecondaryColor,
	})
	if err != nil {
		return err
	}

	if err := s.storage.CreateCategory(ctx, &types.Category{TenantID: t.ID, Name: defaultCategoryName, Slug: defaultCategorySlug}); err != nil {
		return err
	}

	if !content {
		return nil
	}

	return s.storage.CreateContentBlocks(ctx, defaultContent(t.ID, t.Name))
}

func (s *Service) subscribe(ctx context.Context, tenantID string, req Request) error {
	period := req.BillingPeriod
	if period == "" {
		period = types.BillingMonthly
	}

	sub := &types.Subscription{
		TenantID:        tenantID,
		Status:          types.SubscriptionActive,
		NextBillingDate: period.Advance(s.now()),
		Amount:          req.BillingAmount,
		Period:          period,
	}

	// the processor activates it through the authorized preapproval event
	if req.PreapprovalID != "" {
		id := req.PreapprovalID
		sub.PreapprovalID = &id
		sub.Status = types.SubscriptionPending
	}

	_, err := s.storage.CreateSubscription(ctx, sub)
	return err
}

func (s *Service) grant(ctx context.Context, tenantID, userID string) {
	if err := s.authz.AssignTenantOwner(ctx, tenantID, userID); err != nil {
		s.logger.Errorf("failed to grant %s ownership of tenant %s: %v", userID, tenantID, err)
		s.count("owner_grant", "error")
	}

	if err := s.authz.LinkTenantToPlatform(ctx, tenantID); err != nil {
		s.logger.Errorf("failed to link tenant %s to the platform: %v", tenantID, err)
		s.count("platform_link", "error")
	}
}

// RegisterDNSOnly attaches a domain the owner already holds elsewhere. No
// registrar call is made, the purchase starts at pending and setup waits for
// the owner to point DNS at the hosting platform.
func (s *Service) RegisterDNSOnly(ctx context.Context, tenantID, rawDomain string) (*types.DomainPurchase, error) {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.RegisterDNSOnly")
	defer span.End()

	host, err := normalizeHost(rawDomain)
	if err != nil {
		return nil, err
	}

	var purchase *types.DomainPurchase

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		switch err := s.storage.SetTenantPrimaryHost(ctx, tenantID, host); {
		case errors.Is(err, storage.ErrNotFound):
			return ErrTenantMissing
		case errors.Is(err, storage.ErrDuplicateKey):
			return ErrHostTaken
		case err != nil:
			return err
		}

		p, err := s.storage.CreateDomainPurchase(ctx, &types.DomainPurchase{
			TenantID: tenantID,
			Domain:   host,
			Action:   types.ActionDNSOnly,
			Status:   types.PurchasePending,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return ErrHostTaken
		}
		if err != nil {
			return err
		}

		purchase = p
		return nil
	})

	if err != nil {
		s.count("dns_only", "error")
		return nil, err
	}

	s.count("dns_only", string(purchase.Status))
	s.triggerSetup(purchase.ID)

	return purchase, nil
}

func (s *Service) triggerSetup(purchaseID string) {
	err := s.tasks.Submit("setup:"+purchaseID, func(ctx context.Context) error {
		report, err := s.setup.RunSetup(ctx, purchaseID, setup.Options{})
		if err != nil {
			return err
		}

		if !report.Success {
			return fmt.Errorf("setup of purchase %s finished with %d errors", purchaseID, report.Summary.Errors)
		}

		return nil
	})

	if err != nil {
		s.logger.Errorf("failed to schedule setup for purchase %s: %v", purchaseID, err)
	}
}

// ResolveHost maps a request host to its tenant through the host cache.
// Unknown hosts are not cached.
func (s *Service) ResolveHost(ctx context.Context, host string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.ResolveHost")
	defer span.End()

	h, err := normalizeHost(host)
	if err != nil {
		return nil, err
	}

	key := "host:" + h

	t, ok, err := s.hosts.Get(ctx, key)
	if err != nil {
		s.logger.Warnf("host cache read failed for %s: %v", h, err)
	}
	if ok {
		return t, nil
	}

	t, err = s.storage.GetTenantByHost(ctx, h)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrTenantMissing
	}
	if err != nil {
		return nil, err
	}

	if err := s.hosts.Set(ctx, key, t, s.hostTTL); err != nil {
		s.logger.Warnf("host cache write failed for %s: %v", h, err)
	}

	return t, nil
}

func (s *Service) count(event, outcome string) {
	if err := s.monitor.IncDomainEvent(map[string]string{
		"component": "provisioning",
		"event":     event,
		"outcome":   outcome,
	}); err != nil {
		s.logger.Debugf("failed to count provisioning event: %v", err)
	}
}

// normalizeHost accepts anything a browser may send as Host, a port included.
func normalizeHost(raw string) (string, error) {
	h := domains.Normalize(raw)

	if host, _, err := net.SplitHostPort(h); err == nil {
		h = host
	}

	if h == "" || !strings.Contains(h, ".") || strings.ContainsAny(h, " @") {
		return "", fmt.Errorf("%w: %q", ErrInvalidHost, raw)
	}

	return h, nil
}

func NewService(
	storage StorageInterface,
	db TransactorInterface,
	authz AuthorizerInterface,
	setupService SetupInterface,
	runner TaskRunnerInterface,
	hosts cache.CacheInterface[*types.Tenant],
	hostTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.db = db
	s.authz = authz
	s.setup = setupService
	s.tasks = runner
	s.hosts = hosts

	s.hostTTL = hostTTL
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
