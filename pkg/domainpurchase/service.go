// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domainpurchase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/storefront-service/internal/locks"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/registrar"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/pkg/domains"
	"github.com/canonical/storefront-service/pkg/pricing"
	"github.com/canonical/storefront-service/pkg/setup"
)

const registrarStep = "registrar"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	registrar RegistrarInterface
	setup     SetupInterface
	tasks     TaskRunnerInterface
	locker    locks.LockerInterface
	pricing   *pricing.Calculator

	lockTTL time.Duration
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CheckAvailabilityAndPrice(ctx context.Context, rawDomain string) (*Quote, error) {
	ctx, span := s.tracer.Start(ctx, "domainpurchase.Service.CheckAvailabilityAndPrice")
	defer span.End()

	domain, label, ext, err := domains.Parse(rawDomain)
	if err != nil {
		return nil, err
	}

	availability, err := s.registrar.CheckAvailability(ctx, label, ext)
	if err != nil {
		return nil, err
	}

	q := &Quote{Domain: domain, Available: availability.Available, Currency: s.pricing.Currency()}
	if !q.Available {
		return q, nil
	}

	base, err := s.registrar.QuotePrice(ctx, label, ext, registrar.OperationCreate)
	if err != nil {
		return nil, err
	}

	price := s.pricing.Quote(base)
	q.PriceUSD = price.USD
	q.PriceLocal = price.Local
	q.Display = s.pricing.Format(price)

	return q, nil
}

// PurchaseDomain registers rawDomain for the tenant. Once the purchase row
// exists the registrar outcome is reported through the returned record, a
// failed registration is not an error.
func (s *Service) PurchaseDomain(ctx context.Context, rawDomain, tenantID string) (*types.DomainPurchase, error) {
	ctx, span := s.tracer.Start(ctx, "domainpurchase.Service.PurchaseDomain")
	defer span.End()

	domain, label, ext, err := domains.Parse(rawDomain)
	if err != nil {
		return nil, err
	}

	return s.acquire(ctx, tenantID, domain, label, ext, types.ActionRegister, "")
}

func (s *Service) TransferDomain(ctx context.Context, rawDomain, tenantID, authCode string) (*types.DomainPurchase, error) {
	ctx, span := s.tracer.Start(ctx, "domainpurchase.Service.TransferDomain")
	defer span.End()

	authCode = strings.TrimSpace(authCode)
	if authCode == "" {
		return nil, ErrAuthCodeRequired
	}

	domain, label, ext, err := domains.Parse(rawDomain)
	if err != nil {
		return nil, err
	}

	return s.acquire(ctx, tenantID, domain, label, ext, types.ActionTransfer, authCode)
}

// RegisterDomain runs only the registrar call, callers keep their own bookkeeping.
func (s *Service) RegisterDomain(ctx context.Context, domain string, action types.PurchaseAction, authCode string) (*registrar.PurchaseResult, error) {
	ctx, span := s.tracer.Start(ctx, "domainpurchase.Service.RegisterDomain")
	defer span.End()

	_, label, ext, err := domains.Parse(domain)
	if err != nil {
		return nil, err
	}

	return s.register(ctx, action, label, ext, authCode)
}

func (s *Service) ListPurchases(ctx context.Context, tenantID string) ([]*types.DomainPurchase, error) {
	ctx, span := s.tracer.Start(ctx, "domainpurchase.Service.ListPurchases")
	defer span.End()

	return s.storage.ListDomainPurchasesByTenant(ctx, tenantID)
}

func (s *Service) GetPurchase(ctx context.Context, id string) (*types.DomainPurchase, error) {
	ctx, span := s.tracer.Start(ctx, "domainpurchase.Service.GetPurchase")
	defer span.End()

	return s.storage.GetDomainPurchase(ctx, id)
}

func (s *Service) acquire(ctx context.Context, tenantID, domain, label, ext string, action types.PurchaseAction, authCode string) (*types.DomainPurchase, error) {
	lock, err := s.locker.Acquire(ctx, "purchase:"+domain, s.lockTTL)
	if errors.Is(err, locks.ErrNotAcquired) {
		s.count(action, "locked")
		return nil, ErrPurchaseInProgress
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", domain, err)
	}

	defer func() {
		// a cancelled request must still free the key
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warnf("failed to release purchase lock for %s: %v", domain, err)
		}
	}()

	p, err := s.storage.CreateDomainPurchase(ctx, &types.DomainPurchase{
		TenantID:      tenantID,
		Domain:        domain,
		Action:        action,
		Status:        types.PurchaseProcessing,
		ContactHandle: s.registrar.ContactHandle(),
	})

	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		s.count(action, "duplicate")
		return nil, ErrDomainAlreadyPurchased
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return nil, ErrTenantNotFound
	case err != nil:
		return nil, err
	}

	res, err := s.register(ctx, action, label, ext, authCode)

	// the row exists, its outcome is recorded even if the caller went away
	bg := context.WithoutCancel(ctx)
	if err != nil {
		return s.markFailed(bg, p, err), nil
	}

	return s.markRegistered(bg, p, res), nil
}

func (s *Service) register(ctx context.Context, action types.PurchaseAction, label, ext, authCode string) (*registrar.PurchaseResult, error) {
	switch action {
	case types.ActionRegister:
		return s.registrar.Purchase(ctx, registrar.PurchaseRequest{Label: label, Extension: ext, Period: 1})
	case types.ActionTransfer:
		if authCode == "" {
			return nil, ErrAuthCodeRequired
		}
		return s.registrar.Transfer(ctx, registrar.TransferRequest{Label: label, Extension: ext, AuthCode: authCode})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAction, action)
	}
}

func (s *Service) markRegistered(ctx context.Context, p *types.DomainPurchase, res *registrar.PurchaseResult) *types.DomainPurchase {
	to, err := setup.Transition(p.Status, setup.EventPurchased)
	if err != nil {
		s.logger.Errorf("purchase %s: %v", p.ID, err)
		return p
	}

	domainID := res.DomainID
	p.Status = to
	p.RegistrarDomainID = &domainID
	p.Metadata.RegistrarResponse = res.Raw

	if err := s.storage.UpdateDomainPurchase(ctx, p, []string{"status", "openprovider_domain_id", "metadata"}); err != nil {
		// the stored row stays at processing and needs an operator
		s.logger.Errorf("domain %s registered with id %d but purchase %s was not updated: %v", p.Domain, domainID, p.ID, err)
		s.count(p.Action, "unrecorded")
		return p
	}

	s.count(p.Action, string(p.Status))
	s.logger.Infof("domain %s registered for tenant %s", p.Domain, p.TenantID)

	s.triggerSetup(p.ID)

	return p
}

func (s *Service) markFailed(ctx context.Context, p *types.DomainPurchase, cause error) *types.DomainPurchase {
	c := registrar.Classify(cause)

	to, err := setup.Transition(p.Status, setup.EventFail)
	if err != nil {
		s.logger.Errorf("purchase %s: %v", p.ID, err)
		return p
	}

	p.Status = to
	p.Metadata.ErrorCode = c.ErrorCode
	p.Metadata.Error = c.Message
	p.Metadata.Remediation = c.Remediation
	p.Metadata.ErrorHistory = append(p.Metadata.ErrorHistory, types.ErrorEntry{
		Timestamp: s.now(),
		Error:     cause.Error(),
		Step:      registrarStep,
	})

	if err := s.storage.UpdateDomainPurchase(ctx, p, []string{"status", "metadata"}); err != nil {
		s.logger.Errorf("failed to record registrar failure on purchase %s: %v", p.ID, err)
	}

	s.logger.Warnf("registrar rejected %s for tenant %s: %s (%v)", p.Domain, p.TenantID, c.ErrorCode, cause)
	s.count(p.Action, string(p.Status))

	return p
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

func (s *Service) count(action types.PurchaseAction, outcome string) {
	if err := s.monitor.IncDomainEvent(map[string]string{
		"component": "purchase",
		"event":     string(action),
		"outcome":   outcome,
	}); err != nil {
		s.logger.Debugf("failed to count purchase event: %v", err)
	}
}

func NewService(
	storage StorageInterface,
	registrarClient RegistrarInterface,
	setupService SetupInterface,
	runner TaskRunnerInterface,
	locker locks.LockerInterface,
	calculator *pricing.Calculator,
	lockTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.registrar = registrarClient
	s.setup = setupService
	s.tasks = runner
	s.locker = locker
	s.pricing = calculator

	s.lockTTL = lockTTL
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
