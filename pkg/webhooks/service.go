// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/notifications"
	"github.com/canonical/storefront-service/internal/payments"
	"github.com/canonical/storefront-service/internal/registrar"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/pkg/domains"
	"github.com/canonical/storefront-service/pkg/provisioning"
	"github.com/canonical/storefront-service/pkg/setup"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	db          TransactorInterface
	payments    PaymentsInterface
	provisioner ProvisionerInterface
	registrar   RegistrarInterface
	setup       SetupInterface
	tasks       TaskRunnerInterface
	notifier    NotifierInterface
	identity    IdentityInterface

	config Config
	now    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleEvent applies one processor notification. The resource is always
// fetched back from the processor, the body only names it.
func (s *Service) HandleEvent(ctx context.Context, ev Event) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleEvent")
	defer span.End()

	id := ev.Data.ID.String()

	err := s.storage.RecordWebhookEvent(ctx, &types.WebhookEvent{
		RequestID:  ev.RequestID,
		Type:       ev.Type,
		Action:     ev.Action,
		ResourceID: id,
		Verified:   ev.Verified,
	})
	if err != nil {
		s.logger.Warnf("failed to record webhook %s: %v", ev.RequestID, err)
	}

	if id == "" {
		s.logger.Debugf("ignoring %s webhook without a resource id", ev.Type)
		s.count(ev.Type, "ignored")
		return nil
	}

	switch ev.Type {
	case TypePreapproval, TypeSubscriptionPreapproval:
		err = s.handlePreapproval(ctx, id)
	case TypePayment:
		err = s.handlePayment(ctx, id)
	default:
		s.logger.Debugf("ignoring webhook type %s", ev.Type)
		s.count(ev.Type, "ignored")
		return nil
	}

	if err != nil {
		s.count(ev.Type, "error")
		return &ProcessingError{Type: ev.Type, ResourceID: id, Err: err}
	}

	s.count(ev.Type, "processed")
	return nil
}

func (s *Service) handlePreapproval(ctx context.Context, id string) error {
	pre, err := s.payments.GetPreapproval(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch preapproval: %w", err)
	}

	sub, err := s.storage.GetSubscriptionByPreapprovalID(ctx, pre.ID)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Infof("no subscription for preapproval %s, ignoring %s", pre.ID, pre.Status)
		return nil
	}
	if err != nil {
		return err
	}

	switch pre.Status {
	case payments.PreapprovalAuthorized:
		return s.activate(ctx, sub)
	case payments.PreapprovalCancelled, payments.PreapprovalPaused:
		return s.deactivate(ctx, sub)
	default:
		s.logger.Debugf("preapproval %s is %s, nothing to do", pre.ID, pre.Status)
		return nil
	}
}

// activate marks the subscription active and makes sure the tenant is on a
// paid plan.
func (s *Service) activate(ctx context.Context, sub *types.Subscription) error {
	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if sub.Status != types.SubscriptionActive {
			if err := s.storage.SetSubscriptionStatus(ctx, sub.ID, types.SubscriptionActive); err != nil {
				return err
			}
		}

		t, err := s.storage.GetTenantByID(ctx, sub.TenantID)
		if err != nil {
			return err
		}

		if !t.Plan.Paid() {
			if err := s.storage.SetTenantPlan(ctx, t.ID, types.PlanBasic); err != nil {
				return err
			}
		}

		if t.Status != types.TenantActive {
			if err := s.storage.SetTenantStatus(ctx, t.ID, types.TenantActive); err != nil {
				return err
			}
		}

		s.logger.Infof("subscription %s of tenant %s is active", sub.ID, sub.TenantID)
		return nil
	})
}

// deactivate cancels the subscription and moves the tenant back to the free
// plan. The store itself stays online.
func (s *Service) deactivate(ctx context.Context, sub *types.Subscription) error {
	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if sub.Status != types.SubscriptionCancelled {
			if err := s.storage.SetSubscriptionStatus(ctx, sub.ID, types.SubscriptionCancelled); err != nil {
				return err
			}
		}

		if err := s.storage.SetTenantPlan(ctx, sub.TenantID, types.PlanFree); err != nil {
			return err
		}

		s.logger.Infof("subscription %s of tenant %s cancelled, plan downgraded", sub.ID, sub.TenantID)
		return nil
	})
}

func (s *Service) handlePayment(ctx context.Context, id string) error {
	p, err := s.payments.GetPayment(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch payment: %w", err)
	}

	if !p.Approved() {
		s.logger.Debugf("payment %s is %s, nothing to do", p.ID, p.Status)
		return nil
	}

	switch {
	case p.MetadataBool(metaCombined):
		return s.combinedPurchase(ctx, p)
	case p.Subscription() != "":
		return s.renew(ctx, p)
	case p.ExternalReference != "":
		return s.orderPaid(ctx, p)
	default:
		s.logger.Infof("approved payment %s references nothing known", p.ID)
		return nil
	}
}

// renew applies a recurring charge. The payment ledger makes a redelivered
// payment a no-op, so next_billing_date only moves forward once per payment.
func (s *Service) renew(ctx context.Context, p *payments.Payment) error {
	sub, err := s.storage.GetSubscriptionByPreapprovalID(ctx, p.Subscription())
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Infof("no subscription for preapproval %s, payment %s ignored", p.Subscription(), p.ID)
		return nil
	}
	if err != nil {
		return err
	}

	period := s.periodFor(p.TransactionAmount)

	var applied bool
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		applied, err = s.storage.ApplySubscriptionPayment(ctx, &types.SubscriptionPayment{
			PaymentID:      p.ID.String(),
			SubscriptionID: sub.ID,
			Amount:         p.TransactionAmount,
			AppliedAt:      s.now(),
		}, period)
		return err
	})
	if err != nil {
		return err
	}

	if !applied {
		s.logger.Infof("payment %s already applied to subscription %s", p.ID, sub.ID)
		s.count(TypePayment, "renewal_duplicate")
		return nil
	}

	s.logger.Infof("subscription %s renewed for one %s period", sub.ID, period)
	s.count(TypePayment, "renewed")
	return nil
}

func (s *Service) orderPaid(ctx context.Context, p *payments.Payment) error {
	order, err := s.storage.GetOrderByID(ctx, p.ExternalReference)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Infof("no order %s for payment %s", p.ExternalReference, p.ID)
		return nil
	}
	if err != nil {
		return err
	}

	if order.Status == types.OrderPaid {
		s.logger.Debugf("order %s already paid", order.ID)
		return nil
	}

	changed, err := s.storage.MarkOrderPaid(ctx, order.ID, p.ID.String())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	s.count(TypePayment, "order_paid")
	s.notifyOrderPaid(order)

	return nil
}

func (s *Service) notifyOrderPaid(order *types.Order) {
	err := s.tasks.Submit("order-paid:"+order.ID, func(ctx context.Context) error {
		tenant, err := s.storage.GetTenantByID(ctx, order.TenantID)
		if err != nil {
			return err
		}

		owner, err := s.storage.GetTenantOwner(ctx, order.TenantID)
		if err != nil {
			return err
		}

		email, err := s.identity.GetIdentityEmail(ctx, owner.KratosIdentityID)
		if err != nil {
			return err
		}

		return s.notifier.SendOrderPaid(ctx, email, notifications.OrderPaid{
			TenantName:   tenant.Name,
			OrderID:      order.ID,
			CustomerName: order.CustomerName,
			Amount:       fmt.Sprintf("$%.2f %s", order.Total, s.config.Currency),
			DashboardURL: s.config.DashboardURL,
		})
	})

	if err != nil {
		s.logger.Errorf("failed to schedule paid notification for order %s: %v", order.ID, err)
	}
}

// combinedPurchase provisions the store paid for together with its domain.
// A redelivery finds the host taken and stops there. Failures after the
// tenant exists are reported but do not undo it.
func (s *Service) combinedPurchase(ctx context.Context, p *payments.Payment) error {
	domain := domains.Normalize(p.MetadataString(metaDomain))
	userID := p.MetadataString(metaUserID)
	if domain == "" || userID == "" {
		return fmt.Errorf("combined purchase payment %s lacks domain or user metadata", p.ID)
	}

	plan := types.Plan(p.MetadataString(metaPlan))
	if plan == "" {
		plan = types.PlanBasic
	}

	name := p.MetadataString(metaStoreName)
	if name == "" {
		name = domain
	}

	amount := metadataFloat(p, metaPlanAmount)
	if amount == 0 && plan.Paid() {
		amount = max(p.TransactionAmount-metadataFloat(p, metaDomainPrice), 0)
	}

	period := types.BillingPeriod(p.MetadataString(metaBillingPeriod))
	if period != types.BillingMonthly && period != types.BillingYearly {
		period = s.periodFor(amount)
	}

	tenant, err := s.provisioner.ProvisionTenant(ctx, provisioning.Request{
		Name:          name,
		Domain:        domain,
		OwnerUserID:   userID,
		Plan:          plan,
		BillingAmount: amount,
		BillingPeriod: period,
		PreapprovalID: p.Subscription(),
		SeedContent:   true,
	})
	if errors.Is(err, provisioning.ErrHostTaken) {
		s.logger.Infof("store for %s already provisioned, payment %s ignored", domain, p.ID)
		s.count(TypePayment, "combined_duplicate")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to provision store for %s: %w", domain, err)
	}

	s.logger.Infof("provisioned tenant %s for combined purchase %s", tenant.ID, p.ID)

	purchase, err := s.registerDomain(ctx, tenant.ID, domain, p)
	if err != nil {
		return fmt.Errorf("tenant %s created but domain %s was not registered: %w", tenant.ID, domain, err)
	}

	s.triggerSetup(purchase.ID)

	// a redelivery stops at the taken host, so nothing after it is retried
	if p.MetadataBool(metaAutoRenew) {
		err := s.storage.CreateDomainRenewal(context.WithoutCancel(ctx), &types.DomainRenewal{
			TenantID:        tenant.ID,
			PurchaseID:      &purchase.ID,
			Domain:          domain,
			Amount:          metadataFloat(p, metaDomainPrice),
			NextRenewalDate: s.now().AddDate(1, 0, 0),
			Enabled:         true,
		})
		if err != nil {
			return fmt.Errorf("failed to schedule renewal of %s: %w", domain, err)
		}
	}

	s.count(TypePayment, "combined_provisioned")
	return nil
}

// registerDomain calls the registrar and records the outcome as a purchase
// row. A registrar failure is stored on the row and returned.
func (s *Service) registerDomain(ctx context.Context, tenantID, domain string, p *payments.Payment) (*types.DomainPurchase, error) {
	action := types.ActionRegister
	if types.PurchaseAction(p.MetadataString(metaDomainAction)) == types.ActionTransfer {
		action = types.ActionTransfer
	}

	record := &types.DomainPurchase{
		TenantID: tenantID,
		Domain:   domain,
		Action:   action,
		Status:   types.PurchasePending,
	}

	res, regErr := s.registrar.RegisterDomain(ctx, domain, action, p.MetadataString(metaAuthCode))
	if regErr != nil {
		c := registrar.Classify(regErr)

		record.Status = types.PurchaseFailed
		record.Metadata.ErrorCode = c.ErrorCode
		record.Metadata.Error = c.Message
		record.Metadata.Remediation = c.Remediation
		record.Metadata.ErrorHistory = []types.ErrorEntry{{Timestamp: s.now(), Error: regErr.Error(), Step: "registrar"}}
	} else {
		domainID := res.DomainID
		record.RegistrarDomainID = &domainID
		record.Metadata.RegistrarResponse = res.Raw
	}

	// the registrar outcome is recorded even if the delivery was cancelled
	created, err := s.storage.CreateDomainPurchase(context.WithoutCancel(ctx), record)
	if err != nil {
		return nil, errors.Join(regErr, fmt.Errorf("failed to record purchase: %w", err))
	}

	if regErr != nil {
		return nil, regErr
	}

	return created, nil
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

// periodFor treats amounts at or above the annual plan minimum as yearly.
func (s *Service) periodFor(amount float64) types.BillingPeriod {
	if amount >= s.config.AnnualPlanMinimum {
		return types.BillingYearly
	}
	return types.BillingMonthly
}

func (s *Service) count(eventType, outcome string) {
	if err := s.monitor.IncDomainEvent(map[string]string{
		"component": "webhooks",
		"event":     eventType,
		"outcome":   outcome,
	}); err != nil {
		s.logger.Debugf("failed to count webhook event: %v", err)
	}
}

func metadataFloat(p *payments.Payment, key string) float64 {
	f, err := strconv.ParseFloat(p.MetadataString(key), 64)
	if err != nil {
		return 0
	}
	return f
}

func NewService(
	storage StorageInterface,
	db TransactorInterface,
	paymentsClient PaymentsInterface,
	provisioner ProvisionerInterface,
	registrarService RegistrarInterface,
	setupService SetupInterface,
	runner TaskRunnerInterface,
	notifier NotifierInterface,
	identity IdentityInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.db = db
	s.payments = paymentsClient
	s.provisioner = provisioner
	s.registrar = registrarService
	s.setup = setupService
	s.tasks = runner
	s.notifier = notifier
	s.identity = identity

	s.config = config
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
