// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/payments"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
)

type Service struct {
	storage  StorageInterface
	payments PaymentsInterface
	identity IdentityInterface

	config Config
	now    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// StartSubscription opens a preapproval for the basic plan and records the
// subscription as pending. The authorized preapproval webhook activates it.
func (s *Service) StartSubscription(ctx context.Context, tenantID, userID string, period types.BillingPeriod) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.Service.StartSubscription")
	defer span.End()

	if period == "" {
		period = types.BillingMonthly
	}

	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if t.Plan.Paid() {
		return nil, ErrAlreadySubscribed
	}

	email, err := s.identity.GetIdentityEmail(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve payer email: %w", err)
	}

	amount, frequency := s.config.MonthlyPrice, 1
	if period == types.BillingYearly {
		amount, frequency = s.config.MonthlyPrice*12, 12
	}

	p, err := s.payments.CreatePreapproval(ctx, payments.PreapprovalRequest{
		Reason:            fmt.Sprintf("%s plan for %s", types.PlanBasic, t.Name),
		ExternalReference: t.ID,
		PayerEmail:        email,
		BackURL:           s.config.BackURL,
		AutoRecurring: payments.AutoRecurring{
			Frequency:         frequency,
			FrequencyType:     "months",
			TransactionAmount: amount,
			CurrencyID:        s.config.Currency,
		},
	})
	if err != nil {
		s.count("error")
		return nil, fmt.Errorf("failed to create preapproval: %w", err)
	}

	preapprovalID := p.ID
	sub, err := s.storage.CreateSubscription(ctx, &types.Subscription{
		TenantID:        t.ID,
		Status:          types.SubscriptionPending,
		NextBillingDate: period.Advance(s.now()),
		Amount:          amount,
		Period:          period,
		PreapprovalID:   &preapprovalID,
	})
	if err != nil {
		s.count("error")
		return nil, fmt.Errorf("failed to record subscription: %w", err)
	}

	s.logger.Infof("checkout opened for tenant %s, preapproval %s", t.ID, p.ID)
	s.count("success")

	return &Session{
		SubscriptionID: sub.ID,
		PreapprovalID:  p.ID,
		InitPoint:      p.InitPoint,
		Amount:         amount,
		Period:         period,
	}, nil
}

func (s *Service) count(outcome string) {
	if err := s.monitor.IncDomainEvent(map[string]string{
		"component": "checkout",
		"event":     "subscription_start",
		"outcome":   outcome,
	}); err != nil {
		s.logger.Debugf("failed to count checkout event: %v", err)
	}
}

func NewService(
	storage StorageInterface,
	paymentsClient PaymentsInterface,
	identity IdentityInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.payments = paymentsClient
	s.identity = identity
	s.config = config
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
