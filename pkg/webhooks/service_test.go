// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/notifications"
	"github.com/canonical/storefront-service/internal/payments"
	"github.com/canonical/storefront-service/internal/registrar"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tasks"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/pkg/provisioning"
	"github.com/canonical/storefront-service/pkg/setup"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	storage     *MockStorageInterface
	db          *MockTransactorInterface
	payments    *MockPaymentsInterface
	provisioner *MockProvisionerInterface
	registrar   *MockRegistrarInterface
	setup       *MockSetupInterface
	tasks       *MockTaskRunnerInterface
	notifier    *MockNotifierInterface
	identity    *MockIdentityInterface
}

func newTestService(t *testing.T) (*Service, *mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &mocks{
		storage:     NewMockStorageInterface(ctrl),
		db:          NewMockTransactorInterface(ctrl),
		payments:    NewMockPaymentsInterface(ctrl),
		provisioner: NewMockProvisionerInterface(ctrl),
		registrar:   NewMockRegistrarInterface(ctrl),
		setup:       NewMockSetupInterface(ctrl),
		tasks:       NewMockTaskRunnerInterface(ctrl),
		notifier:    NewMockNotifierInterface(ctrl),
		identity:    NewMockIdentityInterface(ctrl),
	}

	m.storage.EXPECT().RecordWebhookEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	s := NewService(
		m.storage, m.db, m.payments, m.provisioner, m.registrar, m.setup, m.tasks, m.notifier, m.identity,
		Config{AnnualPlanMinimum: 1000, Currency: "MXN", DashboardURL: "https://admin.example.com"},
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(),
	)
	s.now = func() time.Time { return fixedNow }

	return s, m
}

func event(eventType, id string) Event {
	return Event{Type: eventType, Data: EventData{ID: payments.ID(id)}, RequestID: "req-1", Verified: true}
}

func TestHandleEventRecordsDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)

	s := NewService(
		mockStorage, nil, nil, nil, nil, nil, nil, nil, nil, Config{},
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(),
	)

	mockStorage.EXPECT().RecordWebhookEvent(gomock.Any(), &types.WebhookEvent{
		RequestID:  "req-1",
		Type:       "merchant_order",
		Action:     "created",
		ResourceID: "77",
		Verified:   true,
	}).Return(errors.New("db down"))

	ev := event("merchant_order", "77")
	ev.Action = "created"

	if err := s.HandleEvent(context.Background(), ev); err != nil {
		t.Errorf("expected unknown types to be ignored, got %v", err)
	}
}

func TestHandlePreapproval(t *testing.T) {
	pending := &types.Subscription{ID: "sub-1", TenantID: "tenant-1", Status: types.SubscriptionPending}
	active := &types.Subscription{ID: "sub-1", TenantID: "tenant-1", Status: types.SubscriptionActive}

	tests := []struct {
		name        string
		status      string
		setupMocks  func(*mocks)
		expectedErr bool
	}{
		{
			name:   "authorized activates subscription and upgrades plan",
			status: payments.PreapprovalAuthorized,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetSubscriptionByPreapprovalID(gomock.Any(), "pre-1").Return(pending, nil)
				m.storage.EXPECT().SetSubscriptionStatus(gomock.Any(), "sub-1", types.SubscriptionActive).Return(nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Plan: types.PlanFree, Status: types.TenantPending}, nil)
				m.storage.EXPECT().SetTenantPlan(gomock.Any(), "tenant-1", types.PlanBasic).Return(nil)
				m.storage.EXPECT().SetTenantStatus(gomock.Any(), "tenant-1", types.TenantActive).Return(nil)
			},
		},
		{
			name:   "authorized twice writes nothing",
			status: payments.PreapprovalAuthorized,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetSubscriptionByPreapprovalID(gomock.Any(), "pre-1").Return(active, nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Plan: types.PlanPremium, Status: types.TenantActive}, nil)
			},
		},
		{
			name:   "cancelled downgrades to free",
			status: payments.PreapprovalCancelled,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetSubscriptionByPreapprovalID(gomock.Any(), "pre-1").Return(active, nil)
				m.storage.EXPECT().SetSubscriptionStatus(gomock.Any(), "sub-1", types.SubscriptionCancelled).Return(nil)
				m.storage.EXPECT().SetTenantPlan(gomock.Any(), "tenant-1", types.PlanFree).Return(nil)
			},
		},
		{
			name:   "paused downgrades to free",
			status: payments.PreapprovalPaused,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetSubscriptionByPreapprovalID(gomock.Any(), "pre-1").Return(active, nil)
				m.storage.EXPECT().SetSubscriptionStatus(gomock.Any(), "sub-1", types.SubscriptionCancelled).Return(nil)
				m.storage.EXPECT().SetTenantPlan(gomock.Any(), "tenant-1", types.PlanFree).Return(nil)
			},
		},
		{
			name:   "pending is a no-op",
			status: payments.PreapprovalPending,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetSubscriptionByPreapprovalID(gomock.Any(), "pre-1").Return(pending, nil)
			},
		},
		{
			name:   "storage failure",
			status: payments.PreapprovalAuthorized,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetSubscriptionByPreapprovalID(gomock.Any(), "pre-1").Return(nil, errors.New("db down"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)

			m.payments.EXPECT().GetPreapproval(gomock.Any(), "pre-1").Return(&payments.Preapproval{ID: "pre-1", Status: tt.status}, nil)
			tt.setupMocks(m)

			err := s.HandleEvent(context.Background(), event(TypeSubscriptionPreapproval, "pre-1"))
			if tt.expectedErr {
				var perr *ProcessingError
				if !errors.As(err, &perr) {
					t.Fatalf("expected a processing error, got %v", err)
				}
				if perr.ResourceID != "pre-1" {
					t.Errorf("expected resource pre-1, got %s", perr.ResourceID)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// An authorized event for a preapproval nobody subscribed with touches no rows.
func TestUnknownPreapprovalIsIgnored(t *testing.T) {
	s, m := newTestService(t)

	m.payments.EXPECT().GetPreapproval(gomock.Any(), "pre-unknown").Return(&payments.Preapproval{ID: "pre-unknown", Status: payments.PreapprovalAuthorized}, nil)
	m.storage.EXPECT().GetSubscriptionByPreapprovalID(gomock.Any(), "pre-unknown").Return(nil, storage.ErrNotFound)

	if err := s.HandleEvent(context.Background(), event(TypePreapproval, "pre-unknown")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPaymentNotApproved(t *testing.T) {
	s, m := newTestService(t)

	m.payments.EXPECT().GetPayment(gomock.Any(), "900").Return(&payments.Payment{ID: "900", Status: "rejected", ExternalReference: "order-1"}, nil)

	if err := s.HandleEvent(context.Background(), event(TypePayment, "900")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPaymentFetchFailure(t *testing.T) {
	s, m := newTestService(t)

	m.payments.EXPECT().GetPayment(gomock.Any(), "900").Return(nil, errors.New("processor down"))

	var perr *ProcessingError
	if err := s.HandleEvent(context.Background(), event(TypePayment, "900")); !errors.As(err, &perr) {
		t.Errorf("expected a processing error, got %v", err)
	}
}

// ledger stands in for the subscription_payments table.
type ledger struct {
	applied map[string]bool
	next    time.Time
	periods []types.BillingPeriod
}

func (l *ledger) apply(_ context.Context, p *types.SubscriptionPayment, period types.BillingPeriod) (bool, error) {
	if l.applied[p.PaymentID] {
		return false, nil
	}

	l.applied[p.PaymentID] = true
	l.next = period.Advance(l.next)
	l.periods = append(l.periods, period)

	return true, nil
}

func TestRenewalNeverRegresses(t *testing.T) {
	s, m := newTestService(t)

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	l := &ledger{applied: map[string]bool{}, next: start}

	sub := &types.Subscription{ID: "sub-1", TenantID: "tenant-1", Status: types.SubscriptionActive}
	m.storage.EXPECT().GetSubscriptionByPreapprovalID(gomock.Any(), "pre-1").Return(sub, nil).AnyTimes()
	m.storage.EXPECT().ApplySubscriptionPayment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(l.apply).AnyTimes()

	deliveries := []struct {
		id     string
		amount float64
	}{
		{"p1", 299},
		{"p1", 299},
		{"p2", 2990},
		{"p1", 299},
		{"p3", 299},
		{"p3", 299},
	}

	for _, d := range deliveries {
		m.payments.EXPECT().GetPayment(gomock.Any(), d.id).Return(&payments.Payment{
			ID:                payments.ID(d.id),
			Status:            payments.PaymentApproved,
			PreapprovalID:     "pre-1",
			TransactionAmount: d.amount,
		}, nil)
	}

	previous := l.next
	for _, d := range deliveries {
		if err := s.HandleEvent(context.Background(), event(TypePayment, d.id)); err != nil {
			t.Fatalf("unexpected error for %s: %v", d.id, err)
		}

		if l.next.Before(previous) {
			t.Fatalf("next billing date moved backwards from %s to %s", previous, l.next)
		}
		previous = l.next
	}

	expectedPeriods := []types.BillingPeriod{types.BillingMonthly, types.BillingYearly, types.BillingMonthly}
	if len(l.periods) != len(expectedPeriods) {
		t.Fatalf("expected %d applied payments, got %v", len(expectedPeriods), l.periods)
	}
	for i, p := range expectedPeriods {
		if l.periods[i] != p {
			t.Errorf("payment %d: expected %s, got %s", i, p, l.periods[i])
		}
	}

	expected := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	if !l.next.Equal(expected) {
		t.Errorf("expected next billing date %s, got %s", expected, l.next)
	}
}

func TestRenewalUnknownSubscription(t *testing.T) {
	s, m := newTestService(t)

	m.payments.EXPECT().GetPayment(gomock.Any(), "p1").Return(&payments.Payment{
		ID:       "p1",
		Status:   payments.PaymentApproved,
		Metadata: map[string]any{"preapproval_id": "pre-gone"},
	}, nil)
	m.storage.EXPECT().GetSubscriptionByPreapprovalID(gomock.Any(), "pre-gone").Return(nil, storage.ErrNotFound)

	if err := s.HandleEvent(context.Background(), event(TypePayment, "p1")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOrderPaymentDuplicateDelivery(t *testing.T) {
	s, m := newTestService(t)

	payment := &payments.Payment{ID: "555", Status: payments.PaymentApproved, ExternalReference: "order-1", TransactionAmount: 250}
	m.payments.EXPECT().GetPayment(gomock.Any(), "555").Return(payment, nil).Times(2)

	gomock.InOrder(
		m.storage.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(&types.Order{ID: "order-1", TenantID: "tenant-1", Status: types.OrderPending, Total: 250}, nil),
		m.storage.EXPECT().MarkOrderPaid(gomock.Any(), "order-1", "555").Return(true, nil),
		m.tasks.EXPECT().Submit("order-paid:order-1", gomock.Any()).Return(nil),
		m.storage.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(&types.Order{ID: "order-1", TenantID: "tenant-1", Status: types.OrderPaid, Total: 250}, nil),
	)

	for i := 0; i < 2; i++ {
		if err := s.HandleEvent(context.Background(), event(TypePayment, "555")); err != nil {
			t.Fatalf("delivery %d: unexpected error: %v", i+1, err)
		}
	}
}

func TestOrderPaymentConcurrentDelivery(t *testing.T) {
	s, m := newTestService(t)

	m.payments.EXPECT().GetPayment(gomock.Any(), "555").Return(&payments.Payment{ID: "555", Status: payments.PaymentApproved, ExternalReference: "order-1"}, nil)
	m.storage.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(&types.Order{ID: "order-1", Status: types.OrderPending}, nil)
	m.storage.EXPECT().MarkOrderPaid(gomock.Any(), "order-1", "555").Return(false, nil)

	if err := s.HandleEvent(context.Background(), event(TypePayment, "555")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOrderPaidNotification(t *testing.T) {
	s, m := newTestService(t)

	order := &types.Order{ID: "order-1", TenantID: "tenant-1", Status: types.OrderPending, Total: 250, CustomerName: "Ana"}

	var task tasks.Task
	m.payments.EXPECT().GetPayment(gomock.Any(), "555").Return(&payments.Payment{ID: "555", Status: payments.PaymentApproved, ExternalReference: "order-1"}, nil)
	m.storage.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(order, nil)
	m.storage.EXPECT().MarkOrderPaid(gomock.Any(), "order-1", "555").Return(true, nil)
	m.tasks.EXPECT().Submit("order-paid:order-1", gomock.Any()).DoAndReturn(func(_ string, fn tasks.Task) error {
		task = fn
		return nil
	})

	if err := s.HandleEvent(context.Background(), event(TypePayment, "555")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task == nil {
		t.Fatal("expected the notification to be scheduled")
	}

	m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Name: "Mi Tienda"}, nil)
	m.storage.EXPECT().GetTenantOwner(gomock.Any(), "tenant-1").Return(&types.Membership{KratosIdentityID: "user-1"}, nil)
	m.identity.EXPECT().GetIdentityEmail(gomock.Any(), "user-1").Return("owner@example.com", nil)
	m.notifier.EXPECT().SendOrderPaid(gomock.Any(), "owner@example.com", notifications.OrderPaid{
		TenantName:   "Mi Tienda",
		OrderID:      "order-1",
		CustomerName: "Ana",
		Amount:       "$250.00 MXN",
		DashboardURL: "https://admin.example.com",
	}).Return(nil)

	if err := task(context.Background()); err != nil {
		t.Errorf("unexpected task error: %v", err)
	}
}

func TestOrderPaymentUnknownOrder(t *testing.T) {
	s, m := newTestService(t)

	m.payments.EXPECT().GetPayment(gomock.Any(), "555").Return(&payments.Payment{ID: "555", Status: payments.PaymentApproved, ExternalReference: "order-x"}, nil)
	m.storage.EXPECT().GetOrderByID(gomock.Any(), "order-x").Return(nil, storage.ErrNotFound)

	if err := s.HandleEvent(context.Background(), event(TypePayment, "555")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func combinedPayment() *payments.Payment {
	return &payments.Payment{
		ID:                "777",
		Status:            payments.PaymentApproved,
		PreapprovalID:     "pre-9",
		TransactionAmount: 589,
		Metadata: map[string]any{
			"combined_purchase": true,
			"domain":            "MiTienda.store",
			"store_name":        "Mi Tienda",
			"plan":              "basic",
			"user_id":           "user-1",
			"domain_price":      float64(290),
			"auto_renew":        "true",
		},
	}
}

func TestCombinedPurchase(t *testing.T) {
	s, m := newTestService(t)

	m.payments.EXPECT().GetPayment(gomock.Any(), "777").Return(combinedPayment(), nil)

	m.provisioner.EXPECT().ProvisionTenant(gomock.Any(), provisioning.Request{
		Name:          "Mi Tienda",
		Domain:        "mitienda.store",
		OwnerUserID:   "user-1",
		Plan:          types.PlanBasic,
		BillingAmount: 299,
		BillingPeriod: types.BillingMonthly,
		PreapprovalID: "pre-9",
		SeedContent:   true,
	}).Return(&types.Tenant{ID: "tenant-1", Name: "Mi Tienda"}, nil)

	m.registrar.EXPECT().RegisterDomain(gomock.Any(), "mitienda.store", types.ActionRegister, "").
		Return(&registrar.PurchaseResult{DomainID: 12345, Status: "ACT"}, nil)

	m.storage.EXPECT().CreateDomainPurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *types.DomainPurchase) (*types.DomainPurchase, error) {
			if p.Status != types.PurchasePending || p.RegistrarDomainID == nil || *p.RegistrarDomainID != 12345 {
				return nil, errors.New("unexpected purchase row")
			}
			created := *p
			created.ID = "purchase-1"
			return &created, nil
		},
	)

	var task tasks.Task
	m.tasks.EXPECT().Submit("setup:purchase-1", gomock.Any()).DoAndReturn(func(_ string, fn tasks.Task) error {
		task = fn
		return nil
	})

	m.storage.EXPECT().CreateDomainRenewal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.DomainRenewal) error {
			if r.Domain != "mitienda.store" || r.Amount != 290 || !r.Enabled {
				t.Errorf("unexpected renewal %+v", r)
			}
			if r.PurchaseID == nil || *r.PurchaseID != "purchase-1" {
				t.Errorf("expected renewal linked to purchase-1, got %v", r.PurchaseID)
			}
			if !r.NextRenewalDate.Equal(fixedNow.AddDate(1, 0, 0)) {
				t.Errorf("expected renewal in a year, got %s", r.NextRenewalDate)
			}
			return nil
		},
	)

	if err := s.HandleEvent(context.Background(), event(TypePayment, "777")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.setup.EXPECT().RunSetup(gomock.Any(), "purchase-1", setup.Options{}).Return(&setup.Report{Success: true}, nil)
	if err := task(context.Background()); err != nil {
		t.Errorf("unexpected setup task error: %v", err)
	}
}

func TestCombinedPurchaseRecordsDomainAfterCancel(t *testing.T) {
	s, m := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.payments.EXPECT().GetPayment(gomock.Any(), "777").Return(combinedPayment(), nil)
	m.provisioner.EXPECT().ProvisionTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: "tenant-1"}, nil)

	m.registrar.EXPECT().RegisterDomain(gomock.Any(), "mitienda.store", types.ActionRegister, "").DoAndReturn(
		func(context.Context, string, types.PurchaseAction, string) (*registrar.PurchaseResult, error) {
			cancel()
			return &registrar.PurchaseResult{DomainID: 12345, Status: "ACT"}, nil
		},
	)
	m.storage.EXPECT().CreateDomainPurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, p *types.DomainPurchase) (*types.DomainPurchase, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			created := *p
			created.ID = "purchase-1"
			return &created, nil
		},
	)
	m.tasks.EXPECT().Submit("setup:purchase-1", gomock.Any()).Return(nil)
	m.storage.EXPECT().CreateDomainRenewal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *types.DomainRenewal) error {
			return ctx.Err()
		},
	)

	if err := s.HandleEvent(ctx, event(TypePayment, "777")); err != nil {
		t.Errorf("expected the registered domain to be recorded, got %v", err)
	}
}

func TestCombinedPurchaseRedelivery(t *testing.T) {
	s, m := newTestService(t)

	m.payments.EXPECT().GetPayment(gomock.Any(), "777").Return(combinedPayment(), nil)
	m.provisioner.EXPECT().ProvisionTenant(gomock.Any(), gomock.Any()).Return(nil, provisioning.ErrHostTaken)

	if err := s.HandleEvent(context.Background(), event(TypePayment, "777")); err != nil {
		t.Errorf("expected redelivery to be a no-op, got %v", err)
	}
}

func TestCombinedPurchaseRegistrarFailure(t *testing.T) {
	s, m := newTestService(t)

	p := combinedPayment()
	p.Metadata["domain_action"] = "transfer"
	p.Metadata["auth_code"] = "EPP-1"
	m.payments.EXPECT().GetPayment(gomock.Any(), "777").Return(p, nil)

	m.provisioner.EXPECT().ProvisionTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: "tenant-1"}, nil)
	m.registrar.EXPECT().RegisterDomain(gomock.Any(), "mitienda.store", types.ActionTransfer, "EPP-1").
		Return(nil, &registrar.APIError{Code: 309, Description: "You have to sign the latest contract"})
	m.storage.EXPECT().CreateDomainPurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *types.DomainPurchase) (*types.DomainPurchase, error) {
			if p.Status != types.PurchaseFailed {
				t.Errorf("expected failed purchase row, got %s", p.Status)
			}
			if p.Metadata.ErrorCode != "CONTRACT_NOT_SIGNED" {
				t.Errorf("expected CONTRACT_NOT_SIGNED, got %s", p.Metadata.ErrorCode)
			}
			if len(p.Metadata.ErrorHistory) != 1 || p.Metadata.ErrorHistory[0].Step != "registrar" {
				t.Errorf("expected one registrar error entry, got %v", p.Metadata.ErrorHistory)
			}
			created := *p
			created.ID = "purchase-1"
			return &created, nil
		},
	)

	err := s.HandleEvent(context.Background(), event(TypePayment, "777"))

	var apiErr *registrar.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected the registrar error to be reported, got %v", err)
	}
}

func TestCombinedPurchaseMissingMetadata(t *testing.T) {
	s, m := newTestService(t)

	m.payments.EXPECT().GetPayment(gomock.Any(), "777").Return(&payments.Payment{
		ID:       "777",
		Status:   payments.PaymentApproved,
		Metadata: map[string]any{"combined_purchase": true, "domain": "mitienda.store"},
	}, nil)

	if err := s.HandleEvent(context.Background(), event(TypePayment, "777")); err == nil {
		t.Error("expected an error for a payment without a user")
	}
}

func TestPeriodFor(t *testing.T) {
	s, _ := newTestService(t)

	tests := []struct {
		amount   float64
		expected types.BillingPeriod
	}{
		{0, types.BillingMonthly},
		{299, types.BillingMonthly},
		{999.99, types.BillingMonthly},
		{1000, types.BillingYearly},
		{2990, types.BillingYearly},
	}

	for _, tt := range tests {
		if got := s.periodFor(tt.amount); got != tt.expected {
			t.Errorf("amount %v: expected %s, got %s", tt.amount, tt.expected, got)
		}
	}
}
