// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domainpurchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/storefront-service/internal/locks"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/registrar"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tasks"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/pkg/domains"
	"github.com/canonical/storefront-service/pkg/pricing"
	"github.com/canonical/storefront-service/pkg/setup"
)

//go:generate mockgen -build_flags=--mod=mod -package domainpurchase -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package domainpurchase -destination ./mock_locks.go -source=../../internal/locks/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package domainpurchase -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

type mocks struct {
	storage   *MockStorageInterface
	registrar *MockRegistrarInterface
	setup     *MockSetupInterface
	tasks     *MockTaskRunnerInterface
	locker    *MockLockerInterface
	lock      *MockLockInterface
}

func newTestService(t *testing.T) (*Service, *mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &mocks{
		storage:   NewMockStorageInterface(ctrl),
		registrar: NewMockRegistrarInterface(ctrl),
		setup:     NewMockSetupInterface(ctrl),
		tasks:     NewMockTaskRunnerInterface(ctrl),
		locker:    NewMockLockerInterface(ctrl),
		lock:      NewMockLockInterface(ctrl),
	}

	s := NewService(
		m.storage, m.registrar, m.setup, m.tasks, m.locker,
		pricing.NewCalculator(1.45, 20, "MXN", "es-MX"),
		time.Minute,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(),
	)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	return s, m
}

// expectRow locks the domain and stores the processing row with a fixed id.
func expectRow(m *mocks, domain string) {
	m.locker.EXPECT().Acquire(gomock.Any(), "purchase:"+domain, time.Minute).Return(m.lock, nil)
	m.lock.EXPECT().Release(gomock.Any()).Return(nil)
	m.registrar.EXPECT().ContactHandle().Return("CH001")
	m.storage.EXPECT().CreateDomainPurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *types.DomainPurchase) (*types.DomainPurchase, error) {
			if p.Status != types.PurchaseProcessing {
				return nil, errors.New("row must be inserted as processing")
			}
			created := *p
			created.ID = "purchase-1"
			return &created, nil
		},
	)
}

func TestPurchaseDomainRegistered(t *testing.T) {
	s, m := newTestService(t)

	expectRow(m, "example.store")

	var task tasks.Task
	gomock.InOrder(
		m.registrar.EXPECT().Purchase(gomock.Any(), registrar.PurchaseRequest{Label: "example", Extension: "store", Period: 1}).
			Return(&registrar.PurchaseResult{DomainID: 12345, Status: "ACT", Raw: map[string]any{"id": "12345"}}, nil),
		m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status", "openprovider_domain_id", "metadata"}).Return(nil),
		m.tasks.EXPECT().Submit("setup:purchase-1", gomock.Any()).DoAndReturn(func(_ string, fn tasks.Task) error {
			task = fn
			return nil
		}),
	)

	p, err := s.PurchaseDomain(context.Background(), "WWW.Example.store/", "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Domain != "example.store" {
		t.Errorf("expected domain example.store, got %s", p.Domain)
	}
	if p.Status != types.PurchasePending {
		t.Errorf("expected status pending, got %s", p.Status)
	}
	if p.RegistrarDomainID == nil || *p.RegistrarDomainID != 12345 {
		t.Errorf("expected registrar id 12345, got %v", p.RegistrarDomainID)
	}
	if p.Metadata.RegistrarResponse["id"] != "12345" {
		t.Errorf("expected raw registrar response in metadata, got %v", p.Metadata.RegistrarResponse)
	}
	if p.ContactHandle != "CH001" {
		t.Errorf("expected contact handle CH001, got %s", p.ContactHandle)
	}

	if task == nil {
		t.Fatal("expected setup to be scheduled")
	}

	m.setup.EXPECT().RunSetup(gomock.Any(), "purchase-1", setup.Options{}).Return(&setup.Report{Success: true}, nil)
	if err := task(context.Background()); err != nil {
		t.Errorf("expected setup task to succeed, got %v", err)
	}

	m.setup.EXPECT().RunSetup(gomock.Any(), "purchase-1", setup.Options{}).Return(&setup.Report{Summary: setup.Summary{Errors: 2}}, nil)
	if err := task(context.Background()); err == nil {
		t.Error("expected a setup run with errors to fail the task so it is retried")
	}
}

func TestPurchaseDomainRegistrarFailure(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		errorCode   string
		userMessage string
	}{
		{
			name:        "contract not signed",
			err:         &registrar.APIError{Code: 309, Description: "You have to sign the latest contract"},
			errorCode:   "CONTRACT_NOT_SIGNED",
			userMessage: "Debes firmar el último contrato",
		},
		{
			name:        "registrar unreachable",
			err:         &registrar.TransportError{Err: context.DeadlineExceeded},
			errorCode:   "REGISTRAR_UNAVAILABLE",
			userMessage: "No fue posible comunicarse con el registrador",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestService(t)

			expectRow(m, "example.store")
			m.registrar.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status", "metadata"}).Return(nil)

			p, err := s.PurchaseDomain(context.Background(), "example.store", "tenant-1")
			if err != nil {
				t.Fatalf("a registrar failure must be reported on the record, got %v", err)
			}

			if p.Status != types.PurchaseFailed {
				t.Errorf("expected status failed, got %s", p.Status)
			}
			if p.Metadata.ErrorCode != tc.errorCode {
				t.Errorf("expected error code %s, got %s", tc.errorCode, p.Metadata.ErrorCode)
			}
			if p.Metadata.Error != tc.userMessage {
				t.Errorf("expected message %q, got %q", tc.userMessage, p.Metadata.Error)
			}
			if p.Metadata.Remediation == "" {
				t.Error("expected a remediation hint")
			}
			if len(p.Metadata.ErrorHistory) != 1 || p.Metadata.ErrorHistory[0].Step != "registrar" {
				t.Errorf("expected one registrar entry in the error history, got %+v", p.Metadata.ErrorHistory)
			}
		})
	}
}

func TestPurchaseDomainRecordsOutcomeAfterCancel(t *testing.T) {
	s, m := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expectRow(m, "example.store")

	gomock.InOrder(
		m.registrar.EXPECT().Purchase(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, registrar.PurchaseRequest) (*registrar.PurchaseResult, error) {
				// the caller goes away after the registrar accepted the order
				cancel()
				return &registrar.PurchaseResult{DomainID: 12345, Status: "ACT"}, nil
			},
		),
		m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status", "openprovider_domain_id", "metadata"}).DoAndReturn(
			func(ctx context.Context, _ *types.DomainPurchase, _ []string) error {
				return ctx.Err()
			},
		),
		m.tasks.EXPECT().Submit("setup:purchase-1", gomock.Any()).Return(nil),
	)

	p, err := s.PurchaseDomain(ctx, "example.store", "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Status != types.PurchasePending {
		t.Errorf("expected status pending, got %s", p.Status)
	}
	if p.RegistrarDomainID == nil || *p.RegistrarDomainID != 12345 {
		t.Errorf("expected registrar id 12345, got %v", p.RegistrarDomainID)
	}
}

func TestPurchaseDomainRecordsFailureAfterCancel(t *testing.T) {
	s, m := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expectRow(m, "example.store")

	var stored error
	m.registrar.EXPECT().Purchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, registrar.PurchaseRequest) (*registrar.PurchaseResult, error) {
			cancel()
			return nil, &registrar.APIError{Code: 309, Description: "You have to sign the latest contract"}
		},
	)
	m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status", "metadata"}).DoAndReturn(
		func(ctx context.Context, _ *types.DomainPurchase, _ []string) error {
			stored = ctx.Err()
			return stored
		},
	)

	p, err := s.PurchaseDomain(ctx, "example.store", "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored != nil {
		t.Errorf("expected the failure to be written on a live context, got %v", stored)
	}
	if p.Status != types.PurchaseFailed {
		t.Errorf("expected status failed, got %s", p.Status)
	}
}

func TestRejectedDomainsNeverReachTheRegistrar(t *testing.T) {
	for _, raw := range []string{"example.org", "example.co.uk", "https://shop.example.dev/", "tienda.mx.org"} {
		t.Run(raw, func(t *testing.T) {
			// no expectations: any registrar or storage call fails the test
			s, _ := newTestService(t)

			_, err := s.CheckAvailabilityAndPrice(context.Background(), raw)

			var tldErr *domains.InvalidTLDError
			if !errors.As(err, &tldErr) {
				t.Errorf("expected InvalidTLDError, got %v", err)
			}

			if _, err := s.PurchaseDomain(context.Background(), raw, "tenant-1"); !errors.As(err, &tldErr) {
				t.Errorf("expected InvalidTLDError on purchase, got %v", err)
			}
		})
	}
}

func TestPurchaseDomainConflicts(t *testing.T) {
	t.Run("lock held", func(t *testing.T) {
		s, m := newTestService(t)

		m.locker.EXPECT().Acquire(gomock.Any(), "purchase:example.com", time.Minute).Return(nil, locks.ErrNotAcquired)

		_, err := s.PurchaseDomain(context.Background(), "example.com", "tenant-1")
		if !errors.Is(err, ErrPurchaseInProgress) {
			t.Errorf("expected ErrPurchaseInProgress, got %v", err)
		}
	})

	t.Run("live row exists", func(t *testing.T) {
		s, m := newTestService(t)

		m.locker.EXPECT().Acquire(gomock.Any(), "purchase:example.com", time.Minute).Return(m.lock, nil)
		m.lock.EXPECT().Release(gomock.Any()).Return(nil)
		m.registrar.EXPECT().ContactHandle().Return("CH001")
		m.storage.EXPECT().CreateDomainPurchase(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

		_, err := s.PurchaseDomain(context.Background(), "example.com", "tenant-1")
		if !errors.Is(err, ErrDomainAlreadyPurchased) {
			t.Errorf("expected ErrDomainAlreadyPurchased, got %v", err)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		s, m := newTestService(t)

		m.locker.EXPECT().Acquire(gomock.Any(), "purchase:example.com", time.Minute).Return(m.lock, nil)
		m.lock.EXPECT().Release(gomock.Any()).Return(errors.New("redis gone"))
		m.registrar.EXPECT().ContactHandle().Return("CH001")
		m.storage.EXPECT().CreateDomainPurchase(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)

		_, err := s.PurchaseDomain(context.Background(), "example.com", "missing")
		if !errors.Is(err, ErrTenantNotFound) {
			t.Errorf("expected ErrTenantNotFound, got %v", err)
		}
	})
}

func TestTransferDomain(t *testing.T) {
	s, m := newTestService(t)

	if _, err := s.TransferDomain(context.Background(), "example.mx", "tenant-1", "  "); !errors.Is(err, ErrAuthCodeRequired) {
		t.Fatalf("expected ErrAuthCodeRequired, got %v", err)
	}

	expectRow(m, "example.com.mx")
	m.registrar.EXPECT().Transfer(gomock.Any(), registrar.TransferRequest{Label: "example", Extension: "com.mx", AuthCode: "EPP-1"}).
		Return(&registrar.PurchaseResult{DomainID: 9}, nil)
	m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.tasks.EXPECT().Submit("setup:purchase-1", gomock.Any()).Return(tasks.ErrQueueFull)

	p, err := s.TransferDomain(context.Background(), "example.com.mx", "tenant-1", " EPP-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Action != types.ActionTransfer || p.Status != types.PurchasePending {
		t.Errorf("expected a pending transfer, got %s %s", p.Action, p.Status)
	}
}

func TestCheckAvailabilityAndPrice(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		s, m := newTestService(t)

		m.registrar.EXPECT().CheckAvailability(gomock.Any(), "example", "com").Return(&registrar.Availability{Domain: "example.com", Available: true}, nil)
		m.registrar.EXPECT().QuotePrice(gomock.Any(), "example", "com", registrar.OperationCreate).Return(10.0, nil)

		q, err := s.CheckAvailabilityAndPrice(context.Background(), "HTTPS://WWW.Example.COM/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := Quote{Domain: "example.com", Available: true, PriceUSD: 14.5, PriceLocal: 290, Currency: "MXN", Display: "$290 MXN"}
		if *q != expected {
			t.Errorf("expected %+v, got %+v", expected, *q)
		}
	})

	t.Run("taken", func(t *testing.T) {
		s, m := newTestService(t)

		m.registrar.EXPECT().CheckAvailability(gomock.Any(), "example", "com").Return(&registrar.Availability{Domain: "example.com"}, nil)

		q, err := s.CheckAvailabilityAndPrice(context.Background(), "example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if q.Available || q.PriceUSD != 0 || q.PriceLocal != 0 {
			t.Errorf("expected no price for a taken domain, got %+v", q)
		}
	})

	t.Run("registrar down", func(t *testing.T) {
		s, m := newTestService(t)

		m.registrar.EXPECT().CheckAvailability(gomock.Any(), "example", "com").Return(nil, &registrar.TransportError{StatusCode: 502})

		if _, err := s.CheckAvailabilityAndPrice(context.Background(), "example.com"); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestRegisterDomain(t *testing.T) {
	s, m := newTestService(t)

	m.registrar.EXPECT().Purchase(gomock.Any(), registrar.PurchaseRequest{Label: "tienda", Extension: "shop", Period: 1}).Return(&registrar.PurchaseResult{DomainID: 7}, nil)

	res, err := s.RegisterDomain(context.Background(), "tienda.shop", types.ActionRegister, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DomainID != 7 {
		t.Errorf("expected domain id 7, got %d", res.DomainID)
	}

	if _, err := s.RegisterDomain(context.Background(), "tienda.shop", types.ActionDNSOnly, ""); !errors.Is(err, ErrUnsupportedAction) {
		t.Errorf("expected ErrUnsupportedAction, got %v", err)
	}
}
