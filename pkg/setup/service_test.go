// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package setup

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/storefront-service/internal/hosting"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/notifications"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package setup -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package setup -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package setup -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package setup -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type mocks struct {
	storage  *MockStorageInterface
	hosting  *MockHostingInterface
	notifier *MockNotifierInterface
	identity *MockIdentityInterface
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &mocks{
		storage:  NewMockStorageInterface(ctrl),
		hosting:  NewMockHostingInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		identity: NewMockIdentityInterface(ctrl),
	}

	s := NewService(m.storage, m.hosting, m.notifier, m.identity, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	s.now = func() time.Time { return fixedNow }

	return s, m
}

// stored keeps the last persisted copy of the purchase so consecutive runs
// see what the previous one wrote.
type stored struct {
	p types.DomainPurchase
}

func (st *stored) get(_ context.Context, _ string) (*types.DomainPurchase, error) {
	cp := st.p
	cp.Metadata.ErrorHistory = append([]types.ErrorEntry(nil), st.p.Metadata.ErrorHistory...)
	return &cp, nil
}

func (st *stored) update(_ context.Context, p *types.DomainPurchase, paths []string) error {
	for _, path := range paths {
		switch path {
		case "status":
			st.p.Status = p.Status
		case "dns_verified":
			st.p.DNSVerified = p.DNSVerified
		case "metadata":
			st.p.Metadata = p.Metadata
		}
	}
	return nil
}

func (st *stored) patch(_ context.Context, _ string, patch types.MetadataPatch) error {
	patch.Apply(&st.p.Metadata)
	return nil
}

func (st *stored) incrementAttempts(context.Context, string) (int, error) {
	st.p.DNSCheckAttempts++
	return st.p.DNSCheckAttempts, nil
}

func pendingPurchase() types.DomainPurchase {
	return types.DomainPurchase{
		ID:       "purchase-1",
		TenantID: "tenant-1",
		Domain:   "example.store",
		Action:   types.ActionRegister,
		Status:   types.PurchasePending,
	}
}

func expectOwnerLookup(m *mocks) {
	m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Name: "Mi Tienda"}, nil)
	m.storage.EXPECT().GetTenantOwner(gomock.Any(), "tenant-1").Return(&types.Membership{KratosIdentityID: "user-1"}, nil)
	m.identity.EXPECT().GetIdentityEmail(gomock.Any(), "user-1").Return("owner@example.com", nil)
}

func statuses(r *Report) []StepStatus {
	out := make([]StepStatus, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Status
	}
	return out
}

func assertStatuses(t *testing.T, r *Report, expected ...StepStatus) {
	t.Helper()

	got := statuses(r)
	if len(got) != len(expected) {
		t.Fatalf("expected %d steps, got %v", len(expected), got)
	}

	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("step %s: expected %s, got %s", r.Steps[i].Name, expected[i], got[i])
		}
	}
}

func TestRunSetupSecondRunIsSkipped(t *testing.T) {
	s, m := newTestService(t)
	st := &stored{p: pendingPurchase()}

	m.storage.EXPECT().GetDomainPurchase(gomock.Any(), "purchase-1").DoAndReturn(st.get).Times(2)
	m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status", "dns_verified"}).DoAndReturn(st.update).Times(1)
	m.storage.EXPECT().PatchDomainPurchaseMetadata(gomock.Any(), "purchase-1", gomock.Any()).DoAndReturn(st.patch).Times(1)

	gomock.InOrder(
		m.hosting.EXPECT().GetDomain(gomock.Any(), "example.store").Return(nil, nil),
		m.hosting.EXPECT().GetDomain(gomock.Any(), "example.store").Return(&hosting.Domain{Name: "example.store", Verified: true}, nil),
	)
	m.hosting.EXPECT().AddDomain(gomock.Any(), "example.store").Return(nil).Times(1)
	m.hosting.EXPECT().GetDomainConfig(gomock.Any(), "example.store").Return(&hosting.DomainConfig{}, nil).Times(1)
	m.storage.EXPECT().AddTenantHost(gomock.Any(), "tenant-1", "example.store").Return(nil).Times(1)
	expectOwnerLookup(m)
	m.notifier.EXPECT().SendStoreReady(gomock.Any(), "owner@example.com", notifications.StoreReady{TenantName: "Mi Tienda", Domain: "example.store"}).Return(nil).Times(1)

	first, err := s.RunSetup(context.Background(), "purchase-1", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertStatuses(t, first, StatusCompleted, StatusCompleted, StatusCompleted, StatusCompleted)
	if !first.Success || first.Status != types.PurchaseActive {
		t.Errorf("expected a successful run ending active, got %+v", first)
	}
	if !st.p.DNSVerified || !st.p.Metadata.EmailSent || st.p.Metadata.SetupCompletedAt == nil {
		t.Errorf("expected activation and notification to be persisted, got %+v", st.p)
	}

	second, err := s.RunSetup(context.Background(), "purchase-1", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertStatuses(t, second, StatusSkipped, StatusSkipped, StatusSkipped, StatusSkipped)
	if second.Summary != (Summary{Skipped: 4}) {
		t.Errorf("unexpected summary %+v", second.Summary)
	}
}

func TestRunSetupResumesAfterFailedStep(t *testing.T) {
	s, m := newTestService(t)
	st := &stored{p: pendingPurchase()}

	m.storage.EXPECT().GetDomainPurchase(gomock.Any(), "purchase-1").DoAndReturn(st.get).Times(2)
	m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status", "dns_verified"}).DoAndReturn(st.update).Times(1)
	m.storage.EXPECT().PatchDomainPurchaseMetadata(gomock.Any(), "purchase-1", gomock.Any()).DoAndReturn(st.patch).Times(2)

	gomock.InOrder(
		m.hosting.EXPECT().GetDomain(gomock.Any(), "example.store").Return(nil, nil),
		m.hosting.EXPECT().GetDomain(gomock.Any(), "example.store").Return(&hosting.Domain{Name: "example.store"}, nil),
	)
	m.hosting.EXPECT().AddDomain(gomock.Any(), "example.store").Return(nil).Times(1)
	gomock.InOrder(
		m.hosting.EXPECT().GetDomainConfig(gomock.Any(), "example.store").Return(nil, &hosting.Error{Err: context.DeadlineExceeded}),
		m.hosting.EXPECT().GetDomainConfig(gomock.Any(), "example.store").Return(&hosting.DomainConfig{}, nil),
	)
	m.storage.EXPECT().AddTenantHost(gomock.Any(), "tenant-1", "example.store").Return(nil)
	expectOwnerLookup(m)
	m.notifier.EXPECT().SendStoreReady(gomock.Any(), "owner@example.com", gomock.Any()).Return(nil)

	first, err := s.RunSetup(context.Background(), "purchase-1", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertStatuses(t, first, StatusCompleted, StatusError, StatusPending, StatusPending)
	if first.Success || first.Summary.Errors != 1 || first.Summary.Completed != 1 {
		t.Errorf("unexpected report %+v", first)
	}

	history := st.p.Metadata.ErrorHistory
	if len(history) != 1 || history[0].Step != string(StepDNSVerification) || !history[0].Timestamp.Equal(fixedNow) {
		t.Errorf("expected one dns verification entry in the error history, got %+v", history)
	}
	if st.p.Metadata.RetryCount != 1 {
		t.Errorf("expected retry count 1, got %d", st.p.Metadata.RetryCount)
	}

	second, err := s.RunSetup(context.Background(), "purchase-1", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertStatuses(t, second, StatusSkipped, StatusCompleted, StatusCompleted, StatusCompleted)
	if !second.Success || second.Status != types.PurchaseActive {
		t.Errorf("unexpected report %+v", second)
	}
	if len(st.p.Metadata.ErrorHistory) != 1 {
		t.Errorf("expected the error history to be kept, got %+v", st.p.Metadata.ErrorHistory)
	}
}

func TestRunSetupWaitsForDNS(t *testing.T) {
	s, m := newTestService(t)
	st := &stored{p: pendingPurchase()}

	m.storage.EXPECT().GetDomainPurchase(gomock.Any(), "purchase-1").DoAndReturn(st.get)
	m.hosting.EXPECT().GetDomain(gomock.Any(), "example.store").Return(&hosting.Domain{Name: "example.store"}, nil)
	m.hosting.EXPECT().GetDomainConfig(gomock.Any(), "example.store").Return(&hosting.DomainConfig{Misconfigured: true}, nil)
	st.p.DNSCheckAttempts = 2
	m.storage.EXPECT().IncrementDNSCheckAttempts(gomock.Any(), "purchase-1").DoAndReturn(st.incrementAttempts)
	m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status"}).DoAndReturn(st.update)

	report, err := s.RunSetup(context.Background(), "purchase-1", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertStatuses(t, report, StatusSkipped, StatusPending, StatusPending, StatusPending)

	if !report.Success {
		t.Error("waiting for dns must not count as an error")
	}
	if report.Status != types.PurchaseDNSPending || st.p.Status != types.PurchaseDNSPending {
		t.Errorf("expected dns_pending, got report %s stored %s", report.Status, st.p.Status)
	}
	if st.p.DNSCheckAttempts != 3 {
		t.Errorf("expected 3 dns check attempts, got %d", st.p.DNSCheckAttempts)
	}
}

func TestRunSetupForceAll(t *testing.T) {
	s, m := newTestService(t)

	sentAt := fixedNow.Add(-time.Hour)
	done := pendingPurchase()
	done.Status = types.PurchaseActive
	done.DNSVerified = true
	done.Metadata.EmailSent = true
	done.Metadata.EmailSentAt = &sentAt
	done.Metadata.SetupCompletedAt = &sentAt
	st := &stored{p: done}

	m.storage.EXPECT().GetDomainPurchase(gomock.Any(), "purchase-1").DoAndReturn(st.get)
	m.hosting.EXPECT().AddDomain(gomock.Any(), "example.store").Return(nil)
	m.hosting.EXPECT().GetDomainConfig(gomock.Any(), "example.store").Return(&hosting.DomainConfig{}, nil)
	m.storage.EXPECT().AddTenantHost(gomock.Any(), "tenant-1", "example.store").Return(nil)
	expectOwnerLookup(m)
	m.notifier.EXPECT().SendStoreReady(gomock.Any(), "owner@example.com", gomock.Any()).Return(nil)
	m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status", "dns_verified"}).DoAndReturn(st.update)
	m.storage.EXPECT().PatchDomainPurchaseMetadata(gomock.Any(), "purchase-1", gomock.Any()).DoAndReturn(st.patch)

	report, err := s.RunSetup(context.Background(), "purchase-1", Options{ForceAll: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertStatuses(t, report, StatusCompleted, StatusCompleted, StatusCompleted, StatusCompleted)

	if !st.p.Metadata.EmailSentAt.Equal(fixedNow) {
		t.Errorf("expected the email to be resent at %v, got %v", fixedNow, st.p.Metadata.EmailSentAt)
	}
	if !st.p.Metadata.SetupCompletedAt.Equal(sentAt) {
		t.Errorf("expected the first completion time to be kept, got %v", st.p.Metadata.SetupCompletedAt)
	}
}

func TestRunSetupNotificationFailure(t *testing.T) {
	s, m := newTestService(t)
	st := &stored{p: pendingPurchase()}

	m.storage.EXPECT().GetDomainPurchase(gomock.Any(), "purchase-1").DoAndReturn(st.get)
	m.hosting.EXPECT().GetDomain(gomock.Any(), "example.store").Return(&hosting.Domain{Name: "example.store"}, nil)
	m.hosting.EXPECT().GetDomainConfig(gomock.Any(), "example.store").Return(&hosting.DomainConfig{}, nil)
	m.storage.EXPECT().AddTenantHost(gomock.Any(), "tenant-1", "example.store").Return(nil)
	expectOwnerLookup(m)
	m.notifier.EXPECT().SendStoreReady(gomock.Any(), "owner@example.com", gomock.Any()).Return(errors.New("smtp down"))
	m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status", "dns_verified"}).DoAndReturn(st.update)
	m.storage.EXPECT().PatchDomainPurchaseMetadata(gomock.Any(), "purchase-1", gomock.Any()).DoAndReturn(st.patch)

	report, err := s.RunSetup(context.Background(), "purchase-1", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertStatuses(t, report, StatusSkipped, StatusCompleted, StatusCompleted, StatusError)

	if st.p.Status != types.PurchaseActive {
		t.Errorf("expected activation to be kept, got %s", st.p.Status)
	}
	if st.p.Metadata.EmailSent {
		t.Error("email flag must only be set after a successful send")
	}
	if st.p.Metadata.SetupCompletedAt != nil {
		t.Error("setup is not complete while a step has errors")
	}
}

func TestRunSetupMergesMetadata(t *testing.T) {
	s, m := newTestService(t)
	st := &stored{p: pendingPurchase()}

	m.storage.EXPECT().GetDomainPurchase(gomock.Any(), "purchase-1").DoAndReturn(st.get)
	m.hosting.EXPECT().GetDomain(gomock.Any(), "example.store").Return(&hosting.Domain{Name: "example.store"}, nil)
	m.hosting.EXPECT().GetDomainConfig(gomock.Any(), "example.store").Return(&hosting.DomainConfig{}, nil)
	m.storage.EXPECT().AddTenantHost(gomock.Any(), "tenant-1", "example.store").Return(nil)
	expectOwnerLookup(m)
	m.notifier.EXPECT().SendStoreReady(gomock.Any(), "owner@example.com", gomock.Any()).DoAndReturn(
		func(context.Context, string, notifications.StoreReady) error {
			// another writer records on the row while the email goes out
			st.p.Metadata.RegistrarResponse = map[string]any{"id": "12345"}
			st.p.Metadata.ErrorHistory = append(st.p.Metadata.ErrorHistory, types.ErrorEntry{Step: "registrar", Error: "late"})
			return nil
		},
	)
	m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status", "dns_verified"}).DoAndReturn(st.update)
	m.storage.EXPECT().PatchDomainPurchaseMetadata(gomock.Any(), "purchase-1", gomock.Any()).DoAndReturn(
		func(ctx context.Context, id string, patch types.MetadataPatch) error {
			if len(patch.Errors) != 0 {
				t.Errorf("expected no errors in the patch, got %+v", patch.Errors)
			}
			if patch.EmailSentAt == nil || patch.SetupCompletedAt == nil {
				t.Errorf("expected the patch to carry the notification and completion, got %+v", patch)
			}
			return st.patch(ctx, id, patch)
		},
	)

	report, err := s.RunSetup(context.Background(), "purchase-1", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Success {
		t.Errorf("unexpected report %+v", report)
	}
	if st.p.Metadata.RegistrarResponse["id"] != "12345" {
		t.Errorf("expected the registrar response written meanwhile to be kept, got %v", st.p.Metadata.RegistrarResponse)
	}
	if len(st.p.Metadata.ErrorHistory) != 1 || st.p.Metadata.ErrorHistory[0].Step != "registrar" {
		t.Errorf("expected the error history written meanwhile to be kept, got %+v", st.p.Metadata.ErrorHistory)
	}
	if !st.p.Metadata.EmailSent || st.p.Metadata.SetupCompletedAt == nil {
		t.Errorf("expected notification and completion to be stored, got %+v", st.p.Metadata)
	}
}

func TestRunSetupHostTaken(t *testing.T) {
	s, m := newTestService(t)
	st := &stored{p: pendingPurchase()}

	m.storage.EXPECT().GetDomainPurchase(gomock.Any(), "purchase-1").DoAndReturn(st.get)
	m.hosting.EXPECT().GetDomain(gomock.Any(), "example.store").Return(&hosting.Domain{Name: "example.store"}, nil)
	m.hosting.EXPECT().GetDomainConfig(gomock.Any(), "example.store").Return(&hosting.DomainConfig{}, nil)
	m.storage.EXPECT().AddTenantHost(gomock.Any(), "tenant-1", "example.store").
		Return(fmt.Errorf("%w: host example.store belongs to another tenant", storage.ErrDuplicateKey))
	m.storage.EXPECT().PatchDomainPurchaseMetadata(gomock.Any(), "purchase-1", gomock.Any()).DoAndReturn(st.patch)

	report, err := s.RunSetup(context.Background(), "purchase-1", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertStatuses(t, report, StatusSkipped, StatusCompleted, StatusError, StatusPending)

	if report.Success {
		t.Error("expected a taken host to fail the run")
	}
	if st.p.Status != types.PurchasePending {
		t.Errorf("expected the purchase to stay pending, got %s", st.p.Status)
	}

	history := st.p.Metadata.ErrorHistory
	if len(history) != 1 || history[0].Step != string(StepTenantActivation) {
		t.Fatalf("expected one activation entry in the error history, got %+v", history)
	}
	if history[0].Error != fmt.Errorf("%w: example.store", ErrHostTaken).Error() {
		t.Errorf("expected the taken host to be reported, got %q", history[0].Error)
	}
}

func TestRunSetupErrors(t *testing.T) {
	testCases := []struct {
		name     string
		purchase *types.DomainPurchase
		err      error
		expected error
	}{
		{name: "not found", err: storage.ErrNotFound, expected: storage.ErrNotFound},
		{name: "processing", purchase: &types.DomainPurchase{ID: "purchase-1", Status: types.PurchaseProcessing}, expected: ErrPurchaseNotReady},
		{name: "failed", purchase: &types.DomainPurchase{ID: "purchase-1", Status: types.PurchaseFailed}, expected: ErrPurchaseNotReady},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestService(t)
			m.storage.EXPECT().GetDomainPurchase(gomock.Any(), "purchase-1").Return(tc.purchase, tc.err)

			report, err := s.RunSetup(context.Background(), "purchase-1", Options{})

			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
			if report != nil {
				t.Errorf("expected no report, got %+v", report)
			}
		})
	}
}

func TestRecheckPending(t *testing.T) {
	s, m := newTestService(t)

	waiting := pendingPurchase()
	waiting.Status = types.PurchaseDNSPending
	st := &stored{p: waiting}

	m.storage.EXPECT().ListDomainPurchasesByStatus(gomock.Any(), types.PurchaseDNSPending, uint64(10)).Return([]*types.DomainPurchase{
		{ID: "gone"},
		{ID: "purchase-1"},
	}, nil)
	m.storage.EXPECT().GetDomainPurchase(gomock.Any(), "gone").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetDomainPurchase(gomock.Any(), "purchase-1").DoAndReturn(st.get)
	m.hosting.EXPECT().GetDomain(gomock.Any(), "example.store").Return(&hosting.Domain{Name: "example.store"}, nil)
	m.hosting.EXPECT().GetDomainConfig(gomock.Any(), "example.store").Return(&hosting.DomainConfig{}, nil)
	m.storage.EXPECT().AddTenantHost(gomock.Any(), "tenant-1", "example.store").Return(nil)
	expectOwnerLookup(m)
	m.notifier.EXPECT().SendStoreReady(gomock.Any(), "owner@example.com", gomock.Any()).Return(nil)
	m.storage.EXPECT().UpdateDomainPurchase(gomock.Any(), gomock.Any(), []string{"status", "dns_verified"}).DoAndReturn(st.update)
	m.storage.EXPECT().PatchDomainPurchaseMetadata(gomock.Any(), "purchase-1", gomock.Any()).DoAndReturn(st.patch)

	reports, err := s.RecheckPending(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if reports[0].Status != types.PurchaseActive {
		t.Errorf("expected the purchase to go live, got %s", reports[0].Status)
	}
}
