// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package setup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/notifications"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
)

var (
	ErrPurchaseNotReady = errors.New("purchase is not registered yet or has failed")
	ErrHostTaken        = errors.New("domain is served by another store")
)

// Service takes a registered domain purchase to a live storefront. Every step
// checks the hosting platform or the stored record before acting, which is
// what makes concurrent and repeated runs safe.
type Service struct {
	storage  StorageInterface
	hosting  HostingInterface
	notifier NotifierInterface
	identity IdentityInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// run is the state of a single RunSetup invocation.
type run struct {
	p      *types.DomainPurchase
	opts   Options
	report *Report

	dnsValid   bool
	dirtyPaths map[string]bool
	patch      types.MetadataPatch
	stepErrors []*StepError
}

func (r *run) touch(paths ...string) {
	for _, p := range paths {
		r.dirtyPaths[p] = true
	}
}

func (r *run) paths() []string {
	out := make([]string, 0, len(r.dirtyPaths))
	for _, p := range []string{"status", "dns_verified"} {
		if r.dirtyPaths[p] {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) RunSetup(ctx context.Context, purchaseID string, opts Options) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "setup.Service.RunSetup")
	defer span.End()

	p, err := s.storage.GetDomainPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	if p.Status == types.PurchaseProcessing || p.Status == types.PurchaseFailed {
		return nil, fmt.Errorf("%w: %s is %s", ErrPurchaseNotReady, p.ID, p.Status)
	}

	r := &run{
		p:          p,
		opts:       opts,
		report:     &Report{PurchaseID: p.ID, Domain: p.Domain, Success: true, Steps: make([]Step, 0, 4)},
		dirtyPaths: make(map[string]bool),
	}

	s.hostingRecords(ctx, r)
	s.verifyDNS(ctx, r)
	s.activate(ctx, r)
	s.notify(ctx, r)

	s.finish(ctx, r)

	return r.report, nil
}

// hostingRecords ensures the domain is attached to the hosting project.
func (s *Service) hostingRecords(ctx context.Context, r *run) {
	ctx, span := s.tracer.Start(ctx, "setup.Service.hostingRecords")
	defer span.End()

	domain := r.p.Domain

	if !r.opts.ForceAll {
		d, err := s.hosting.GetDomain(ctx, domain)
		if err != nil {
			s.fail(r, StepHostingDNSRecords, err)
			return
		}

		if d != nil {
			s.record(r, Step{Name: StepHostingDNSRecords, Status: StatusSkipped, Message: "domain already configured on hosting"})
			return
		}
	}

	if err := s.hosting.AddDomain(ctx, domain); err != nil {
		s.fail(r, StepHostingDNSRecords, err)
		return
	}

	s.record(r, Step{Name: StepHostingDNSRecords, Status: StatusCompleted, Message: "domain added to hosting"})
}

// verifyDNS asks the hosting platform whether the domain resolves to it. A
// misconfigured domain parks the purchase in dns_pending, which is not an error.
func (s *Service) verifyDNS(ctx context.Context, r *run) {
	ctx, span := s.tracer.Start(ctx, "setup.Service.verifyDNS")
	defer span.End()

	if !r.opts.ForceAll && r.p.DNSVerified {
		r.dnsValid = true
		s.record(r, Step{Name: StepDNSVerification, Status: StatusSkipped, Message: "dns already verified"})
		return
	}

	cfg, err := s.hosting.GetDomainConfig(ctx, r.p.Domain)
	if err != nil {
		s.fail(r, StepDNSVerification, err)
		return
	}

	if !cfg.Misconfigured {
		r.dnsValid = true
		s.record(r, Step{Name: StepDNSVerification, Status: StatusCompleted, Message: "dns configuration is valid"})
		return
	}

	attempts, err := s.storage.IncrementDNSCheckAttempts(ctx, r.p.ID)
	if err != nil {
		s.logger.Errorf("failed to count dns check for purchase %s: %v", r.p.ID, err)
	} else {
		r.p.DNSCheckAttempts = attempts
	}

	// an active storefront is never moved back to waiting
	if r.p.Status == types.PurchasePending {
		to, err := Transition(r.p.Status, EventDNSWait)
		if err != nil {
			s.fail(r, StepDNSVerification, err)
			return
		}
		r.p.Status = to
		r.touch("status")
	}

	s.record(r, Step{
		Name:    StepDNSVerification,
		Status:  StatusPending,
		Message: fmt.Sprintf("waiting for dns propagation, check %d", attempts),
	})
}

// activate marks the purchase live once dns is valid, or unconditionally with ForceAll.
func (s *Service) activate(ctx context.Context, r *run) {
	ctx, span := s.tracer.Start(ctx, "setup.Service.activate")
	defer span.End()

	if !r.opts.ForceAll {
		if r.p.Status == types.PurchaseActive && r.p.DNSVerified {
			s.record(r, Step{Name: StepTenantActivation, Status: StatusSkipped, Message: "already active"})
			return
		}

		if !r.dnsValid {
			s.record(r, Step{Name: StepTenantActivation, Status: StatusPending, Message: "waiting for dns verification"})
			return
		}
	}

	to, err := Transition(r.p.Status, EventActivate)
	if err != nil {
		s.fail(r, StepTenantActivation, err)
		return
	}

	err = s.storage.AddTenantHost(ctx, r.p.TenantID, r.p.Domain)
	if errors.Is(err, storage.ErrDuplicateKey) {
		s.fail(r, StepTenantActivation, fmt.Errorf("%w: %s", ErrHostTaken, r.p.Domain))
		return
	}
	if err != nil {
		s.fail(r, StepTenantActivation, err)
		return
	}

	r.p.Status = to
	r.p.DNSVerified = true
	r.touch("status", "dns_verified")

	s.record(r, Step{Name: StepTenantActivation, Status: StatusCompleted, Message: "storefront is live on " + r.p.Domain})
}

// notify sends the store ready email once. The flag is set only after the
// send succeeds so a crash in between may send it twice.
func (s *Service) notify(ctx context.Context, r *run) {
	ctx, span := s.tracer.Start(ctx, "setup.Service.notify")
	defer span.End()

	if !r.opts.ForceAll && r.p.Metadata.EmailSent {
		s.record(r, Step{Name: StepNotification, Status: StatusSkipped, Message: "owner already notified"})
		return
	}

	if r.p.Status != types.PurchaseActive {
		s.record(r, Step{Name: StepNotification, Status: StatusPending, Message: "storefront is not live yet"})
		return
	}

	tenant, err := s.storage.GetTenantByID(ctx, r.p.TenantID)
	if err != nil {
		s.fail(r, StepNotification, err)
		return
	}

	owner, err := s.storage.GetTenantOwner(ctx, r.p.TenantID)
	if err != nil {
		s.fail(r, StepNotification, err)
		return
	}

	email, err := s.identity.GetIdentityEmail(ctx, owner.KratosIdentityID)
	if err != nil {
		s.fail(r, StepNotification, err)
		return
	}

	msg := notifications.StoreReady{TenantName: tenant.Name, Domain: r.p.Domain}
	if err := s.notifier.SendStoreReady(ctx, email, msg); err != nil {
		s.fail(r, StepNotification, err)
		return
	}

	sentAt := s.now()
	r.patch.EmailSentAt = &sentAt

	s.record(r, Step{Name: StepNotification, Status: StatusCompleted, Message: "store ready email sent"})
}

func (s *Service) finish(ctx context.Context, r *run) {
	p := r.p

	now := s.now()
	for _, e := range r.stepErrors {
		r.patch.Errors = append(r.patch.Errors, types.ErrorEntry{
			Timestamp: now,
			Error:     e.Err.Error(),
			Step:      string(e.Step),
		})
	}

	if r.report.Success && p.Status == types.PurchaseActive && p.Metadata.SetupCompletedAt == nil {
		r.patch.SetupCompletedAt = &now
	}

	r.patch.Apply(&p.Metadata)
	r.report.Status = p.Status

	// the report still describes what happened on the external systems
	if paths := r.paths(); len(paths) > 0 {
		if err := s.storage.UpdateDomainPurchase(ctx, p, paths); err != nil {
			s.logger.Errorf("failed to persist setup state of purchase %s: %v", p.ID, err)
		}
	}

	// metadata is merged, never rewritten from this run's snapshot
	if !r.patch.IsZero() {
		if err := s.storage.PatchDomainPurchaseMetadata(ctx, p.ID, r.patch); err != nil {
			s.logger.Errorf("failed to persist setup metadata of purchase %s: %v", p.ID, err)
		}
	}
}

func (s *Service) record(r *run, step Step) {
	r.report.add(step)

	if err := s.monitor.IncDomainEvent(map[string]string{
		"component": "setup",
		"event":     string(step.Name),
		"outcome":   string(step.Status),
	}); err != nil {
		s.logger.Debugf("failed to count setup step: %v", err)
	}
}

func (s *Service) fail(r *run, name StepName, err error) {
	stepErr := &StepError{Step: name, Err: err}
	r.stepErrors = append(r.stepErrors, stepErr)

	s.logger.Warnf("purchase %s: %v", r.p.ID, stepErr)
	s.record(r, Step{Name: name, Status: StatusError, Error: err.Error()})
}

// RecheckPending re-runs setup for purchases waiting on dns. A purchase that
// cannot be loaded is logged and skipped.
func (s *Service) RecheckPending(ctx context.Context, limit int) ([]*Report, error) {
	ctx, span := s.tracer.Start(ctx, "setup.Service.RecheckPending")
	defer span.End()

	if limit <= 0 {
		limit = 50
	}

	pending, err := s.storage.ListDomainPurchasesByStatus(ctx, types.PurchaseDNSPending, uint64(limit))
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(pending))
	for _, p := range pending {
		if ctx.Err() != nil {
			return reports, ctx.Err()
		}

		report, err := s.RunSetup(ctx, p.ID, Options{})
		if err != nil {
			s.logger.Errorf("recheck of purchase %s failed: %v", p.ID, err)
			continue
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// RecheckLoop calls RecheckPending every interval until ctx is done.
func (s *Service) RecheckLoop(ctx context.Context, every time.Duration, limit int) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reports, err := s.RecheckPending(ctx, limit)
			if err != nil {
				s.logger.Errorf("dns recheck failed: %v", err)
				continue
			}

			active := 0
			for _, r := range reports {
				if r.Status == types.PurchaseActive {
					active++
				}
			}
			if len(reports) > 0 {
				s.logger.Infof("dns recheck: %d of %d pending purchases are live", active, len(reports))
			}
		}
	}
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	hosting HostingInterface,
	notifier NotifierInterface,
	identity IdentityInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.hosting = hosting
	s.notifier = notifier
	s.identity = identity
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
