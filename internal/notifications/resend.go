// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package notifications sends transactional emails to store owners.
package notifications

import (
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
)

var _ SenderInterface = (*ResendSender)(nil)

type Config struct {
	APIKey       string
	FromName     string
	FromEmail    string
	DashboardURL string
}

type ResendSender struct {
	emails       EmailsAPI
	from         string
	dashboardURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *ResendSender) SendStoreReady(ctx context.Context, to string, msg StoreReady) error {
	ctx, span := s.tracer.Start(ctx, "notifications.ResendSender.SendStoreReady")
	defer span.End()

	if msg.DashboardURL == "" {
		msg.DashboardURL = s.dashboardURL
	}

	return s.send(ctx, to, fmt.Sprintf("Tu tienda %s está lista", msg.TenantName), storeReadyTemplate, msg)
}

func (s *ResendSender) SendOrderPaid(ctx context.Context, to string, msg OrderPaid) error {
	ctx, span := s.tracer.Start(ctx, "notifications.ResendSender.SendOrderPaid")
	defer span.End()

	if msg.DashboardURL == "" {
		msg.DashboardURL = s.dashboardURL
	}

	return s.send(ctx, to, fmt.Sprintf("Pedido %s pagado", msg.OrderID), orderPaidTemplate, msg)
}

func (s *ResendSender) send(ctx context.Context, to, subject string, t *template.Template, data any) error {
	if to == "" {
		return fmt.Errorf("missing recipient for %q", subject)
	}

	html, err := render(t, data)
	if err != nil {
		return fmt.Errorf("failed to render %s email: %w", t.Name(), err)
	}

	sent, err := s.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		s.logger.Errorf("failed to send %s email to %s: %v", t.Name(), to, err)
		return fmt.Errorf("failed to send %s email: %w", t.Name(), err)
	}

	s.logger.Infof("%s email sent to %s (id: %s)", t.Name(), to, sent.Id)
	return nil
}

// NewResendSender fails when the API key or sender address is missing.
func NewResendSender(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*ResendSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	return NewResendSenderWithAPI(resend.NewClient(cfg.APIKey).Emails, cfg, tracer, monitor, logger)
}

func NewResendSenderWithAPI(emails EmailsAPI, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*ResendSender, error) {
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	s := new(ResendSender)
	s.emails = emails
	s.from = cfg.FromEmail
	if cfg.FromName != "" {
		s.from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}
	s.dashboardURL = cfg.DashboardURL

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s, nil
}
