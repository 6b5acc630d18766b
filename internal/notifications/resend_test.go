// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
)

type fakeEmails struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeEmails) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func newSender(t *testing.T, emails EmailsAPI) *ResendSender {
	t.Helper()

	s, err := NewResendSenderWithAPI(emails, Config{FromName: "Tu Tienda", FromEmail: "no-reply@example.com", DashboardURL: "https://app.example.com"},
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	require.NoError(t, err)
	return s
}

func TestSendStoreReady(t *testing.T) {
	emails := new(fakeEmails)
	s := newSender(t, emails)

	err := s.SendStoreReady(context.Background(), "owner@example.com", StoreReady{TenantName: "Café <Luna>", Domain: "cafeluna.store"})
	require.NoError(t, err)
	require.Len(t, emails.sent, 1)

	req := emails.sent[0]
	assert.Equal(t, "Tu Tienda <no-reply@example.com>", req.From)
	assert.Equal(t, []string{"owner@example.com"}, req.To)
	assert.Contains(t, req.Subject, "Café <Luna>")
	assert.Contains(t, req.Html, "https://cafeluna.store")
	assert.Contains(t, req.Html, "Café &lt;Luna&gt;")
	assert.Contains(t, req.Html, "https://app.example.com")
}

func TestSendOrderPaid(t *testing.T) {
	emails := new(fakeEmails)
	s := newSender(t, emails)

	err := s.SendOrderPaid(context.Background(), "owner@example.com", OrderPaid{TenantName: "Luna", OrderID: "ord-1", CustomerName: "Ana", Amount: "$450 MXN"})
	require.NoError(t, err)
	require.Len(t, emails.sent, 1)
	assert.Contains(t, emails.sent[0].Html, "ord-1")
	assert.Contains(t, emails.sent[0].Html, "de Ana")
	assert.Contains(t, emails.sent[0].Html, "$450 MXN")
}

func TestSendFailures(t *testing.T) {
	s := newSender(t, &fakeEmails{err: errors.New("resend down")})

	assert.Error(t, s.SendStoreReady(context.Background(), "owner@example.com", StoreReady{Domain: "x.com"}))
	assert.Error(t, s.SendStoreReady(context.Background(), "", StoreReady{Domain: "x.com"}))
}

func TestNewResendSenderRequiresConfig(t *testing.T) {
	_, err := NewResendSender(Config{FromEmail: "a@b.c"}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	assert.Error(t, err)

	_, err = NewResendSenderWithAPI(new(fakeEmails), Config{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	assert.Error(t, err)
}

func TestNoopSender(t *testing.T) {
	s := NewNoopSender(logging.NewNoopLogger())
	assert.NoError(t, s.SendStoreReady(context.Background(), "a@b.c", StoreReady{}))
	assert.NoError(t, s.SendOrderPaid(context.Background(), "a@b.c", OrderPaid{}))
}
