// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/storefront-service/internal/types"
)

var subscriptionColumns = []string{
	"id", "tenant_id", "status", "next_billing_date", "amount", "period", "preapproval_id", "created_at", "updated_at",
}

func scanSubscription(row scanner) (*types.Subscription, error) {
	var sub types.Subscription
	err := row.Scan(
		&sub.ID, &sub.TenantID, &sub.Status, &sub.NextBillingDate, &sub.Amount, &sub.Period,
		&sub.PreapprovalID, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *Storage) CreateSubscription(ctx context.Context, sub *types.Subscription) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSubscription")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("subscriptions").
		Columns("id", "tenant_id", "status", "next_billing_date", "amount", "period", "preapproval_id").
		Values(id, sub.TenantID, sub.Status, sub.NextBillingDate, sub.Amount, sub.Period, sub.PreapprovalID).
		Suffix("RETURNING " + strings.Join(subscriptionColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanSubscription(row)
	if err != nil {
		return nil, classify(err, "failed to insert subscription")
	}

	return created, nil
}

func (s *Storage) GetSubscriptionByPreapprovalID(ctx context.Context, preapprovalID string) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSubscriptionByPreapprovalID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(subscriptionColumns...).
		From("subscriptions").
		Where(sq.Eq{"preapproval_id": preapprovalID}).
		QueryRowContext(ctx)

	sub, err := scanSubscription(row)
	if err != nil {
		return nil, classify(err, "failed to get subscription")
	}

	return sub, nil
}

func (s *Storage) SetSubscriptionStatus(ctx context.Context, id string, status types.SubscriptionStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetSubscriptionStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("subscriptions").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return classify(err, "failed to update subscription")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// ApplySubscriptionPayment records the payment in the ledger and, only when the
// payment id was not seen before, advances next_billing_date by one period from
// the later of its current value and now, and activates the subscription. It reports whether the payment was applied.
// Callers run it inside a transaction so the ledger row and the advance commit together.
func (s *Storage) ApplySubscriptionPayment(ctx context.Context, p *types.SubscriptionPayment, period types.BillingPeriod) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ApplySubscriptionPayment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Insert("subscription_payments").
		Columns("payment_id", "subscription_id", "amount").
		Values(p.PaymentID, p.SubscriptionID, p.Amount).
		Suffix("ON CONFLICT (payment_id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return false, classify(err, "failed to record subscription payment")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	_, err = s.db.Statement(ctx).
		Update("subscriptions").
		Set("next_billing_date", sq.Expr("GREATEST(next_billing_date, now()) + ?::interval", period.Interval())).
		Set("status", types.SubscriptionActive).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": p.SubscriptionID}).
		ExecContext(ctx)
	if err != nil {
		return false, classify(err, "failed to advance subscription")
	}

	return true, nil
}

func (s *Storage) CreateDomainRenewal(ctx context.Context, r *types.DomainRenewal) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDomainRenewal")
	defer span.End()

	id, err := newID()
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert("domain_renewals").
		Columns("id", "tenant_id", "purchase_id", "domain", "amount", "next_renewal_date", "enabled").
		Values(id, r.TenantID, r.PurchaseID, r.Domain, r.Amount, r.NextRenewalDate, r.Enabled).
		Suffix("ON CONFLICT (domain) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return classify(err, "failed to insert domain renewal")
	}

	r.ID = id
	return nil
}

func (s *Storage) GetOrderByID(ctx context.Context, id string) (*types.Order, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrderByID")
	defer span.End()

	var o types.Order
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "status", "total", "payment_id", "customer_name", "customer_email", "created_at").
		From("orders").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.TenantID, &o.Status, &o.Total, &o.PaymentID, &o.CustomerName, &o.CustomerEmail, &o.CreatedAt)

	if err != nil {
		return nil, classify(err, "failed to get order")
	}

	return &o, nil
}

// MarkOrderPaid moves an order to paid once. It reports false when the order
// was already paid, which makes repeated webhook deliveries a no-op.
func (s *Storage) MarkOrderPaid(ctx context.Context, id, paymentID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkOrderPaid")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("orders").
		Set("status", types.OrderPaid).
		Set("payment_id", paymentID).
		Where(sq.And{sq.Eq{"id": id}, sq.NotEq{"status": types.OrderPaid}}).
		ExecContext(ctx)
	if err != nil {
		return false, classify(err, "failed to mark order paid")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n > 0, nil
}

func (s *Storage) RecordWebhookEvent(ctx context.Context, e *types.WebhookEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.RecordWebhookEvent")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("payment_webhook_events").
		Columns("request_id", "type", "action", "resource_id", "verified").
		Values(e.RequestID, e.Type, e.Action, e.ResourceID, e.Verified).
		ExecContext(ctx)

	return classify(err, "failed to record webhook event")
}
