// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/storefront-service/internal/types"
)

var purchaseColumns = []string{
	"id", "tenant_id", "domain", "action", "status", "openprovider_domain_id", "contact_handle",
	"dns_verified", "dns_check_attempts", "metadata", "created_at", "updated_at",
}

func scanPurchase(row scanner) (*types.DomainPurchase, error) {
	var p types.DomainPurchase
	err := row.Scan(
		&p.ID, &p.TenantID, &p.Domain, &p.Action, &p.Status, &p.RegistrarDomainID, &p.ContactHandle,
		&p.DNSVerified, &p.DNSCheckAttempts, &p.Metadata, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateDomainPurchase inserts the durable purchase record. A live row for the
// same domain already existing surfaces as ErrDuplicateKey.
func (s *Storage) CreateDomainPurchase(ctx context.Context, p *types.DomainPurchase) (*types.DomainPurchase, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDomainPurchase")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("domain_purchases").
		Columns("id", "tenant_id", "domain", "action", "status", "openprovider_domain_id", "contact_handle", "dns_verified", "metadata").
		Values(id, p.TenantID, p.Domain, p.Action, p.Status, p.RegistrarDomainID, p.ContactHandle, p.DNSVerified, p.Metadata).
		Suffix("RETURNING " + strings.Join(purchaseColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanPurchase(row)
	if err != nil {
		return nil, classify(err, "failed to insert domain purchase")
	}

	return created, nil
}

func (s *Storage) GetDomainPurchase(ctx context.Context, id string) (*types.DomainPurchase, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDomainPurchase")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(purchaseColumns...).
		From("domain_purchases").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	p, err := scanPurchase(row)
	if err != nil {
		return nil, classify(err, "failed to get domain purchase")
	}

	return p, nil
}

func (s *Storage) ListDomainPurchasesByTenant(ctx context.Context, tenantID string) ([]*types.DomainPurchase, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDomainPurchasesByTenant")
	defer span.End()

	return s.listPurchases(ctx, s.db.Statement(ctx).
		Select(purchaseColumns...).
		From("domain_purchases").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC"),
	)
}

// ListDomainPurchasesByStatus returns the oldest purchases in the given status first.
func (s *Storage) ListDomainPurchasesByStatus(ctx context.Context, status types.PurchaseStatus, limit uint64) ([]*types.DomainPurchase, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDomainPurchasesByStatus")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(purchaseColumns...).
		From("domain_purchases").
		Where(sq.Eq{"status": status}).
		OrderBy("updated_at")

	if limit > 0 {
		q = q.Limit(limit)
	}

	return s.listPurchases(ctx, q)
}

func (s *Storage) listPurchases(ctx context.Context, q sq.SelectBuilder) ([]*types.DomainPurchase, error) {
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list domain purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*types.DomainPurchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan domain purchase: %w", err)
		}
		purchases = append(purchases, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return purchases, nil
}

// UpdateDomainPurchase updates only the fields named in paths.
// openprovider_domain_id is write-once: the update never overwrites a value
// that is already set.
func (s *Storage) UpdateDomainPurchase(ctx context.Context, p *types.DomainPurchase, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDomainPurchase")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "status":
			updateMap["status"] = p.Status
		case "openprovider_domain_id":
			updateMap["openprovider_domain_id"] = sq.Expr("COALESCE(openprovider_domain_id, ?)", p.RegistrarDomainID)
		case "dns_verified":
			updateMap["dns_verified"] = p.DNSVerified
		case "metadata":
			updateMap["metadata"] = p.Metadata
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("domain_purchases").
		SetMap(updateMap).
		Where(sq.Eq{"id": p.ID}).
		ExecContext(ctx)
	if err != nil {
		return classify(err, "failed to update domain purchase")
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

// PatchDomainPurchaseMetadata merges patch into the stored metadata in place,
// so keys written by others since the row was read are kept.
func (s *Storage) PatchDomainPurchaseMetadata(ctx context.Context, id string, patch types.MetadataPatch) error {
	ctx, span := s.tracer.Start(ctx, "storage.PatchDomainPurchaseMetadata")
	defer span.End()

	if patch.IsZero() {
		return nil
	}

	set := make(map[string]any)
	if patch.EmailSentAt != nil {
		set["email_sent"] = true
		set["email_sent_at"] = patch.EmailSentAt
	}
	if patch.SetupCompletedAt != nil {
		set["setup_completed_at"] = patch.SetupCompletedAt
	}

	b, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode metadata patch: %w", err)
	}

	expr := "COALESCE(metadata, '{}'::jsonb) || ?::jsonb"
	args := []any{string(b)}

	if len(patch.Errors) > 0 {
		entries, err := json.Marshal(patch.Errors)
		if err != nil {
			return fmt.Errorf("failed to encode error history: %w", err)
		}

		expr = "jsonb_set(jsonb_set(" + expr + ", '{error_history}', COALESCE(metadata->'error_history', '[]'::jsonb) || ?::jsonb), " +
			"'{retry_count}', to_jsonb(COALESCE((metadata->>'retry_count')::int, 0) + 1))"
		args = append(args, string(entries))
	}

	res, err := s.db.Statement(ctx).
		Update("domain_purchases").
		Set("metadata", sq.Expr(expr, args...)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return classify(err, "failed to patch domain purchase metadata")
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

// IncrementDNSCheckAttempts bumps the counter in place and returns the new value.
func (s *Storage) IncrementDNSCheckAttempts(ctx context.Context, id string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IncrementDNSCheckAttempts")
	defer span.End()

	var attempts int
	err := s.db.Statement(ctx).
		Update("domain_purchases").
		Set("dns_check_attempts", sq.Expr("dns_check_attempts + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING dns_check_attempts").
		QueryRowContext(ctx).
		Scan(&attempts)

	if err != nil {
		return 0, classify(err, "failed to increment dns check attempts")
	}

	return attempts, nil
}
