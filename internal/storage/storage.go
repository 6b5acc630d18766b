// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/storefront-service/internal/db"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{"id", "name", "primary_host", "plan", "status", "owner_user_id", "created_at", "updated_at"}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTenant(row scanner) (*types.Tenant, error) {
	var t types.Tenant
	if err := row.Scan(&t.ID, &t.Name, &t.PrimaryHost, &t.Plan, &t.Status, &t.OwnerUserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "primary_host", "plan", "status", "owner_user_id").
		Values(id, t.Name, t.PrimaryHost, t.Plan, t.Status, t.OwnerUserID).
		Suffix("RETURNING " + strings.Join(tenantColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		return nil, classify(err, "failed to insert tenant")
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		return nil, classify(err, "failed to get tenant")
	}

	rows, err := s.db.Statement(ctx).
		Select("host").
		From("tenant_hosts").
		Where(sq.Eq{"tenant_id": id}).
		OrderBy("host").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenant hosts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("failed to scan tenant host: %w", err)
		}
		t.ExtraHosts = append(t.ExtraHosts, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return t, nil
}

// GetTenantByHost resolves a host against the primary host and the extra hosts.
func (s *Storage) GetTenantByHost(ctx context.Context, host string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByHost")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(prefixed("t", tenantColumns)...).
		From("tenants t").
		LeftJoin("tenant_hosts h ON h.tenant_id = t.id").
		Where(sq.Or{sq.Eq{"t.primary_host": host}, sq.Eq{"h.host": host}}).
		Limit(1).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		return nil, classify(err, "failed to get tenant by host")
	}

	return t, nil
}

func (s *Storage) SetTenantPrimaryHost(ctx context.Context, id, host string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantPrimaryHost")
	defer span.End()

	return s.updateTenant(ctx, id, map[string]any{"primary_host": host})
}

func (s *Storage) SetTenantPlan(ctx context.Context, id string, plan types.Plan) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantPlan")
	defer span.End()

	return s.updateTenant(ctx, id, map[string]any{"plan": plan})
}

func (s *Storage) SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	return s.updateTenant(ctx, id, map[string]any{"status": status})
}

func (s *Storage) updateTenant(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return classify(err, "failed to update tenant")
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

// ListTenants pages through every tenant, newest first.
func (s *Storage) ListTenants(ctx context.Context, offset, limit uint64) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	return s.listTenants(ctx, s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at DESC", "id").
		Offset(offset).
		Limit(limit))
}

func (s *Storage) ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantsByUserID")
	defer span.End()

	return s.listTenants(ctx, s.db.Statement(ctx).
		Select(prefixed("t", tenantColumns)...).
		From("tenants t").
		Join("memberships m ON t.id = m.tenant_id").
		Where(sq.Eq{"m.kratos_identity_id": userID}).
		OrderBy("t.created_at"))
}

func (s *Storage) listTenants(ctx context.Context, q sq.SelectBuilder) ([]*types.Tenant, error) {
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "kratos_identity_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.KratosIdentityID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// AddTenantHost is a no-op when the host is already attached to the tenant.
// A host served by another tenant fails with ErrDuplicateKey.
func (s *Storage) AddTenantHost(ctx context.Context, tenantID, host string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddTenantHost")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Insert("tenant_hosts").
		Columns("host", "tenant_id").
		Values(host, tenantID).
		Suffix("ON CONFLICT (host) DO UPDATE SET host = EXCLUDED.host WHERE tenant_hosts.tenant_id = EXCLUDED.tenant_id").
		ExecContext(ctx)
	if err != nil {
		return classify(err, "failed to add tenant host")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: host %s belongs to another tenant", ErrDuplicateKey, host)
	}

	return nil
}

func (s *Storage) AddMember(ctx context.Context, tenantID, userID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := newID()
	if err != nil {
		return "", err
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "kratos_identity_id", "role").
		Values(id, tenantID, userID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id, nil
}

func (s *Storage) GetTenantOwner(ctx context.Context, tenantID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantOwner")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "kratos_identity_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID, "role": types.RoleAdmin}).
		OrderBy("created_at").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.TenantID, &m.KratosIdentityID, &m.Role, &m.CreatedAt)

	if err != nil {
		return nil, classify(err, "failed to get tenant owner")
	}

	return &m, nil
}

func (s *Storage) CreateSettings(ctx context.Context, st *types.Settings) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSettings")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("tenant_settings").
		Columns("tenant_id", "primary_color", "secondary_color", "logo_url").
		Values(st.TenantID, st.PrimaryColor, st.SecondaryColor, st.LogoURL).
		Suffix("ON CONFLICT (tenant_id) DO NOTHING").
		ExecContext(ctx)

	return classify(err, "failed to insert settings")
}

func (s *Storage) CreateCategory(ctx context.Context, c *types.Category) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCategory")
	defer span.End()

	id, err := newID()
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert("categories").
		Columns("id", "tenant_id", "name", "slug").
		Values(id, c.TenantID, c.Name, c.Slug).
		ExecContext(ctx)
	if err != nil {
		return classify(err, "failed to insert category")
	}

	c.ID = id
	return nil
}

func (s *Storage) CreateContentBlocks(ctx context.Context, blocks []*types.ContentBlock) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateContentBlocks")
	defer span.End()

	if len(blocks) == 0 {
		return nil
	}

	q := s.db.Statement(ctx).
		Insert("content_blocks").
		Columns("id", "tenant_id", "kind", "position", "content")

	for _, b := range blocks {
		id, err := newID()
		if err != nil {
			return err
		}
		content, err := json.Marshal(b.Content)
		if err != nil {
			return fmt.Errorf("failed to encode content block %s: %w", b.Kind, err)
		}
		b.ID = id
		q = q.Values(id, b.TenantID, b.Kind, b.Position, string(content))
	}

	_, err := q.ExecContext(ctx)
	return classify(err, "failed to insert content blocks")
}
