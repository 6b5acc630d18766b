// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
)

type Service struct {
	storage StorageInterface
	kratos  KratosClientInterface
	hosts   HostCacheInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) ListMyTenants(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMyTenants")
	defer span.End()

	tenants, err := s.storage.ListTenantsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants for user: %w", err)
	}

	return tenants, nil
}

// ListTenants pages through every tenant, newest first. The returned token is
// empty on the last page.
func (s *Service) ListTenants(ctx context.Context, pageToken string, size int) (*Page, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	offset, err := decodePageToken(pageToken)
	if err != nil {
		return nil, ErrInvalidPageToken
	}

	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	tenants, err := s.storage.ListTenants(ctx, offset, uint64(size)+1)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	page := &Page{Tenants: tenants}
	if len(tenants) > size {
		page.Tenants = tenants[:size]
		page.NextPageToken = encodePageToken(offset + uint64(size))
	}

	return page, nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, id)
}

// ListMembers resolves each member's email through Kratos. Identities that
// cannot be read are still listed.
func (s *Service) ListMembers(ctx context.Context, tenantID string) ([]*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	members, err := s.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	users := make([]*types.TenantUser, 0, len(members))
	for _, m := range members {
		email := "unknown"

		identity, err := s.kratos.GetIdentity(ctx, m.KratosIdentityID)
		if err != nil {
			s.logger.Warnf("failed to get identity %s: %v", m.KratosIdentityID, err)
		} else if traits, ok := identity.Traits.(map[string]interface{}); ok {
			if e, ok := traits["email"].(string); ok {
				email = e
			}
		}

		users = append(users, &types.TenantUser{
			UserID: m.KratosIdentityID,
			Email:  email,
			Role:   m.Role,
		})
	}

	return users, nil
}

// SetStatus changes the tenant status and evicts every host of the tenant
// from the host cache so storefronts see the change immediately.
func (s *Service) SetStatus(ctx context.Context, id string, status types.TenantStatus) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetStatus")
	defer span.End()

	switch status {
	case types.TenantPending, types.TenantActive, types.TenantSuspended, types.TenantCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Status == status {
		return t, nil
	}

	if err := s.storage.SetTenantStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to set tenant status: %w", err)
	}

	hosts := t.ExtraHosts
	if t.PrimaryHost != nil {
		hosts = append([]string{*t.PrimaryHost}, hosts...)
	}

	for _, h := range hosts {
		if err := s.hosts.Delete(ctx, "host:"+h); err != nil {
			s.logger.Warnf("failed to evict host %s: %v", h, err)
		}
	}

	s.logger.Infof("tenant %s moved from %s to %s", id, t.Status, status)

	if err := s.monitor.IncDomainEvent(map[string]string{
		"component": "tenant",
		"event":     "status_change",
		"outcome":   string(status),
	}); err != nil {
		s.logger.Debugf("failed to count tenant event: %v", err)
	}

	t.Status = status

	return t, nil
}

func encodePageToken(offset uint64) string {
	return base64.URLEncoding.EncodeToString([]byte(strconv.FormatUint(offset, 10)))
}

func decodePageToken(token string) (uint64, error) {
	if token == "" {
		return 0, nil
	}
	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(string(data), 10, 64)
}

func NewService(
	storage StorageInterface,
	kratos KratosClientInterface,
	hosts HostCacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.kratos = kratos
	s.hosts = hosts

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
