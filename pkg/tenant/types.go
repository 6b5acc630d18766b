// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"errors"

	"github.com/canonical/storefront-service/internal/types"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

var (
	ErrInvalidPageToken = errors.New("invalid page token")
	ErrInvalidStatus    = errors.New("invalid tenant status")
)

type Page struct {
	Tenants       []*types.Tenant `json:"tenants"`
	NextPageToken string          `json:"next_page_token,omitempty"`
}

type StatusRequest struct {
	Status types.TenantStatus `json:"status" validate:"required,oneof=pending active suspended cancelled"`
}
