// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"errors"

	"github.com/canonical/storefront-service/internal/types"
)

const (
	defaultPrimaryColor   = "#111827"
	defaultSecondaryColor = "#F59E0B"
	defaultCategoryName   = "General"
	defaultCategorySlug   = "general"
)

var (
	ErrHostTaken     = errors.New("host is already used by another store")
	ErrInvalidHost   = errors.New("invalid host")
	ErrTenantMissing = errors.New("tenant not found")
)

// Request describes a new store. BillingAmount > 0 creates a subscription,
// pending until the processor authorizes PreapprovalID when one is given.
type Request struct {
	Name          string              `json:"name" validate:"required,max=120"`
	Domain        string              `json:"domain,omitempty" validate:"omitempty,max=253"`
	OwnerUserID   string              `json:"owner_user_id" validate:"required"`
	Plan          types.Plan          `json:"plan" validate:"required,oneof=free basic premium"`
	BillingAmount float64             `json:"billing_amount,omitempty" validate:"gte=0"`
	BillingPeriod types.BillingPeriod `json:"billing_period,omitempty" validate:"omitempty,oneof=monthly yearly"`
	PreapprovalID string              `json:"preapproval_id,omitempty"`
	SeedContent   bool                `json:"seed_content,omitempty"`
}

type ConnectDomainRequest struct {
	Domain string `json:"domain" validate:"required,max=253"`
}

// defaultContent is what a storefront shows before the owner edits anything.
func defaultContent(tenantID, storeName string) []*types.ContentBlock {
	return []*types.ContentBlock{
		{
			TenantID: tenantID,
			Kind:     "contact_info",
			Position: 0,
			Content:  map[string]any{"email": "", "phone": "", "address": ""},
		},
		{
			TenantID: tenantID,
			Kind:     "logo_placeholder",
			Position: 1,
			Content:  map[string]any{"text": storeName},
		},
		{
			TenantID: tenantID,
			Kind:     "default_banner",
			Position: 2,
			Content: map[string]any{
				"title":    "Bienvenido a " + storeName,
				"subtitle": "Descubre nuestros productos",
			},
		},
	}
}
