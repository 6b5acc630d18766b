// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type PurchaseStatus string

const (
	PurchaseProcessing PurchaseStatus = "processing"
	PurchasePending    PurchaseStatus = "pending"
	PurchaseDNSPending PurchaseStatus = "dns_pending"
	PurchaseActive     PurchaseStatus = "active"
	PurchaseFailed     PurchaseStatus = "failed"
)

type PurchaseAction string

const (
	ActionRegister PurchaseAction = "register"
	ActionTransfer PurchaseAction = "transfer"
	ActionDNSOnly  PurchaseAction = "dns_only"
)

// DomainPurchase is one attempt to acquire a domain for a tenant.
type DomainPurchase struct {
	ID                string           `db:"id" json:"id"`
	TenantID          string           `db:"tenant_id" json:"tenant_id"`
	Domain            string           `db:"domain" json:"domain"`
	Action            PurchaseAction   `db:"action" json:"action"`
	Status            PurchaseStatus   `db:"status" json:"status"`
	RegistrarDomainID *int64           `db:"openprovider_domain_id" json:"openprovider_domain_id,omitempty"`
	ContactHandle     string           `db:"contact_handle" json:"contact_handle,omitempty"`
	DNSVerified       bool             `db:"dns_verified" json:"dns_verified"`
	DNSCheckAttempts  int              `db:"dns_check_attempts" json:"dns_check_attempts"`
	Metadata          PurchaseMetadata `db:"metadata" json:"metadata"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updated_at"`
}

type ErrorEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error"`
	Step      string    `json:"step"`
}

// PurchaseMetadata is stored as the jsonb metadata column.
type PurchaseMetadata struct {
	RegistrarResponse map[string]any `json:"registrar_response,omitempty"`
	ErrorHistory      []ErrorEntry   `json:"error_history,omitempty"`
	RetryCount        int            `json:"retry_count,omitempty"`
	ErrorCode         string         `json:"error_code,omitempty"`
	Error             string         `json:"error,omitempty"`
	Remediation       string         `json:"remediation,omitempty"`
	SetupCompletedAt  *time.Time     `json:"setup_completed_at,omitempty"`
	EmailSent         bool           `json:"email_sent,omitempty"`
	EmailSentAt       *time.Time     `json:"email_sent_at,omitempty"`
}

func (m PurchaseMetadata) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *PurchaseMetadata) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*m = PurchaseMetadata{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata type %T", src)
	}

	if len(b) == 0 {
		*m = PurchaseMetadata{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// MetadataPatch is a partial update of PurchaseMetadata. Errors are appended
// to the stored history and bump the retry count once; the other fields
// replace their stored keys when set.
type MetadataPatch struct {
	EmailSentAt      *time.Time
	SetupCompletedAt *time.Time
	Errors           []ErrorEntry
}

func (p MetadataPatch) IsZero() bool {
	return p.EmailSentAt == nil && p.SetupCompletedAt == nil && len(p.Errors) == 0
}

// Apply mirrors the patch onto an in-memory copy.
func (p MetadataPatch) Apply(m *PurchaseMetadata) {
	if p.EmailSentAt != nil {
		m.EmailSent = true
		m.EmailSentAt = p.EmailSentAt
	}
	if p.SetupCompletedAt != nil {
		m.SetupCompletedAt = p.SetupCompletedAt
	}
	if len(p.Errors) > 0 {
		m.ErrorHistory = append(m.ErrorHistory, p.Errors...)
		m.RetryCount++
	}
}
