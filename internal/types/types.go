// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Plan string

const (
	PlanFree    Plan = "free"
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
)

// Paid reports whether the plan requires a subscription.
func (p Plan) Paid() bool {
	return p == PlanBasic || p == PlanPremium
}

type TenantStatus string

const (
	TenantPending   TenantStatus = "pending"
	TenantActive    TenantStatus = "active"
	TenantSuspended TenantStatus = "suspended"
	TenantCancelled TenantStatus = "cancelled"
)

type Tenant struct {
	ID          string       `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	PrimaryHost *string      `db:"primary_host" json:"primary_host"`
	ExtraHosts  []string     `db:"-" json:"extra_hosts,omitempty"`
	Plan        Plan         `db:"plan" json:"plan"`
	Status      TenantStatus `db:"status" json:"status"`
	OwnerUserID string       `db:"owner_user_id" json:"owner_user_id"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

const RoleAdmin = "admin"

type Membership struct {
	ID               string    `db:"id"`
	TenantID         string    `db:"tenant_id"`
	KratosIdentityID string    `db:"kratos_identity_id"`
	Role             string    `db:"role"`
	CreatedAt        time.Time `db:"created_at"`
}

// TenantUser is a membership enriched with the identity's email.
type TenantUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type Settings struct {
	TenantID       string `db:"tenant_id"`
	PrimaryColor   string `db:"primary_color"`
	SecondaryColor string `db:"secondary_color"`
	LogoURL        string `db:"logo_url"`
}

type Category struct {
	ID       string `db:"id"`
	TenantID string `db:"tenant_id"`
	Name     string `db:"name"`
	Slug     string `db:"slug"`
}

type ContentBlock struct {
	ID       string         `db:"id"`
	TenantID string         `db:"tenant_id"`
	Kind     string         `db:"kind"`
	Position int            `db:"position"`
	Content  map[string]any `db:"content"`
}

type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// Advance returns t moved forward by one billing period.
func (p BillingPeriod) Advance(t time.Time) time.Time {
	if p == BillingYearly {
		return t.AddDate(1, 0, 0)
	}
	return t.AddDate(0, 1, 0)
}

// Interval is the postgres interval literal of one period.
func (p BillingPeriod) Interval() string {
	if p == BillingYearly {
		return "1 year"
	}
	return "1 month"
}

type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type Subscription struct {
	ID              string             `db:"id" json:"id"`
	TenantID        string             `db:"tenant_id" json:"tenant_id"`
	Status          SubscriptionStatus `db:"status" json:"status"`
	NextBillingDate time.Time          `db:"next_billing_date" json:"next_billing_date"`
	Amount          float64            `db:"amount" json:"amount"`
	Period          BillingPeriod      `db:"period" json:"period"`
	PreapprovalID   *string            `db:"preapproval_id" json:"preapproval_id,omitempty"`
	CreatedAt       time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at" json:"updated_at"`
}

// SubscriptionPayment is one processor payment applied to a subscription.
type SubscriptionPayment struct {
	PaymentID      string    `db:"payment_id"`
	SubscriptionID string    `db:"subscription_id"`
	Amount         float64   `db:"amount"`
	AppliedAt      time.Time `db:"applied_at"`
}

type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderPaid    OrderStatus = "paid"
)

type Order struct {
	ID            string      `db:"id"`
	TenantID      string      `db:"tenant_id"`
	Status        OrderStatus `db:"status"`
	Total         float64     `db:"total"`
	PaymentID     *string     `db:"payment_id"`
	CustomerName  string      `db:"customer_name"`
	CustomerEmail string      `db:"customer_email"`
	CreatedAt     time.Time   `db:"created_at"`
}

type DomainRenewal struct {
	ID              string    `db:"id"`
	TenantID        string    `db:"tenant_id"`
	PurchaseID      *string   `db:"purchase_id"`
	Domain          string    `db:"domain"`
	Amount          float64   `db:"amount"`
	NextRenewalDate time.Time `db:"next_renewal_date"`
	Enabled         bool      `db:"enabled"`
}

// WebhookEvent is the audit row kept for every verified webhook delivery.
type WebhookEvent struct {
	RequestID  string    `db:"request_id"`
	Type       string    `db:"type"`
	Action     string    `db:"action"`
	ResourceID string    `db:"resource_id"`
	Verified   bool      `db:"verified"`
	ReceivedAt time.Time `db:"received_at"`
}
