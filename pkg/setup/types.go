// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package setup

import (
	"fmt"

	"github.com/canonical/storefront-service/internal/types"
)

type StepName string

const (
	StepHostingDNSRecords StepName = "hosting_dns_records"
	StepDNSVerification   StepName = "dns_verification_check"
	StepTenantActivation  StepName = "tenant_activation"
	StepNotification      StepName = "notification"
)

type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusCompleted StepStatus = "completed"
	StatusError     StepStatus = "error"
	StatusSkipped   StepStatus = "skipped"
)

type Step struct {
	Name    StepName   `json:"name"`
	Status  StepStatus `json:"status"`
	Message string     `json:"message,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type Summary struct {
	Completed int `json:"completed"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

// Report is the outcome of one setup run, Success is true iff no step errored.
type Report struct {
	PurchaseID string               `json:"purchase_id"`
	Domain     string               `json:"domain"`
	Status     types.PurchaseStatus `json:"status"`
	Success    bool                 `json:"success"`
	Steps      []Step               `json:"steps"`
	Summary    Summary              `json:"summary"`
}

func (r *Report) add(s Step) {
	r.Steps = append(r.Steps, s)

	switch s.Status {
	case StatusCompleted:
		r.Summary.Completed++
	case StatusSkipped:
		r.Summary.Skipped++
	case StatusError:
		r.Summary.Errors++
	}

	r.Success = r.Summary.Errors == 0
}

type Options struct {
	// ForceAll re-executes every step, ignoring the already satisfied checks.
	ForceAll bool `json:"force_all"`
}

// StepError is a failure inside one step, it never aborts the run.
type StepError struct {
	Step StepName
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("setup step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
