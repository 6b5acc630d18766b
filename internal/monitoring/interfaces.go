// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
	// IncDomainEvent counts a business event (purchase outcome, setup step
	// outcome, webhook event), labelled by component, event and outcome.
	IncDomainEvent(map[string]string) error
}
