// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	domainEvents           *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(m.withService(tags)).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailability.With(m.withService(tags)).Set(value)

	return nil
}

func (m *Monitor) IncDomainEvent(tags map[string]string) error {
	if m.domainEvents == nil {
		return fmt.Errorf("metric not instantiated")
	}

	labels := prometheus.Labels{
		"service":   m.service,
		"component": tags["component"],
		"event":     tags["event"],
		"outcome":   tags["outcome"],
	}
	m.domainEvents.With(labels).Inc()

	return nil
}

func (m *Monitor) withService(tags map[string]string) prometheus.Labels {
	labels := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		labels[k] = v
	}
	return labels
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status", "service"},
	)

	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	)

	m.domainEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_domain_events_total",
			Help: "business events processed by the provisioning core",
		},
		[]string{"service", "component", "event", "outcome"},
	)

	for _, c := range []prometheus.Collector{m.responseTime, m.dependencyAvailability, m.domainEvents} {
		if err := prometheus.Register(c); err != nil {
			m.logger.Debugf("metric already registered: %v", err)
		}
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()

	return m
}
