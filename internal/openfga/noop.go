// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
)

// NoopClient allows everything, used when authorization is disabled.
type NoopClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *NoopClient) Check(context.Context, string, string, string, ...Tuple) (bool, error) {
	return true, nil
}

func (c *NoopClient) ReadModel(context.Context) (*fga.AuthorizationModel, error) {
	return &fga.AuthorizationModel{}, nil
}

func (c *NoopClient) CompareModel(context.Context, fga.AuthorizationModel) (bool, error) {
	return true, nil
}

func (c *NoopClient) WriteTuple(context.Context, string, string, string) error {
	return nil
}

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoopClient {
	c := new(NoopClient)
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
