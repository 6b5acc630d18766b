// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
)

var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrNoEmail          = errors.New("identity has no email trait")
)

type Client struct {
	client *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentity")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}

		c.setAvailability(0)
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	c.setAvailability(1)
	return identity, nil
}

// GetIdentityEmail returns the email trait of the identity, the address
// store owners receive notifications on.
func (c *Client) GetIdentityEmail(ctx context.Context, id string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentityEmail")
	defer span.End()

	identity, err := c.GetIdentity(ctx, id)
	if err != nil {
		return "", err
	}

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return "", ErrNoEmail
	}

	email, ok := traits["email"].(string)
	if !ok || email == "" {
		return "", ErrNoEmail
	}

	return email, nil
}

func (c *Client) setAvailability(v float64) {
	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, v)
}

var _ ClientInterface = (*Client)(nil)

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	conf.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	c.client = ory.NewAPIClient(conf)
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
