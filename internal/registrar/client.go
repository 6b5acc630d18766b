// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/resilience"
	"github.com/canonical/storefront-service/internal/tracing"
)

const defaultTimeout = 8 * time.Second

var _ ClientInterface = (*Client)(nil)

type Config struct {
	URL           string
	Username      string
	Password      string
	ContactHandle string
	NSGroup       string
	Timeout       time.Duration
	Retries       int
}

type Client struct {
	http  *resty.Client
	creds Credentials

	contactHandle string
	nsGroup       string

	policy *resilience.Executor[*Response]

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Send posts command and returns the parsed reply. Non-2xx answers and network
// failures come back as *TransportError, a non-zero reply code as *APIError.
func (c *Client) Send(ctx context.Context, command string, params Params) (*Response, error) {
	resp, err := c.exchange(ctx, command, params)
	if err != nil {
		return nil, err
	}
	return resp, checkCode(resp)
}

// exchange performs the HTTP round trip. Only transport problems are errors
// here so that registrar business errors never trip the circuit breaker.
func (c *Client) exchange(ctx context.Context, command string, params Params) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "registrar.Client.exchange")
	defer span.End()

	payload, err := BuildRequest(c.creds, command, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/")

	if err != nil {
		c.setAvailability(0)
		c.logger.Errorf("registrar %s failed: %v", command, err)
		return nil, &TransportError{Err: err}
	}

	c.setAvailability(1)

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		c.logger.Errorf("registrar %s returned HTTP %d", command, resp.StatusCode())
		return nil, newHTTPError(resp.StatusCode(), resp.Body())
	}

	reply, err := ParseResponse(resp.Body())
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode(), Body: truncate(resp.Body()), Err: err}
	}

	if reply.Code != 0 {
		c.logger.Warnf("registrar %s returned code %d: %s", command, reply.Code, reply.Description)
	}

	return reply, nil
}

func checkCode(resp *Response) error {
	if resp.Code != 0 {
		return &APIError{Code: resp.Code, Description: resp.Description}
	}
	return nil
}

// read sends a side-effect free command, retrying temporary transport failures.
func (c *Client) read(ctx context.Context, command string, params Params) (*Response, error) {
	resp, err := c.policy.Execute(ctx, func(ctx context.Context) (*Response, error) {
		return c.exchange(ctx, command, params)
	})
	if err != nil {
		return nil, c.wrapPolicyError(err)
	}
	return resp, checkCode(resp)
}

// write sends a command with side effects exactly once.
func (c *Client) write(ctx context.Context, command string, params Params) (*Response, error) {
	resp, err := c.policy.ExecuteOnce(ctx, func(ctx context.Context) (*Response, error) {
		return c.exchange(ctx, command, params)
	})
	if err != nil {
		return nil, c.wrapPolicyError(err)
	}
	return resp, checkCode(resp)
}

// wrapPolicyError turns breaker and rate limiter rejections into transport
// errors so callers classify them like any other unreachable registrar.
func (c *Client) wrapPolicyError(err error) error {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return err
	}
	return &TransportError{Err: err}
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "registrar"}, v); err != nil {
		c.logger.Debugf("failed to record registrar availability: %v", err)
	}
}

// BreakerState exposes the circuit breaker state for the status endpoint.
func (c *Client) BreakerState() string {
	return c.policy.State()
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		b = b[:maxErrorBody]
	}
	return string(b)
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c.http = resty.New().
		SetTransport(tracing.NewHTTPClientTransport(http.DefaultTransport)).
		SetBaseURL(cfg.URL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "text/xml; charset=utf-8").
		SetHeader("Accept", "text/xml")

	c.creds = Credentials{Username: cfg.Username, Password: cfg.Password}
	c.contactHandle = cfg.ContactHandle
	c.nsGroup = cfg.NSGroup

	rcfg := resilience.DefaultConfig("registrar", isRetryable)
	rcfg.RetryAttempts = cfg.Retries
	c.policy = resilience.New[*Response](rcfg)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
