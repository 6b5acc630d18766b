// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package hosting talks to the hosting platform that serves tenant storefronts.
// Domains are attached to a single project as aliases; the platform then
// reports whether the domain's DNS points at it.
package hosting

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/resilience"
	"github.com/canonical/storefront-service/internal/tracing"
)

const (
	defaultTimeout = 5 * time.Second
	maxErrorBody   = 512
)

var _ ClientInterface = (*Client)(nil)

// Error is a network, timeout or unexpected HTTP failure.
type Error struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hosting transport error: %v", e.Err)
	}
	return fmt.Sprintf("hosting platform returned HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Temporary() bool {
	return e.Err != nil || e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

func isRetryable(err error) bool {
	var hErr *Error
	return errors.As(err, &hErr) && hErr.Temporary()
}

type Domain struct {
	Name      string `json:"name"`
	ProjectID string `json:"projectId"`
	Verified  bool   `json:"verified"`
}

type DomainConfig struct {
	Misconfigured bool   `json:"misconfigured"`
	ConfiguredBy  string `json:"configuredBy,omitempty"`
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type Config struct {
	URL       string
	Token     string
	TeamID    string
	ProjectID string
	Timeout   time.Duration
}

type Client struct {
	http      *resty.Client
	projectID string

	policy *resilience.Executor[*resty.Response]

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetDomain returns the project alias for domain, nil when it is not attached.
func (c *Client) GetDomain(ctx context.Context, domain string) (*Domain, error) {
	ctx, span := c.tracer.Start(ctx, "hosting.Client.GetDomain")
	defer span.End()

	d := new(Domain)
	resp, err := c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(d).Get(fmt.Sprintf("/v9/projects/%s/domains/%s", url.PathEscape(c.projectID), url.PathEscape(domain)))
	})
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, nil
	case resp.IsSuccess():
		return d, nil
	default:
		return nil, newHTTPError(resp)
	}
}

// AddDomain attaches domain to the project. A domain that is already attached
// is not an error.
func (c *Client) AddDomain(ctx context.Context, domain string) error {
	ctx, span := c.tracer.Start(ctx, "hosting.Client.AddDomain")
	defer span.End()

	resp, err := c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(map[string]string{"name": domain}).
			Post(fmt.Sprintf("/v10/projects/%s/domains", url.PathEscape(c.projectID)))
	})
	if err != nil {
		return err
	}

	if resp.IsSuccess() {
		return nil
	}

	if resp.StatusCode() == http.StatusConflict {
		c.logger.Debugf("domain %s already attached to project", domain)
		return nil
	}

	return newHTTPError(resp)
}

// GetDomainConfig reports whether the domain's DNS currently points at the platform.
func (c *Client) GetDomainConfig(ctx context.Context, domain string) (*DomainConfig, error) {
	ctx, span := c.tracer.Start(ctx, "hosting.Client.GetDomainConfig")
	defer span.End()

	cfg := new(DomainConfig)
	resp, err := c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(cfg).Get(fmt.Sprintf("/v6/domains/%s/config", url.PathEscape(domain)))
	})
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, newHTTPError(resp)
	}

	return cfg, nil
}

// do runs the request through the retry and breaker policy. Responses the
// caller may want to inspect (404, 409) are returned without error.
func (c *Client) do(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	resp, err := c.policy.Execute(ctx, func(ctx context.Context) (*resty.Response, error) {
		resp, err := send(c.http.R().SetContext(ctx).SetError(new(apiError)))
		if err != nil {
			c.setAvailability(0)
			return nil, &Error{Err: err}
		}

		c.setAvailability(1)

		if resp.StatusCode() >= 500 || resp.StatusCode() == http.StatusTooManyRequests {
			return nil, newHTTPError(resp)
		}

		return resp, nil
	})

	if err == nil {
		return resp, nil
	}

	c.logger.Errorf("hosting platform call failed: %v", err)

	var hErr *Error
	if errors.As(err, &hErr) {
		return nil, err
	}
	return nil, &Error{Err: err}
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "hosting"}, v); err != nil {
		c.logger.Debugf("failed to record hosting availability: %v", err)
	}
}

func newHTTPError(resp *resty.Response) *Error {
	body := resp.Body()
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &Error{StatusCode: resp.StatusCode(), Body: string(body)}
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
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json")

	if cfg.TeamID != "" {
		c.http.SetQueryParam("teamId", cfg.TeamID)
	}

	c.projectID = cfg.ProjectID
	c.policy = resilience.New[*resty.Response](resilience.DefaultConfig("hosting", isRetryable))

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
