// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package payments is a client for the payment processor's payment and
// preapproval (recurring subscription) resources.
package payments

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

var (
	ErrNotFound = errors.New("payment resource not found")

	_ ClientInterface = (*Client)(nil)
)

// Error is a network, timeout or non-2xx failure talking to the processor.
type Error struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payments transport error: %v", e.Err)
	}
	return fmt.Sprintf("payments API returned HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func isRetryable(err error) bool {
	var pErr *Error
	if !errors.As(err, &pErr) {
		return false
	}
	return pErr.Err != nil || pErr.StatusCode >= 500 || pErr.StatusCode == http.StatusTooManyRequests
}

type Config struct {
	URL         string
	AccessToken string
	Timeout     time.Duration
}

type Client struct {
	http *resty.Client

	reads *resilience.Executor[*resty.Response]

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) GetPayment(ctx context.Context, id string) (*Payment, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.GetPayment")
	defer span.End()

	p := new(Payment)
	if err := c.get(ctx, "/v1/payments/"+url.PathEscape(id), p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) GetPreapproval(ctx context.Context, id string) (*Preapproval, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.GetPreapproval")
	defer span.End()

	p := new(Preapproval)
	if err := c.get(ctx, "/preapproval/"+url.PathEscape(id), p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePreapproval starts a recurring subscription, the payer completes it
// at the returned init point.
func (c *Client) CreatePreapproval(ctx context.Context, req PreapprovalRequest) (*Preapproval, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.CreatePreapproval")
	defer span.End()

	if req.Status == "" {
		req.Status = PreapprovalPending
	}

	p := new(Preapproval)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(p).
		Post("/preapproval")
	if err != nil {
		c.setAvailability(0)
		return nil, &Error{Err: err}
	}
	c.setAvailability(1)

	if !resp.IsSuccess() {
		return nil, newHTTPError(resp)
	}

	return p, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	resp, err := c.reads.Execute(ctx, func(ctx context.Context) (*resty.Response, error) {
		resp, err := c.http.R().SetContext(ctx).SetResult(result).Get(path)
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
	if err != nil {
		c.logger.Errorf("payments GET %s failed: %v", path, err)
		var pErr *Error
		if errors.As(err, &pErr) {
			return err
		}
		return &Error{Err: err}
	}

	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}

	if !resp.IsSuccess() {
		return newHTTPError(resp)
	}

	return nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "payments"}, v); err != nil {
		c.logger.Debugf("failed to record payments availability: %v", err)
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
		SetAuthToken(cfg.AccessToken).
		SetHeader("Accept", "application/json")

	c.reads = resilience.New[*resty.Response](resilience.DefaultConfig("payments", isRetryable))

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
