// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package resilience wraps outbound calls to third party APIs with rate
// limiting, a circuit breaker and retries.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/ratelimit"
	"github.com/felixgeelhaar/fortify/retry"
)

type Config struct {
	// Name keys the rate limiter bucket.
	Name string

	RateLimitPerMinute int

	RetryAttempts    int
	RetryInitialWait time.Duration
	RetryMaxWait     time.Duration
	// IsRetryable decides which errors are worth another attempt, nil retries nothing.
	IsRetryable func(error) bool

	BreakerThreshold   int
	BreakerTimeout     time.Duration
	BreakerMaxRequests int
}

func DefaultConfig(name string, isRetryable func(error) bool) Config {
	return Config{
		Name:               name,
		RateLimitPerMinute: 120,
		RetryAttempts:      3,
		RetryInitialWait:   200 * time.Millisecond,
		RetryMaxWait:       2 * time.Second,
		IsRetryable:        isRetryable,
		BreakerThreshold:   5,
		BreakerTimeout:     30 * time.Second,
		BreakerMaxRequests: 1,
	}
}

// Executor applies, in order, rate limit, circuit breaker and retry.
type Executor[T any] struct {
	name    string
	limiter ratelimit.RateLimiter
	retrier retry.Retry[T]
	breaker circuitbreaker.CircuitBreaker[T]
}

// Execute runs op through the breaker, retrying retryable failures.
// Use it only for operations that are safe to repeat.
func (e *Executor[T]) Execute(ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	return e.run(ctx, op, true)
}

// ExecuteOnce runs op through the breaker without retries.
func (e *Executor[T]) ExecuteOnce(ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	return e.run(ctx, op, false)
}

func (e *Executor[T]) run(ctx context.Context, op func(context.Context) (T, error), retryable bool) (T, error) {
	var zero T

	if e == nil {
		return op(ctx)
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx, e.name); err != nil {
			return zero, err
		}
	}

	call := op
	if retryable && e.retrier != nil {
		call = func(ctx context.Context) (T, error) {
			return e.retrier.Do(ctx, op)
		}
	}

	if e.breaker != nil {
		return e.breaker.Execute(ctx, call)
	}

	return call(ctx)
}

// State reports the breaker state: closed, half-open, open or disabled.
func (e *Executor[T]) State() string {
	if e == nil || e.breaker == nil {
		return "disabled"
	}
	return e.breaker.State().String()
}

func (e *Executor[T]) Close() error {
	if e == nil || e.limiter == nil {
		return nil
	}
	return e.limiter.Close()
}

func New[T any](cfg Config) *Executor[T] {
	e := &Executor[T]{name: cfg.Name}

	if cfg.RateLimitPerMinute > 0 {
		e.limiter = ratelimit.New(&ratelimit.Config{
			Rate:     cfg.RateLimitPerMinute,
			Burst:    cfg.RateLimitPerMinute,
			Interval: time.Minute,
		})
	}

	if cfg.RetryAttempts > 1 && cfg.IsRetryable != nil {
		isRetryable := cfg.IsRetryable
		e.retrier = retry.New[T](retry.Config{
			MaxAttempts:   cfg.RetryAttempts,
			InitialDelay:  cfg.RetryInitialWait,
			MaxDelay:      cfg.RetryMaxWait,
			BackoffPolicy: retry.BackoffExponential,
			Multiplier:    2.0,
			Jitter:        true,
			IsRetryable: func(err error) bool {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return false
				}
				return isRetryable(err)
			},
		})
	}

	if cfg.BreakerThreshold > 0 {
		threshold := uint32(cfg.BreakerThreshold) // #nosec G115 -- bounded config value
		e.breaker = circuitbreaker.New[T](circuitbreaker.Config{
			MaxRequests: uint32(max(cfg.BreakerMaxRequests, 1)), // #nosec G115 -- bounded config value
			Interval:    cfg.BreakerTimeout,
			Timeout:     cfg.BreakerTimeout,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
		})
	}

	return e
}
