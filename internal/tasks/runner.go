// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tasks runs side effects that must not block the request that
// caused them, such as starting domain setup after a purchase.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/resilience"
	"github.com/canonical/storefront-service/internal/tracing"
)

var (
	ErrQueueFull = errors.New("task queue is full")
	ErrClosed    = errors.New("task runner is shut down")

	_ RunnerInterface = (*Runner)(nil)
)

type Task func(ctx context.Context) error

type Config struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration
	Retries   int
	// RetryWait is the first backoff delay, it doubles on each attempt.
	RetryWait time.Duration
}

type job struct {
	name string
	fn   Task
}

type Runner struct {
	queue   chan job
	timeout time.Duration
	retry   *resilience.Executor[struct{}]

	mu     sync.RWMutex
	closed bool

	group *errgroup.Group
	// base is cancelled when Shutdown gives up waiting
	base   context.Context
	cancel context.CancelFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Submit enqueues fn without waiting for it to run.
func (r *Runner) Submit(name string, fn Task) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return ErrClosed
	}

	select {
	case r.queue <- job{name: name, fn: fn}:
		return nil
	default:
		r.logger.Errorf("dropping task %s: %v", name, ErrQueueFull)
		return ErrQueueFull
	}
}

func (r *Runner) work() error {
	for j := range r.queue {
		r.run(j)
	}
	return nil
}

func (r *Runner) run(j job) {
	ctx, span := r.tracer.Start(r.base, "tasks.Runner."+j.name)
	defer span.End()

	_, err := r.retry.Execute(ctx, func(ctx context.Context) (struct{}, error) {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		return struct{}{}, r.call(ctx, j)
	})

	outcome := "success"
	if err != nil {
		outcome = "error"
		r.logger.Errorf("task %s failed: %v", j.name, err)
	}

	if mErr := r.monitor.IncDomainEvent(map[string]string{"component": "tasks", "event": j.name, "outcome": outcome}); mErr != nil {
		r.logger.Debugf("failed to record task outcome: %v", mErr)
	}
}

// call shields the worker from a panicking task.
func (r *Runner) call(ctx context.Context, j job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("task %s panicked: %v", j.name, rec)
		}
	}()

	return j.fn(ctx)
}

// Shutdown stops accepting tasks and waits for queued ones to finish. When
// ctx expires first, running tasks are cancelled.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- r.group.Wait() }()

	select {
	case err := <-done:
		r.cancel()
		return err
	case <-ctx.Done():
		r.cancel()
		return ctx.Err()
	}
}

func NewRunner(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Runner {
	r := new(Runner)

	workers := max(cfg.Workers, 1)
	r.queue = make(chan job, max(cfg.QueueSize, 1))

	r.timeout = cfg.Timeout
	if r.timeout <= 0 {
		r.timeout = time.Minute
	}

	wait := cfg.RetryWait
	if wait <= 0 {
		wait = time.Second
	}

	r.retry = resilience.New[struct{}](resilience.Config{
		Name:             "tasks",
		RetryAttempts:    cfg.Retries,
		RetryInitialWait: wait,
		RetryMaxWait:     30 * wait,
		IsRetryable:      func(error) bool { return true },
	})

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	r.base, r.cancel = context.WithCancel(context.Background())
	r.group = new(errgroup.Group)
	for range workers {
		r.group.Go(r.work)
	}

	return r
}
