// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTransient = errors.New("transient")

func testConfig() Config {
	return Config{
		Name:             "test",
		RetryAttempts:    3,
		RetryInitialWait: time.Millisecond,
		RetryMaxWait:     5 * time.Millisecond,
		IsRetryable:      func(err error) bool { return errors.Is(err, errTransient) },
	}
}

func TestExecuteRetriesRetryableErrors(t *testing.T) {
	e := New[int](testConfig())

	calls := 0
	v, err := e.Execute(context.Background(), func(context.Context) (int, error) {
		calls++
		if calls < 2 {
			return 0, errTransient
		}
		return 42, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls)
}

func TestExecuteDoesNotRetryPermanentErrors(t *testing.T) {
	e := New[int](testConfig())
	permanent := errors.New("permanent")

	calls := 0
	_, err := e.Execute(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestExecuteOnceNeverRetries(t *testing.T) {
	e := New[int](testConfig())

	calls := 0
	_, err := e.ExecuteOnce(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, errTransient
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestBreakerOpensAfterThreshold(t *testing.T) {
	cfg := testConfig()
	cfg.RetryAttempts = 0
	cfg.BreakerThreshold = 2
	cfg.BreakerTimeout = time.Minute
	e := New[int](cfg)

	calls := 0
	op := func(context.Context) (int, error) {
		calls++
		return 0, errTransient
	}

	for i := 0; i < 5; i++ {
		_, _ = e.ExecuteOnce(context.Background(), op)
	}

	assert.Equal(t, 2, calls)
	assert.Equal(t, "open", e.State())
}

func TestNilExecutorRunsOperation(t *testing.T) {
	var e *Executor[string]

	v, err := e.Execute(context.Background(), func(context.Context) (string, error) { return "ok", nil })
	assert.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, "disabled", e.State())
	assert.NoError(t, e.Close())
}
