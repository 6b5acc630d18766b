// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hosting

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(
		Config{URL: srv.URL, Token: "tok", TeamID: "team_1", ProjectID: "prj_1", Timeout: timeout},
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(),
	)
}

func TestGetDomain(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected *Domain
		wantErr  bool
	}{
		{
			name:     "attached",
			status:   http.StatusOK,
			body:     `{"name":"example.store","projectId":"prj_1","verified":true}`,
			expected: &Domain{Name: "example.store", ProjectID: "prj_1", Verified: true},
		},
		{
			name:   "missing",
			status: http.StatusNotFound,
			body:   `{"error":{"code":"not_found","message":"domain not found"}}`,
		},
		{
			name:    "forbidden",
			status:  http.StatusForbidden,
			body:    `{"error":{"code":"forbidden","message":"nope"}}`,
			wantErr: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v9/projects/prj_1/domains/example.store", r.URL.Path)
				assert.Equal(t, "team_1", r.URL.Query().Get("teamId"))
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, time.Second)

			d, err := c.GetDomain(context.Background(), "example.store")
			if tt.wantErr {
				var hErr *Error
				require.True(t, errors.As(err, &hErr))
				assert.Equal(t, tt.status, hErr.StatusCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestAddDomain(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "created", status: http.StatusOK},
		{name: "already attached", status: http.StatusConflict},
		{name: "bad request", status: http.StatusBadRequest, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v10/projects/prj_1/domains", r.URL.Path)

				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "example.store", body["name"])

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{}`))
			}, time.Second)

			err := c.AddDomain(context.Background(), "example.store")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetDomainConfig(t *testing.T) {
	for _, misconfigured := range []bool{true, false} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v6/domains/example.store/config", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"misconfigured": misconfigured})
		}, time.Second)

		cfg, err := c.GetDomainConfig(context.Background(), "example.store")
		require.NoError(t, err)
		assert.Equal(t, misconfigured, cfg.Misconfigured)
	}
}

func TestServerErrorsAreRetried(t *testing.T) {
	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"misconfigured":false}`))
	}, time.Second)

	cfg, err := c.GetDomainConfig(context.Background(), "example.store")
	require.NoError(t, err)
	assert.False(t, cfg.Misconfigured)
	assert.EqualValues(t, 2, calls.Load())
}

func TestErrorBodyTruncated(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(strings.Repeat("e", 4096)))
	}, time.Second)

	_, err := c.GetDomainConfig(context.Background(), "example.store")

	var hErr *Error
	require.True(t, errors.As(err, &hErr))
	assert.Len(t, hErr.Body, maxErrorBody)
	assert.False(t, hErr.Temporary())
}

func TestTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}, 20*time.Millisecond)

	_, err := c.GetDomain(context.Background(), "example.store")

	var hErr *Error
	require.True(t, errors.As(err, &hErr))
	assert.NotNil(t, hErr.Err)
}
