// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/storefront-service/internal/http/types"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/pkg/authentication"
)

type pinger struct{}

func (pinger) Ping(context.Context) error { return nil }

func whoami(w http.ResponseWriter, r *http.Request) {
	p, _ := authentication.PrincipalFrom(r.Context())
	_ = httptypes.WriteData(w, http.StatusOK, p.UserID, "")
}

func newTestRouter() http.Handler {
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	apis := APIs{
		Public: []EndpointsRegisterer{RegistererFunc(func(mux chi.Router) {
			mux.Post("/api/v0/webhooks/payments", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})},
		Authenticated: []EndpointsRegisterer{RegistererFunc(func(mux chi.Router) {
			mux.Get("/api/v0/tenants", whoami)
		})},
		Admin: []EndpointsRegisterer{RegistererFunc(func(mux chi.Router) {
			mux.Get("/api/v0/admin/tenants", whoami)
		})},
	}

	auth := authentication.NewMiddleware(authentication.NewNoopVerifier(), tracer, monitor, logger)

	return NewRouter(apis, auth, pinger{}, []string{"https://dashboard.example.com"}, tracer, monitor, logger)
}

func TestRouterAccess(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{name: "status is public", method: http.MethodGet, path: "/api/v0/status", expectedStatus: http.StatusOK},
		{name: "ready is public", method: http.MethodGet, path: "/api/v0/ready", expectedStatus: http.StatusOK},
		{name: "metrics are public", method: http.MethodGet, path: "/api/v0/metrics", expectedStatus: http.StatusOK},
		{name: "webhooks skip authentication", method: http.MethodPost, path: "/api/v0/webhooks/payments", expectedStatus: http.StatusOK},
		{name: "tenants need a token", method: http.MethodGet, path: "/api/v0/tenants", expectedStatus: http.StatusUnauthorized},
		{name: "tenants with token", method: http.MethodGet, path: "/api/v0/tenants", token: "user-1", expectedStatus: http.StatusOK},
		{name: "admin needs operator", method: http.MethodGet, path: "/api/v0/admin/tenants", token: "user-1", expectedStatus: http.StatusForbidden},
		{name: "admin as operator", method: http.MethodGet, path: "/api/v0/admin/tenants", token: "admin:ops", expectedStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/v0/nope", expectedStatus: http.StatusNotFound},
	}

	router := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouterCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v0/tenants", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()

	newTestRouter().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://dashboard.example.com" {
		t.Errorf("expected allowed origin header, got %q", got)
	}
}
