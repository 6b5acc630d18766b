// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/pkg/authentication"
	"github.com/canonical/storefront-service/pkg/metrics"
	"github.com/canonical/storefront-service/pkg/status"
)

type EndpointsRegisterer interface {
	RegisterEndpoints(mux chi.Router)
}

// RegistererFunc adapts a registration method to EndpointsRegisterer.
type RegistererFunc func(mux chi.Router)

func (f RegistererFunc) RegisterEndpoints(mux chi.Router) {
	f(mux)
}

// APIs groups the endpoint sets by the access they require. Public endpoints
// authenticate on their own terms, webhooks verify signatures for example.
type APIs struct {
	Public        []EndpointsRegisterer
	Authenticated []EndpointsRegisterer
	Admin         []EndpointsRegisterer
}

func NewRouter(
	apis APIs,
	auth *authentication.Middleware,
	db status.PingerInterface,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(db, tracer, monitor, logger).RegisterEndpoints(router)

	for _, api := range apis.Public {
		api.RegisterEndpoints(router)
	}

	router.Group(func(r chi.Router) {
		r.Use(auth.Authenticate())

		for _, api := range apis.Authenticated {
			api.RegisterEndpoints(r)
		}

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin())

			for _, api := range apis.Admin {
				api.RegisterEndpoints(r)
			}
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
