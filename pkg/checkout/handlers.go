// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/storefront-service/internal/authorization"
	httptypes "github.com/canonical/storefront-service/internal/http/types"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/payments"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/validation"
	"github.com/canonical/storefront-service/pkg/authentication"
)

type API struct {
	service   ServiceInterface
	authz     AuthorizerInterface
	validator *validation.Validator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/tenants/{tenant_id}/subscription", a.subscribe)
}

func (a *API) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "checkout.API.subscribe")
	defer span.End()

	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	tenantID := chi.URLParam(r, "tenant_id")

	if !principal.Admin {
		allowed, err := a.authz.CheckTenantAccess(ctx, tenantID, principal.UserID, authorization.CAN_EDIT_PERMISSION)
		if err != nil {
			a.logger.Errorf("failed to check access to tenant %s: %v", tenantID, err)
			_ = httptypes.WriteError(w, http.StatusInternalServerError, "failed to check permissions")
			return
		}
		if !allowed {
			_ = httptypes.WriteError(w, http.StatusForbidden, "forbidden")
			return
		}
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := a.service.StartSubscription(ctx, tenantID, principal.UserID, req.Period)

	var paymentsErr *payments.Error
	switch {
	case err == nil:
		_ = httptypes.WriteData(w, http.StatusCreated, session, "approve the subscription at the init point")
	case errors.Is(err, ErrAlreadySubscribed):
		_ = httptypes.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		_ = httptypes.WriteError(w, http.StatusNotFound, "tenant not found")
	case errors.As(err, &paymentsErr):
		a.logger.Errorf("payment processor rejected checkout for %s: %v", tenantID, err)
		_ = httptypes.WriteError(w, http.StatusBadGateway, "payment processor unavailable")
	default:
		a.logger.Errorf("checkout failed for %s: %v", tenantID, err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func NewAPI(
	service ServiceInterface,
	authz AuthorizerInterface,
	validator *validation.Validator,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service
	a.authz = authz
	a.validator = validator

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
