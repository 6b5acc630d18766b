// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/storefront-service/internal/authorization"
	httptypes "github.com/canonical/storefront-service/internal/http/types"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
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
	mux.Get("/api/v0/tenants", a.listMine)
	mux.Get("/api/v0/tenants/{tenant_id}", a.get)
	mux.Get("/api/v0/tenants/{tenant_id}/members", a.members)
}

// RegisterAdminEndpoints expects the router to be restricted to operators.
func (a *API) RegisterAdminEndpoints(mux chi.Router) {
	mux.Get("/api/v0/admin/tenants", a.list)
	mux.Patch("/api/v0/admin/tenants/{tenant_id}/status", a.setStatus)
}

func (a *API) listMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listMine")
	defer span.End()

	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	tenants, err := a.service.ListMyTenants(ctx, principal.UserID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, tenants, fmt.Sprintf("%d tenants", len(tenants)))
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.get")
	defer span.End()

	tenantID := chi.URLParam(r, "tenant_id")
	if !a.allowed(ctx, w, tenantID, authorization.CAN_VIEW_PERMISSION) {
		return
	}

	t, err := a.service.GetTenant(ctx, tenantID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, t, "")
}

func (a *API) members(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.members")
	defer span.End()

	tenantID := chi.URLParam(r, "tenant_id")
	if !a.allowed(ctx, w, tenantID, authorization.CAN_VIEW_PERMISSION) {
		return
	}

	users, err := a.service.ListMembers(ctx, tenantID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, users, fmt.Sprintf("%d members", len(users)))
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.list")
	defer span.End()

	size := 0
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid page_size")
			return
		}
		size = n
	}

	page, err := a.service.ListTenants(ctx, r.URL.Query().Get("page_token"), size)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, page, "")
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.setStatus")
	defer span.End()

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := a.service.SetStatus(ctx, chi.URLParam(r, "tenant_id"), req.Status)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, t, fmt.Sprintf("tenant %s is %s", t.ID, t.Status))
}

func (a *API) allowed(ctx context.Context, w http.ResponseWriter, tenantID, permission string) bool {
	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return false
	}

	if principal.Admin {
		return true
	}

	ok, err := a.authz.CheckTenantAccess(ctx, tenantID, principal.UserID, permission)
	if err != nil {
		a.logger.Errorf("failed to check access to tenant %s: %v", tenantID, err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, "failed to check permissions")
		return false
	}

	if !ok {
		_ = httptypes.WriteError(w, http.StatusForbidden, "forbidden")
		return false
	}

	return true
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidPageToken), errors.Is(err, ErrInvalidStatus):
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		_ = httptypes.WriteError(w, http.StatusNotFound, "tenant not found")
	default:
		a.logger.Errorf("tenant request failed: %v", err)
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
