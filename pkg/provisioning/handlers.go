// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/storefront-service/internal/authorization"
	httptypes "github.com/canonical/storefront-service/internal/http/types"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
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
	mux.Post("/api/v0/tenants", a.provision)
	mux.Post("/api/v0/tenants/{tenant_id}/domains/connect", a.connectDomain)
	mux.Get("/api/v0/hosts/{host}", a.resolveHost)
}

// provision creates a store owned by the caller. Operators may create one on
// behalf of any user.
func (a *API) provision(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioning.API.provision")
	defer span.End()

	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !principal.Admin || req.OwnerUserID == "" {
		req.OwnerUserID = principal.UserID
	}

	if err := a.validator.Struct(req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tenant, err := a.service.ProvisionTenant(ctx, req)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, tenant, "store "+tenant.Name+" created")
}

func (a *API) connectDomain(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioning.API.connectDomain")
	defer span.End()

	tenantID := chi.URLParam(r, "tenant_id")

	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

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

	var req ConnectDomainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := a.service.RegisterDNSOnly(ctx, tenantID, req.Domain)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusAccepted, p, "point "+p.Domain+" to the hosting platform to finish setup")
}

func (a *API) resolveHost(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioning.API.resolveHost")
	defer span.End()

	tenant, err := a.service.ResolveHost(ctx, chi.URLParam(r, "host"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, tenant, "")
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidHost):
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTenantMissing):
		_ = httptypes.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrHostTaken):
		_ = httptypes.WriteError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("provisioning request failed: %v", err)
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
