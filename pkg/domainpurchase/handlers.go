// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domainpurchase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/storefront-service/internal/authorization"
	httptypes "github.com/canonical/storefront-service/internal/http/types"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/registrar"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/validation"
	"github.com/canonical/storefront-service/pkg/authentication"
	"github.com/canonical/storefront-service/pkg/domains"
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
	mux.Get("/api/v0/domains/check", a.check)
	mux.Get("/api/v0/domains/{id}", a.get)
	mux.Get("/api/v0/tenants/{tenant_id}/domains", a.list)
	mux.Post("/api/v0/tenants/{tenant_id}/domains", a.purchase)
	mux.Post("/api/v0/tenants/{tenant_id}/domains/transfer", a.transfer)
}

func (a *API) check(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "domainpurchase.API.check")
	defer span.End()

	domain := r.URL.Query().Get("domain")
	if domain == "" {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "domain query parameter is required")
		return
	}

	q, err := a.service.CheckAvailabilityAndPrice(ctx, domain)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	msg := domain + " is not available"
	if q.Available {
		msg = fmt.Sprintf("%s is available for %s", q.Domain, q.Display)
	}

	_ = httptypes.WriteData(w, http.StatusOK, q, msg)
}

func (a *API) purchase(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "domainpurchase.API.purchase")
	defer span.End()

	tenantID := chi.URLParam(r, "tenant_id")
	if !a.allowed(ctx, w, tenantID, authorization.CAN_EDIT_PERMISSION) {
		return
	}

	var req PurchaseRequest
	if !a.decode(w, r, &req) {
		return
	}

	p, err := a.service.PurchaseDomain(ctx, req.Domain, tenantID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, p, fmt.Sprintf("purchase of %s is %s", p.Domain, p.Status))
}

func (a *API) transfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "domainpurchase.API.transfer")
	defer span.End()

	tenantID := chi.URLParam(r, "tenant_id")
	if !a.allowed(ctx, w, tenantID, authorization.CAN_EDIT_PERMISSION) {
		return
	}

	var req TransferRequest
	if !a.decode(w, r, &req) {
		return
	}

	p, err := a.service.TransferDomain(ctx, req.Domain, tenantID, req.AuthCode)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, p, fmt.Sprintf("transfer of %s is %s", p.Domain, p.Status))
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "domainpurchase.API.list")
	defer span.End()

	tenantID := chi.URLParam(r, "tenant_id")
	if !a.allowed(ctx, w, tenantID, authorization.CAN_VIEW_PERMISSION) {
		return
	}

	purchases, err := a.service.ListPurchases(ctx, tenantID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, purchases, fmt.Sprintf("%d domain purchases", len(purchases)))
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "domainpurchase.API.get")
	defer span.End()

	p, err := a.service.GetPurchase(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	if !a.allowed(ctx, w, p.TenantID, authorization.CAN_VIEW_PERMISSION) {
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, p, "")
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := a.validator.Struct(v); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

// allowed writes the rejection itself and reports whether the handler may continue.
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
	var (
		invalidDomain *domains.InvalidDomainError
		invalidTLD    *domains.InvalidTLDError
		transportErr  *registrar.TransportError
		apiErr        *registrar.APIError
	)

	switch {
	case errors.As(err, &invalidDomain), errors.As(err, &invalidTLD),
		errors.Is(err, ErrAuthCodeRequired), errors.Is(err, ErrUnsupportedAction):
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPurchaseInProgress), errors.Is(err, ErrDomainAlreadyPurchased):
		_ = httptypes.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrTenantNotFound), errors.Is(err, storage.ErrNotFound):
		_ = httptypes.WriteError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &transportErr), errors.As(err, &apiErr):
		a.logger.Errorf("registrar request failed: %v", err)
		_ = httptypes.WriteError(w, http.StatusBadGateway, registrar.Classify(err).Message)
	default:
		a.logger.Errorf("domain request failed: %v", err)
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
