// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package setup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/storefront-service/internal/http/types"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tracing"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the operator endpoints, callers are expected to
// guard them with authentication.Middleware.RequireAdmin.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/domains/{id}/setup", a.runSetup)
}

func (a *API) runSetup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "setup.API.runSetup")
	defer span.End()

	var opts Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := a.service.RunSetup(ctx, chi.URLParam(r, "id"), opts)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		_ = httptypes.WriteError(w, http.StatusNotFound, "domain purchase not found")
		return
	case errors.Is(err, ErrPurchaseNotReady):
		_ = httptypes.WriteError(w, http.StatusConflict, err.Error())
		return
	default:
		a.logger.Errorf("setup run failed: %v", err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, "failed to run setup")
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, report, summaryMessage(report))
}

func summaryMessage(r *Report) string {
	return fmt.Sprintf("%d steps completed, %d with errors", r.Summary.Completed, r.Summary.Errors)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
