// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/storefront-service/internal/http/types"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/payments"
	"github.com/canonical/storefront-service/internal/tracing"
)

type API struct {
	service ServiceInterface

	secret   string
	insecure bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/webhooks/payments", a.payments)
}

// payments acknowledges every authenticated delivery with 200. Processing
// failures are only logged so the processor does not retry side effects.
func (a *API) payments(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.payments")
	defer span.End()

	var ev Event
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&ev); err != nil {
		a.logger.Warnf("malformed webhook body: %v", err)
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid webhook body")
		return
	}

	if ev.Data.ID == "" {
		ev.Data.ID = payments.ID(r.URL.Query().Get("data.id"))
	}

	ev.RequestID = requestID(r)

	verified, ok := a.authenticate(r.Header.Get("x-signature"), ev.RequestID, ev.Data.ID.String())
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "invalid signature")
		return
	}
	ev.Verified = verified

	if err := a.service.HandleEvent(ctx, ev); err != nil {
		a.logger.Errorf("webhook %s: %v", ev.RequestID, err)
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, Received{Received: true})
}

// authenticate applies the signature policy. Without insecure mode every
// delivery must carry a valid signature for the configured secret. In
// insecure mode unsigned deliveries are let through and logged, a present
// but wrong signature is still rejected.
func (a *API) authenticate(signature, requestID, resourceID string) (verified bool, ok bool) {
	security := a.logger.Security()

	switch {
	case a.secret == "" && a.insecure:
		security.WebhookUnverified(requestID, "no webhook secret configured")
		return false, true
	case a.secret == "":
		security.WebhookSignatureFailure(requestID, "no webhook secret configured")
		return false, false
	case signature == "" && a.insecure:
		security.WebhookUnverified(requestID, "missing signature")
		return false, true
	case signature == "":
		security.WebhookSignatureFailure(requestID, "missing signature")
		return false, false
	case !Verify(signature, requestID, resourceID, a.secret):
		security.WebhookSignatureFailure(requestID, "signature mismatch")
		return false, false
	}

	return true, true
}

func requestID(r *http.Request) string {
	if id := r.Header.Get("x-request-id"); id != "" {
		return id
	}
	return r.Header.Get("x-id")
}

func NewAPI(
	service ServiceInterface,
	secret string,
	insecure bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service
	a.secret = secret
	a.insecure = insecure

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
