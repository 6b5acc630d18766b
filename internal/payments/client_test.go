// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{URL: srv.URL, AccessToken: "APP_USR-1", Timeout: time.Second},
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestGetPayment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/98765", r.URL.Path)
		assert.Equal(t, "Bearer APP_USR-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 98765,
			"status": "approved",
			"external_reference": "order-1",
			"transaction_amount": 1299.5,
			"metadata": {"type": "combined_purchase", "preapproval_id": "pre-1", "seed_content": true, "amount": 450}
		}`))
	})

	p, err := c.GetPayment(context.Background(), "98765")
	require.NoError(t, err)

	assert.Equal(t, ID("98765"), p.ID)
	assert.True(t, p.Approved())
	assert.Equal(t, "order-1", p.ExternalReference)
	assert.Equal(t, 1299.5, p.TransactionAmount)
	assert.Equal(t, "pre-1", p.Subscription())
	assert.Equal(t, "combined_purchase", p.MetadataString("type"))
	assert.Equal(t, "450", p.MetadataString("amount"))
	assert.True(t, p.MetadataBool("seed_content"))
	assert.False(t, p.MetadataBool("missing"))
}

func TestGetPaymentNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	})

	_, err := c.GetPayment(context.Background(), "1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPreapproval(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/preapproval/pre-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pre-1","status":"authorized","payer_email":"owner@example.com","auto_recurring":{"frequency":1,"frequency_type":"months","transaction_amount":299,"currency_id":"MXN"}}`))
	})

	p, err := c.GetPreapproval(context.Background(), "pre-1")
	require.NoError(t, err)
	assert.Equal(t, PreapprovalAuthorized, p.Status)
	assert.Equal(t, "months", p.AutoRecurring.FrequencyType)
	assert.Equal(t, 299.0, p.AutoRecurring.TransactionAmount)
}

func TestCreatePreapproval(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/preapproval", r.URL.Path)

		var req PreapprovalRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, PreapprovalPending, req.Status)
		assert.Equal(t, "tenant-1", req.ExternalReference)
		assert.Equal(t, 12, req.AutoRecurring.Frequency)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"pre-2","status":"pending","init_point":"https://pay.example/checkout"}`))
	})

	p, err := c.CreatePreapproval(context.Background(), PreapprovalRequest{
		Reason:            "Plan anual",
		ExternalReference: "tenant-1",
		PayerEmail:        "owner@example.com",
		AutoRecurring:     AutoRecurring{Frequency: 12, FrequencyType: "months", TransactionAmount: 3000, CurrencyID: "MXN"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pre-2", p.ID)
	assert.Equal(t, "https://pay.example/checkout", p.InitPoint)
}

func TestCreatePreapprovalRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid payer"}`))
	})

	_, err := c.CreatePreapproval(context.Background(), PreapprovalRequest{})

	var pErr *Error
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, http.StatusBadRequest, pErr.StatusCode)
	assert.Contains(t, pErr.Body, "invalid payer")
}

func TestIDUnmarshal(t *testing.T) {
	testCases := []struct {
		in       string
		expected ID
	}{
		{`123`, "123"},
		{`"abc"`, "abc"},
		{`null`, ""},
		{`12345678901234`, "12345678901234"},
	}

	for _, tt := range testCases {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
		assert.Equal(t, tt.expected, id)
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
}
