// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticationRequired(t *testing.T) {
	status := do(t, newClient(""), http.MethodGet, "/api/v0/tenants", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status = do(t, newClient(""), http.MethodGet, "/api/v0/status", nil, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestStoreLifecycle(t *testing.T) {
	suffix := time.Now().UnixNano()
	owner := fmt.Sprintf("e2e-owner-%d", suffix)
	host := fmt.Sprintf("e2e-%d.example.com", suffix)

	client := newClient(owner)
	admin := newClient(adminToken)

	created := new(tenant)
	t.Run("Provision Store", func(t *testing.T) {
		status := do(t, client, http.MethodPost, "/api/v0/tenants", map[string]any{
			"name":         "E2E Store",
			"domain":       host,
			"plan":         "free",
			"seed_content": true,
		}, created)

		require.Equal(t, http.StatusCreated, status)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, owner, created.OwnerUserID)
		assert.Equal(t, "active", created.Status)
	})
	require.NotEmpty(t, created.ID)

	t.Run("Duplicate Host Rejected", func(t *testing.T) {
		status := do(t, newClient(owner+"-other"), http.MethodPost, "/api/v0/tenants", map[string]any{
			"name":   "Other Store",
			"domain": strings.ToUpper(host),
			"plan":   "free",
		}, nil)

		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("List My Tenants", func(t *testing.T) {
		var tenants []tenant
		status := do(t, client, http.MethodGet, "/api/v0/tenants", nil, &tenants)
		require.Equal(t, http.StatusOK, status)

		ids := make([]string, 0, len(tenants))
		for _, tn := range tenants {
			ids = append(ids, tn.ID)
		}
		assert.Contains(t, ids, created.ID)
	})

	t.Run("Owner Is Admin Member", func(t *testing.T) {
		var members []member
		status := do(t, client, http.MethodGet, "/api/v0/tenants/"+created.ID+"/members", nil, &members)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, members, 1)

		assert.Equal(t, owner, members[0].UserID)
		assert.Equal(t, "admin", members[0].Role)
	})

	t.Run("Resolve Host", func(t *testing.T) {
		resolved := new(tenant)
		status := do(t, client, http.MethodGet, "/api/v0/hosts/"+host, nil, resolved)
		require.Equal(t, http.StatusOK, status)

		assert.Equal(t, created.ID, resolved.ID)
	})

	t.Run("Operator Suspends Store", func(t *testing.T) {
		status := do(t, client, http.MethodPatch, "/api/v0/admin/tenants/"+created.ID+"/status", map[string]string{"status": "suspended"}, nil)
		assert.Equal(t, http.StatusForbidden, status)

		updated := new(tenant)
		status = do(t, admin, http.MethodPatch, "/api/v0/admin/tenants/"+created.ID+"/status", map[string]string{"status": "suspended"}, updated)
		require.Equal(t, http.StatusOK, status)

		assert.Equal(t, "suspended", updated.Status)
	})
}

func TestDomainCheck(t *testing.T) {
	status := do(t, newClient("e2e-checker"), http.MethodGet, "/api/v0/domains/check?domain=example.notatld", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUnsignedWebhookRejected(t *testing.T) {
	if os.Getenv("E2E_WEBHOOK_INSECURE") == "true" {
		t.Skip("deployment accepts unsigned webhooks")
	}

	status := do(t, newClient(""), http.MethodPost, "/api/v0/webhooks/payments", map[string]any{
		"type": "payment",
		"data": map[string]string{"id": "1"},
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, status)
}
