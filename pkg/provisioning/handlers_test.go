// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/storefront-service/internal/authorization"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/internal/validation"
	"github.com/canonical/storefront-service/pkg/authentication"
)

func TestAPI(t *testing.T) {
	owner := &authentication.Principal{UserID: "user-1"}
	admin := &authentication.Principal{UserID: "ops", Admin: true}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		principal      *authentication.Principal
		setupMocks     func(*MockServiceInterface, *MockAuthorizerInterface, *MockLoggerInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "owner creates own store",
			method:    http.MethodPost,
			path:      "/api/v0/tenants",
			body:      `{"name": "Mi Tienda", "plan": "free", "owner_user_id": "someone-else"}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ProvisionTenant(gomock.Any(), Request{Name: "Mi Tienda", Plan: types.PlanFree, OwnerUserID: "user-1"}).
					Return(&types.Tenant{ID: "tenant-1", Name: "Mi Tienda"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "store Mi Tienda created",
		},
		{
			name:      "admin creates store for a user",
			method:    http.MethodPost,
			path:      "/api/v0/tenants",
			body:      `{"name": "Mi Tienda", "plan": "basic", "owner_user_id": "user-9", "billing_amount": 299, "seed_content": true}`,
			principal: admin,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ProvisionTenant(gomock.Any(), Request{Name: "Mi Tienda", Plan: types.PlanBasic, OwnerUserID: "user-9", BillingAmount: 299, SeedContent: true}).
					Return(&types.Tenant{ID: "tenant-1", Name: "Mi Tienda"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid plan",
			method:         http.MethodPost,
			path:           "/api/v0/tenants",
			body:           `{"name": "Mi Tienda", "plan": "gold"}`,
			principal:      owner,
			setupMocks:     func(*MockServiceInterface, *MockAuthorizerInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "plan must be one of [free basic premium]",
		},
		{
			name:           "unauthenticated",
			method:         http.MethodPost,
			path:           "/api/v0/tenants",
			body:           `{}`,
			setupMocks:     func(*MockServiceInterface, *MockAuthorizerInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "connect domain",
			method:    http.MethodPost,
			path:      "/api/v0/tenants/tenant-1/domains/connect",
			body:      `{"domain": "mitienda.com"}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, authz *MockAuthorizerInterface, _ *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "user-1", authorization.CAN_EDIT_PERMISSION).Return(true, nil)
				svc.EXPECT().RegisterDNSOnly(gomock.Any(), "tenant-1", "mitienda.com").Return(&types.DomainPurchase{ID: "purchase-1", Domain: "mitienda.com"}, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:      "connect domain taken",
			method:    http.MethodPost,
			path:      "/api/v0/tenants/tenant-1/domains/connect",
			body:      `{"domain": "mitienda.com"}`,
			principal: admin,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface) {
				svc.EXPECT().RegisterDNSOnly(gomock.Any(), "tenant-1", "mitienda.com").Return(nil, ErrHostTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:      "connect domain forbidden",
			method:    http.MethodPost,
			path:      "/api/v0/tenants/tenant-2/domains/connect",
			body:      `{"domain": "mitienda.com"}`,
			principal: owner,
			setupMocks: func(_ *MockServiceInterface, authz *MockAuthorizerInterface, _ *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-2", "user-1", authorization.CAN_EDIT_PERMISSION).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "resolve host",
			method:    http.MethodGet,
			path:      "/api/v0/hosts/mitienda.com",
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ResolveHost(gomock.Any(), "mitienda.com").Return(&types.Tenant{ID: "tenant-1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"tenant-1"`,
		},
		{
			name:      "resolve unknown host",
			method:    http.MethodGet,
			path:      "/api/v0/hosts/nope.com",
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ResolveHost(gomock.Any(), "nope.com").Return(nil, ErrTenantMissing)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tt.setupMocks(mockService, mockAuthz, mockLogger)

			api := NewAPI(mockService, mockAuthz, validation.NewValidator(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), mockLogger)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), tt.principal))
			}
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			body, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(body))
			}

			if tt.expectedBody != "" && !strings.Contains(string(body), tt.expectedBody) {
				t.Errorf("expected body to contain %s, got %s", tt.expectedBody, string(body))
			}
		})
	}
}
