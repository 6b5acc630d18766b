// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/storefront-service/internal/authorization"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/internal/validation"
	"github.com/canonical/storefront-service/pkg/authentication"
)

func TestAPI(t *testing.T) {
	member := &authentication.Principal{UserID: "user-1"}
	admin := &authentication.Principal{UserID: "ops", Admin: true}

	tenant := &types.Tenant{ID: "tenant-1", Name: "Shop", Status: types.TenantActive}

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
			name:      "list my tenants",
			method:    http.MethodGet,
			path:      "/api/v0/tenants",
			principal: member,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ListMyTenants(gomock.Any(), "user-1").Return([]*types.Tenant{tenant}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"1 tenants"`,
		},
		{
			name:           "list my tenants unauthenticated",
			method:         http.MethodGet,
			path:           "/api/v0/tenants",
			setupMocks:     func(*MockServiceInterface, *MockAuthorizerInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "get tenant",
			method:    http.MethodGet,
			path:      "/api/v0/tenants/tenant-1",
			principal: member,
			setupMocks: func(svc *MockServiceInterface, authz *MockAuthorizerInterface, _ *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "user-1", authorization.CAN_VIEW_PERMISSION).Return(true, nil)
				svc.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(tenant, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Shop"`,
		},
		{
			name:      "get tenant forbidden",
			method:    http.MethodGet,
			path:      "/api/v0/tenants/tenant-1",
			principal: member,
			setupMocks: func(_ *MockServiceInterface, authz *MockAuthorizerInterface, _ *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "user-1", authorization.CAN_VIEW_PERMISSION).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "get tenant authz failure",
			method:    http.MethodGet,
			path:      "/api/v0/tenants/tenant-1",
			principal: member,
			setupMocks: func(_ *MockServiceInterface, authz *MockAuthorizerInterface, logger *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "user-1", authorization.CAN_VIEW_PERMISSION).Return(false, errors.New("fga down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:      "get missing tenant as admin",
			method:    http.MethodGet,
			path:      "/api/v0/tenants/tenant-9",
			principal: admin,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTenant(gomock.Any(), "tenant-9").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "list members",
			method:    http.MethodGet,
			path:      "/api/v0/tenants/tenant-1/members",
			principal: member,
			setupMocks: func(svc *MockServiceInterface, authz *MockAuthorizerInterface, _ *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "user-1", authorization.CAN_VIEW_PERMISSION).Return(true, nil)
				svc.EXPECT().ListMembers(gomock.Any(), "tenant-1").Return([]*types.TenantUser{{UserID: "user-1", Email: "owner@example.com", Role: types.RoleAdmin}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"owner@example.com"`,
		},
		{
			name:      "admin list",
			method:    http.MethodGet,
			path:      "/api/v0/admin/tenants?page_size=1&page_token=MQ%3D%3D",
			principal: admin,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ListTenants(gomock.Any(), "MQ==", 1).Return(&Page{Tenants: []*types.Tenant{tenant}, NextPageToken: "Mg=="}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"next_page_token":"Mg=="`,
		},
		{
			name:           "admin list bad page size",
			method:         http.MethodGet,
			path:           "/api/v0/admin/tenants?page_size=ten",
			principal:      admin,
			setupMocks:     func(*MockServiceInterface, *MockAuthorizerInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "admin list bad token",
			method:    http.MethodGet,
			path:      "/api/v0/admin/tenants?page_token=zzz",
			principal: admin,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ListTenants(gomock.Any(), "zzz", 0).Return(nil, ErrInvalidPageToken)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "suspend tenant",
			method:    http.MethodPatch,
			path:      "/api/v0/admin/tenants/tenant-1/status",
			body:      `{"status": "suspended"}`,
			principal: admin,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface) {
				svc.EXPECT().SetStatus(gomock.Any(), "tenant-1", types.TenantSuspended).
					Return(&types.Tenant{ID: "tenant-1", Status: types.TenantSuspended}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"tenant tenant-1 is suspended"`,
		},
		{
			name:           "invalid status",
			method:         http.MethodPatch,
			path:           "/api/v0/admin/tenants/tenant-1/status",
			body:           `{"status": "deleted"}`,
			principal:      admin,
			setupMocks:     func(*MockServiceInterface, *MockAuthorizerInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "status change fails",
			method:    http.MethodPatch,
			path:      "/api/v0/admin/tenants/tenant-1/status",
			body:      `{"status": "active"}`,
			principal: admin,
			setupMocks: func(svc *MockServiceInterface, _ *MockAuthorizerInterface, logger *MockLoggerInterface) {
				svc.EXPECT().SetStatus(gomock.Any(), "tenant-1", types.TenantActive).Return(nil, errors.New("db down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
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
			api.RegisterAdminEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			data, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(data))
			}

			if tt.expectedBody != "" && !strings.Contains(string(data), tt.expectedBody) {
				t.Errorf("expected body to contain %s, got %s", tt.expectedBody, string(data))
			}
		})
	}
}
