// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package checkout

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/storefront-service/internal/authorization"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/payments"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/internal/validation"
	"github.com/canonical/storefront-service/pkg/authentication"
)

func TestAPI(t *testing.T) {
	owner := &authentication.Principal{UserID: "user-1"}

	tests := []struct {
		name           string
		body           string
		principal      *authentication.Principal
		setupMocks     func(*MockServiceInterface, *MockAuthorizerInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:      "subscribe",
			body:      `{"period": "yearly"}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, authz *MockAuthorizerInterface, _ *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "user-1", authorization.CAN_EDIT_PERMISSION).Return(true, nil)
				svc.EXPECT().StartSubscription(gomock.Any(), "tenant-1", "user-1", types.BillingYearly).
					Return(&Session{SubscriptionID: "sub-1", InitPoint: "https://pay.example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			body:           `{}`,
			setupMocks:     func(*MockServiceInterface, *MockAuthorizerInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "not an editor",
			body:      `{}`,
			principal: owner,
			setupMocks: func(_ *MockServiceInterface, authz *MockAuthorizerInterface, _ *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "user-1", authorization.CAN_EDIT_PERMISSION).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "bad period",
			body:      `{"period": "weekly"}`,
			principal: owner,
			setupMocks: func(_ *MockServiceInterface, authz *MockAuthorizerInterface, _ *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "already paid",
			body:      `{}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, authz *MockAuthorizerInterface, _ *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				svc.EXPECT().StartSubscription(gomock.Any(), "tenant-1", "user-1", types.BillingPeriod("")).Return(nil, ErrAlreadySubscribed)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:      "processor failure",
			body:      `{}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, authz *MockAuthorizerInterface, logger *MockLoggerInterface) {
				authz.EXPECT().CheckTenantAccess(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				svc.EXPECT().StartSubscription(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &payments.Error{Err: errors.New("timeout")})
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadGateway,
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

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/subscription", strings.NewReader(tt.body))
			if tt.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), tt.principal))
			}
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
