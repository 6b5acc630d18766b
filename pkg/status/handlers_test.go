// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

func TestStatusEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*MockPingerInterface, *MockLoggerInterface)
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "alive",
			path:           "/api/v0/status",
			setupMocks:     func(*MockPingerInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
		},
		{
			name: "ready",
			path: "/api/v0/ready",
			setupMocks: func(db *MockPingerInterface, _ *MockLoggerInterface) {
				db.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
		},
		{
			name: "database down",
			path: "/api/v0/ready",
			setupMocks: func(db *MockPingerInterface, logger *MockLoggerInterface) {
				db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := NewMockPingerInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockDB, mockLogger)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			NewAPI(mockDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), mockLogger).RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var body Status
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Status != tt.expectedState {
				t.Errorf("expected state %q, got %q", tt.expectedState, body.Status)
			}
		})
	}
}
