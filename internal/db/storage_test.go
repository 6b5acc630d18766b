// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
)

func newTestClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	return NewDBClientFromDB(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()), mock
}

func TestWithTx(t *testing.T) {
	testCases := []struct {
		name      string
		fnErr     error
		touchDB   bool
		expectErr bool
		setup     func(sqlmock.Sqlmock)
	}{
		{
			name:    "commits when fn succeeds",
			touchDB: true,
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
		},
		{
			name:      "rolls back when fn fails",
			touchDB:   true,
			fnErr:     errors.New("boom"),
			expectErr: true,
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectRollback()
			},
		},
		{
			name:  "no transaction when fn never touches the database",
			setup: func(sqlmock.Sqlmock) {},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newTestClient(t)
			tt.setup(mock)

			err := c.WithTx(context.Background(), func(ctx context.Context) error {
				if tt.touchDB {
					if _, err := c.Statement(ctx).Update("tenants").Set("status", "active").ExecContext(ctx); err != nil {
						return err
					}
				}
				return tt.fnErr
			})

			if (err != nil) != tt.expectErr {
				t.Fatalf("expected error %v, got %v", tt.expectErr, err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestWithTxNestedJoinsOuter(t *testing.T) {
	c, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE subscriptions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := c.Statement(ctx).Update("tenants").Set("plan", "basic").ExecContext(ctx); err != nil {
			return err
		}
		return c.WithTx(ctx, func(inner context.Context) error {
			_, err := c.Statement(inner).Update("subscriptions").Set("status", "active").ExecContext(inner)
			return err
		})
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAdvisoryXactLock(t *testing.T) {
	c, mock := newTestClient(t)

	if err := c.AdvisoryXactLock(context.Background(), "tenant:shop.example"); !errors.Is(err, ErrNoTransaction) {
		t.Fatalf("expected ErrNoTransaction outside a transaction, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("tenant:shop.example").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		return c.AdvisoryXactLock(ctx, "tenant:shop.example")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
