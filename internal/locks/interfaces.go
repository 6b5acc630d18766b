// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locks

import (
	"context"
	"time"
)

type LockerInterface interface {
	// Acquire returns ErrNotAcquired when key is held by someone else.
	Acquire(ctx context.Context, key string, ttl time.Duration) (LockInterface, error)
}

type LockInterface interface {
	Release(ctx context.Context) error
}
