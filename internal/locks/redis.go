// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package locks provides short lived mutual exclusion keyed by string, shared
// across replicas through Redis or local to the process.
package locks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/tracing"
)

const keyPrefix = "lock:"

var (
	ErrNotAcquired = errors.New("lock is held by another caller")

	// only the holder's token may delete the key
	releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

	_ LockerInterface = (*RedisLocker)(nil)
)

type RedisLocker struct {
	client redis.UniversalClient

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

type redisLock struct {
	locker *RedisLocker
	key    string
	token  string
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (LockInterface, error) {
	ctx, span := l.tracer.Start(ctx, "locks.RedisLocker.Acquire")
	defer span.End()

	token := uuid.NewString()
	k := keyPrefix + key

	ok, err := l.client.SetNX(ctx, k, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	if !ok {
		return nil, ErrNotAcquired
	}

	return &redisLock{locker: l, key: k, token: token}, nil
}

func (l *redisLock) Release(ctx context.Context) error {
	ctx, span := l.locker.tracer.Start(ctx, "locks.redisLock.Release")
	defer span.End()

	n, err := releaseScript.Run(ctx, l.locker.client, []string{l.key}, l.token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.key, err)
	}

	if n == 0 {
		l.locker.logger.Warnf("lock %s expired before release", l.key)
	}

	return nil
}

func NewRedisLocker(client redis.UniversalClient, tracer tracing.TracingInterface, logger logging.LoggerInterface) *RedisLocker {
	l := new(RedisLocker)

	l.client = client
	l.tracer = tracer
	l.logger = logger

	return l
}
