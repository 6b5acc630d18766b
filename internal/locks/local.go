// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locks

import (
	"context"
	"sync"
	"time"
)

var _ LockerInterface = (*LocalLocker)(nil)

// LocalLocker is the single replica fallback when Redis is not configured.
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]localEntry
	seq   uint64
	clock func() time.Time
}

type localEntry struct {
	id      uint64
	expires time.Time
}

type localLock struct {
	locker *LocalLocker
	key    string
	id     uint64
}

func (l *LocalLocker) Acquire(_ context.Context, key string, ttl time.Duration) (LockInterface, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if e, ok := l.held[key]; ok && now.Before(e.expires) {
		return nil, ErrNotAcquired
	}

	l.seq++
	l.held[key] = localEntry{id: l.seq, expires: now.Add(ttl)}

	return &localLock{locker: l, key: key, id: l.seq}, nil
}

func (l *localLock) Release(context.Context) error {
	l.locker.mu.Lock()
	defer l.locker.mu.Unlock()

	if e, ok := l.locker.held[l.key]; ok && e.id == l.id {
		delete(l.locker.held, l.key)
	}

	return nil
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]localEntry),
		clock: time.Now,
	}
}
