// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package cache holds read-through caches with a per entry TTL, kept in
// process memory or in Redis.
package cache

import (
	"context"
	"sync"
	"time"
)

var _ CacheInterface[string] = (*TTLCache[string])(nil)

type entry[V any] struct {
	value   V
	expires time.Time
}

// TTLCache is an in-memory cache, expired entries are dropped on read.
type TTLCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	clock   func() time.Time
}

func (c *TTLCache[V]) Get(_ context.Context, key string) (V, bool, error) {
	var zero V

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return zero, false, nil
	}

	if !c.clock().Before(e.expires) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.expires.Equal(e.expires) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false, nil
	}

	return e.value, true, nil
}

func (c *TTLCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, expires: c.clock().Add(ttl)}
	return nil
}

func (c *TTLCache[V]) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

func NewTTLCache[V any]() *TTLCache[V] {
	return &TTLCache[V]{
		entries: make(map[string]entry[V]),
		clock:   time.Now,
	}
}
