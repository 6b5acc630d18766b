// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tenantRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestTTLCache(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewTTLCache[*tenantRef]()
	c.clock = func() time.Time { return now }
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "example.store")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "example.store", &tenantRef{ID: "t1"}, time.Minute))

	v, ok, err := c.Get(ctx, "example.store")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", v.ID)

	now = now.Add(time.Minute)

	_, ok, err = c.Get(ctx, "example.store")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, c.entries)

	require.NoError(t, c.Set(ctx, "a", &tenantRef{ID: "t2"}, time.Hour))
	require.NoError(t, c.Delete(ctx, "a"))
	_, ok, _ = c.Get(ctx, "a")
	assert.False(t, ok)
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisCache[tenantRef](client, "tenant_host")
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "example.store")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "example.store", tenantRef{ID: "t1", Name: "Luna"}, time.Minute))
	assert.True(t, mr.Exists("tenant_host:example.store"))

	v, ok, err := c.Get(ctx, "example.store")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, tenantRef{ID: "t1", Name: "Luna"}, v)

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, "example.store")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "x", tenantRef{ID: "t2"}, time.Minute))
	require.NoError(t, c.Delete(ctx, "x"))
	assert.False(t, mr.Exists("tenant_host:x"))
}

func TestRedisCacheCorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, mr.Set("tenant_host:bad", "{not json"))

	_, ok, err := NewRedisCache[tenantRef](client, "tenant_host").Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.False(t, ok)
}
