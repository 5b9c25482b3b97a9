// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, keyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testCache returns a listing cache in a fresh namespace.
func testCache(t *testing.T, client *redis.Client) *ListingCache {
	t.Helper()
	return NewListingCache(client, time.Minute, "test-"+uuid.NewString())
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(context.Background(), host, port, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestListingCacheSetAndGet(t *testing.T) {
	lc := testCache(t, testValkeyClient(t))
	ctx := context.Background()

	data, ok := lc.Get(ctx, CategoriesKey(1))
	if ok || data != nil {
		t.Error("expected cache miss")
	}

	payload := []byte(`{"success":true,"data":[]}`)
	lc.Set(ctx, CategoriesKey(1), payload)

	data, ok = lc.Get(ctx, CategoriesKey(1))
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != string(payload) {
		t.Errorf("data mismatch: got %q, want %q", data, payload)
	}
}

func TestListingCacheInvalidateAll(t *testing.T) {
	lc := testCache(t, testValkeyClient(t))
	ctx := context.Background()

	keys := []string{CategoriesKey(1), PostsKey(1, 1), PostsKey(2, 1)}
	for _, k := range keys {
		lc.Set(ctx, k, []byte("x"))
	}

	lc.InvalidateAll(ctx)

	for _, k := range keys {
		if _, ok := lc.Get(ctx, k); ok {
			t.Errorf("expected miss for %q after InvalidateAll", k)
		}
	}
}

func TestListingCacheNamespacesAreIsolated(t *testing.T) {
	client := testValkeyClient(t)
	a := testCache(t, client)
	b := testCache(t, client)
	ctx := context.Background()

	a.Set(ctx, CategoriesKey(1), []byte("from a"))
	if _, ok := b.Get(ctx, CategoriesKey(1)); ok {
		t.Error("namespace b saw namespace a's entry")
	}

	b.Set(ctx, CategoriesKey(1), []byte("from b"))
	b.InvalidateAll(ctx)
	if _, ok := a.Get(ctx, CategoriesKey(1)); !ok {
		t.Error("invalidating b removed a's entry")
	}
}

func TestNilListingCache(t *testing.T) {
	var lc *ListingCache
	ctx := context.Background()

	lc.Set(ctx, CategoriesKey(1), []byte("ignored"))
	lc.InvalidateAll(ctx)
	if _, ok := lc.Get(ctx, CategoriesKey(1)); ok {
		t.Error("nil cache reported a hit")
	}
}

func TestKeys(t *testing.T) {
	if got := CategoriesKey(3); got != "v3:categories" {
		t.Errorf("CategoriesKey(3): got %q", got)
	}
	if got := PostsKey(12, 7); got != "v7:category:12:posts" {
		t.Errorf("PostsKey(12, 7): got %q", got)
	}
	if CategoriesKey(1) == CategoriesKey(2) {
		t.Error("keys for different versions collide")
	}
}

func TestNewListingCacheDefaultTTL(t *testing.T) {
	lc := NewListingCache(nil, 0, "ns")
	if lc.ttl != DefaultTTL {
		t.Errorf("expected DefaultTTL (%v), got %v", DefaultTTL, lc.ttl)
	}
	if lc.prefix != "listing:ns:" {
		t.Errorf("prefix: got %q", lc.prefix)
	}
}
