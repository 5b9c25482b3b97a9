// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// The store is in memory; Valkey-backed tests skip when Valkey is unavailable.
package handlers

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"blogadmin/internal/cache"
	"blogadmin/internal/fixtures"
	"blogadmin/internal/render"
	"blogadmin/internal/store"
)

// fixedNow is the clock used by test stores.
var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

// testEnv holds all dependencies for handler tests.
type testEnv struct {
	Store    *store.Store
	Renderer *render.Renderer
	Listings *cache.ListingCache
	Admin    *Admin
	API      *API
}

// newTestEnv creates a handler environment over a store seeded with the
// default fixtures. listings may be nil.
func newTestEnv(t *testing.T, listings *cache.ListingCache) *testEnv {
	t.Helper()

	st := store.New(store.WithClock(func() time.Time { return fixedNow }))
	set := fixtures.Default()
	if err := st.Seed(set.Categories, set.Posts); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	return &testEnv{
		Store:    st,
		Renderer: renderer,
		Listings: listings,
		Admin:    NewAdmin(renderer, st, listings),
		API:      NewAPI(st, listings),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testListingCache returns a listing cache on Valkey DB 15 in a fresh
// namespace. Skips if Valkey is unavailable.
func testListingCache(t *testing.T) *cache.ListingCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	lc := cache.NewListingCache(client, time.Minute, "test-"+uuid.NewString())
	t.Cleanup(func() {
		lc.InvalidateAll(context.Background())
		client.Close()
	})
	return lc
}

// memoryListingCache returns a listing cache backed by an in-process
// miniredis server, for tests that need a cache regardless of Valkey.
func memoryListingCache(t *testing.T) *cache.ListingCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewListingCache(client, time.Minute, "test-"+uuid.NewString())
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// formBody encodes form values for a POST request body.
func formBody(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}
