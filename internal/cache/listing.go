// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// keyPrefix is the Valkey key prefix for cached listings.
	keyPrefix = "listing:"

	// DefaultTTL is how long a cached listing stays in Valkey.
	DefaultTTL = 5 * time.Minute
)

// ListingCache stores encoded API listing responses in Valkey.
//
// Keys are scoped to a namespace chosen at startup. The store lives in
// process memory, so two processes sharing one Valkey must never read each
// other's listings.
//
// A nil *ListingCache is valid and behaves as an always-missing cache.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewListingCache creates a listing cache backed by the given Valkey client.
func NewListingCache(client *redis.Client, ttl time.Duration, namespace string) *ListingCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ListingCache{client: client, ttl: ttl, prefix: keyPrefix + namespace + ":"}
}

// CategoriesKey returns the cache key for the category listing at a store
// version.
func CategoriesKey(version uint64) string {
	return versionPrefix(version) + "categories"
}

// PostsKey returns the cache key for the post listing of one category at a
// store version.
func PostsKey(categoryID int, version uint64) string {
	return versionPrefix(version) + "category:" + strconv.Itoa(categoryID) + ":posts"
}

func versionPrefix(version uint64) string {
	return "v" + strconv.FormatUint(version, 10) + ":"
}

// Get returns the cached payload for key.
func (lc *ListingCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if lc == nil {
		return nil, false
	}
	val, err := lc.client.Get(ctx, lc.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("listing cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("listing cache hit", "key", key)
	return val, true
}

// Set stores payload under key with the configured TTL.
func (lc *ListingCache) Set(ctx context.Context, key string, payload []byte) {
	if lc == nil {
		return
	}
	if err := lc.client.Set(ctx, lc.prefix+key, payload, lc.ttl).Err(); err != nil {
		slog.Warn("listing cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every listing in this cache's namespace.
// Handlers call it after every successful store mutation.
func (lc *ListingCache) InvalidateAll(ctx context.Context) {
	if lc == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, next, err := lc.client.Scan(ctx, cursor, lc.prefix+"*", 100).Result()
		if err != nil {
			slog.Warn("listing cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := lc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("listing cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	slog.Debug("listing cache cleared", "deleted", deleted)
}
