// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// limiterEntry tracks mutation timestamps for a single client.
type limiterEntry struct {
	mu         sync.Mutex
	timestamps []time.Time
}

// WriteLimiter caps state-changing requests (POST, PUT, PATCH, DELETE) per
// client IP using a sliding window. Reads are never limited.
type WriteLimiter struct {
	mu      sync.RWMutex
	clients map[string]*limiterEntry
	limit   int           // max mutations per window
	window  time.Duration // sliding window duration
	now     func() time.Time
}

// NewWriteLimiter creates a limiter that allows limit mutations per window.
// A background goroutine drops idle clients until ctx is cancelled.
func NewWriteLimiter(ctx context.Context, limit int, window time.Duration) *WriteLimiter {
	wl := &WriteLimiter{
		clients: make(map[string]*limiterEntry),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}

	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				wl.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()

	return wl
}

// allow records a mutation for key and reports whether it is within the
// limit. When it is not, it also returns how long until a slot frees up.
func (wl *WriteLimiter) allow(key string) (bool, time.Duration) {
	wl.mu.RLock()
	entry, exists := wl.clients[key]
	wl.mu.RUnlock()

	if !exists {
		wl.mu.Lock()
		// Double-check after acquiring write lock.
		entry, exists = wl.clients[key]
		if !exists {
			entry = &limiterEntry{}
			wl.clients[key] = entry
		}
		wl.mu.Unlock()
	}

	now := wl.now()
	cutoff := now.Add(-wl.window)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	valid := entry.timestamps[:0]
	for _, ts := range entry.timestamps {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	entry.timestamps = valid

	if len(entry.timestamps) >= wl.limit {
		return false, entry.timestamps[0].Sub(cutoff)
	}

	entry.timestamps = append(entry.timestamps, now)
	return true, 0
}

// cleanup removes clients with no mutation inside the window.
func (wl *WriteLimiter) cleanup() {
	cutoff := wl.now().Add(-wl.window)

	wl.mu.Lock()
	defer wl.mu.Unlock()

	for key, entry := range wl.clients {
		entry.mu.Lock()
		idle := len(entry.timestamps) == 0 || !entry.timestamps[len(entry.timestamps)-1].After(cutoff)
		entry.mu.Unlock()

		if idle {
			delete(wl.clients, key)
		}
	}
}

// Middleware rejects mutations over the limit with 429 Too Many Requests
// and a Retry-After header. A nil *WriteLimiter lets everything through.
func (wl *WriteLimiter) Middleware(next http.Handler) http.Handler {
	if wl == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		if ok, wait := wl.allow(clientIP(r)); !ok {
			secs := int(wait.Round(time.Second) / time.Second)
			w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of the connection's remote address.
// Forwarding headers are ignored: they are client-controlled.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
