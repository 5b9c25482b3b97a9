// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "context"

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// RequestIDKey is the context key for the per-request id.
	RequestIDKey contextKey = "request_id"

	// CSRFTokenKey is the context key for the current CSRF token.
	CSRFTokenKey contextKey = "csrf_token"
)

// RequestIDFromCtx returns the request id set by Logger, or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// CSRFTokenFromCtx returns the CSRF token set by the CSRF middleware, or "".
func CSRFTokenFromCtx(ctx context.Context) string {
	tok, _ := ctx.Value(CSRFTokenKey).(string)
	return tok
}
