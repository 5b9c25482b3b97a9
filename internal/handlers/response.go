// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blogadmin/internal/store"
)

// apiResponse is the envelope every /api response is wrapped in.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// writeJSON sends a successful envelope with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(apiResponse{Success: true, Data: data}); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeError sends a failed envelope. Store errors keep their message and
// map to a status via statusFor; anything else is logged and reported as 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("api request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
		msg = "Internal server error."
	}
	writeErrorMessage(w, status, msg)
}

// writeErrorMessage sends a failed envelope with an explicit status.
func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(apiResponse{Success: false, Error: message}); err != nil {
		slog.Error("encode error response failed", "error", err)
	}
}

// statusFor maps store error kinds to HTTP status codes. It checks the
// whole error chain, so wrapped errors match too.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
