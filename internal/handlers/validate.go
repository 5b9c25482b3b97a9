// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"blogadmin/internal/store"
)

// maxJSONBody caps API request bodies. The largest valid post is a
// 200-character title and a 5,000-character body.
const maxJSONBody = 64 << 10

// idParam parses the positive integer URL parameter key. label names the
// entity in the error message ("category", "post").
func idParam(r *http.Request, key, label string) (int, error) {
	return parseID(chi.URLParam(r, key), key, label)
}

// parseID parses a positive integer id. Malformed input yields a
// *store.ValidationError so callers map it like any other validation failure.
func parseID(raw, field, label string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, &store.ValidationError{Field: field, Message: "Invalid " + label + " ID."}
	}
	return id, nil
}

// decodeJSON reads a size-limited JSON request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &store.ValidationError{Field: "body", Message: "Invalid request body."}
	}
	return nil
}

// categoryPostsURL is where HTML mutations on a category's posts redirect to.
func categoryPostsURL(categoryID int) string {
	return fmt.Sprintf("/admin/categories/%d/posts", categoryID)
}

// postURL is the edit form's submit target for a post.
func postURL(postID int) string {
	return fmt.Sprintf("/admin/posts/%d", postID)
}
