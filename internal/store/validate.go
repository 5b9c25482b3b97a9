// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"strings"
	"unicode/utf8"
)

// Validation limits, counted in characters (runes).
const (
	MaxCategoryNameLen = 50
	MaxTitleLen        = 200
	MaxBodyLen         = 5_000
)

// validateCategoryName trims name and checks it against the category rules.
func validateCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "Category name is required.")
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLen {
		return "", invalid("name", "Category name is too long (max 50 characters).")
	}
	return name, nil
}

// validatePost trims title and body and checks them against the post rules.
func validatePost(title, body string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", invalid("title", "Title is required.")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return "", "", invalid("title", "Title is too long (max 200 characters).")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "", "", invalid("body", "Body is required.")
	}
	if utf8.RuneCountInString(body) > MaxBodyLen {
		return "", "", invalid("body", "Body is too long (max 5,000 characters).")
	}
	return title, body, nil
}

// validateID rejects non-positive ids. label names the entity in the message.
func validateID(field, label string, id int) error {
	if id <= 0 {
		return invalid(field, "Invalid "+label+" ID.")
	}
	return nil
}
