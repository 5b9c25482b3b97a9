// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"
)

// Error kinds returned by Store operations. Match them with errors.Is;
// the concrete types below carry the user-facing message.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found.", e.Resource, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateError reports a name collision.
type DuplicateError struct {
	Resource string
	Name     string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("A %s named %q already exists.", e.Resource, e.Name)
}

// Is makes errors.Is(err, ErrDuplicate) succeed.
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
