// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store owns the in-memory category and post collections and every
// operation that reads or mutates them. It enforces referential integrity
// between posts and categories, validates all input, and allocates ids that
// are never reused for the lifetime of a Store.
//
// A Store is safe for concurrent use: every operation runs under a single
// lock, so a mutation is observed either completely or not at all.
package store

import (
	"slices"
	"sync"
	"time"

	"blogadmin/internal/models"
)

// Store holds categories and posts in insertion order.
type Store struct {
	mu sync.RWMutex

	categories []models.Category
	posts      []models.Post

	nextCategoryID int
	nextPostID     int

	// version counts committed mutations.
	version uint64

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp post creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty Store. Use Seed to load fixture data.
func New(opts ...Option) *Store {
	s := &Store{
		categories:     []models.Category{},
		posts:          []models.Post{},
		nextCategoryID: 1,
		nextPostID:     1,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats holds collection sizes for the dashboard.
type Stats struct {
	Categories int `json:"categories"`
	Posts      int `json:"posts"`
}

// Stats returns the current number of categories and posts.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{Categories: len(s.categories), Posts: len(s.posts)}
}

// Version returns a counter that increases with every successful mutation.
// Two reads returning the same version saw the same contents.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// categoryIndex returns the slice index of the category with id, or -1.
// Callers must hold s.mu.
func (s *Store) categoryIndex(id int) int {
	return slices.IndexFunc(s.categories, func(c models.Category) bool { return c.ID == id })
}

// postIndex returns the slice index of the post with id, or -1.
// Callers must hold s.mu.
func (s *Store) postIndex(id int) int {
	return slices.IndexFunc(s.posts, func(p models.Post) bool { return p.ID == id })
}
