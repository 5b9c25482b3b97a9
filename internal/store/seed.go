// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"
	"strings"

	"blogadmin/internal/models"
)

// ErrAlreadySeeded is returned by Seed when the store already holds data.
var ErrAlreadySeeded = errors.New("store already contains data")

// Seed loads pre-existing categories and posts into an empty store and
// positions the id allocators above the highest loaded ids. Every record is
// checked with the same rules as the live operations; in addition ids must be
// unique and every post must reference a loaded category. Each post's
// category snapshot is taken from the loaded category with that id.
//
// Seed is all-or-nothing: on error the store is left empty.
func (s *Store) Seed(categories []models.Category, posts []models.Post) error {
	cats := make([]models.Category, 0, len(categories))
	byID := make(map[int]models.Category, len(categories))
	names := make(map[string]bool, len(categories))
	maxCategoryID := 0

	for _, c := range categories {
		name, err := validateCategoryName(c.Name)
		if err != nil {
			return fmt.Errorf("seed category %d: %w", c.ID, err)
		}
		if err := validateID("category_id", "category", c.ID); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		if _, dup := byID[c.ID]; dup {
			return fmt.Errorf("seed category %d: duplicate id", c.ID)
		}
		key := strings.ToLower(name)
		if names[key] {
			return fmt.Errorf("seed category %d: %w", c.ID, &DuplicateError{Resource: "category", Name: name})
		}
		names[key] = true

		c.Name = name
		byID[c.ID] = c
		cats = append(cats, c)
		maxCategoryID = max(maxCategoryID, c.ID)
	}

	items := make([]models.Post, 0, len(posts))
	seen := make(map[int]bool, len(posts))
	maxPostID := 0

	for _, p := range posts {
		if err := validateID("post_id", "post", p.ID); err != nil {
			return fmt.Errorf("seed post %q: %w", p.Title, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("seed post %d: duplicate id", p.ID)
		}
		seen[p.ID] = true

		title, body, err := validatePost(p.Title, p.Body)
		if err != nil {
			return fmt.Errorf("seed post %d: %w", p.ID, err)
		}
		if p.CreatedDate.IsZero() {
			return fmt.Errorf("seed post %d: %w", p.ID, invalid("created_date", "Created date is required."))
		}
		c, ok := byID[p.Category.ID]
		if !ok {
			return fmt.Errorf("seed post %d: %w", p.ID, &NotFoundError{Resource: "Category", ID: p.Category.ID})
		}

		p.Title, p.Body, p.Category = title, body, c
		items = append(items, p)
		maxPostID = max(maxPostID, p.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.categories) > 0 || len(s.posts) > 0 {
		return ErrAlreadySeeded
	}

	s.categories = cats
	s.posts = items
	s.nextCategoryID = max(s.nextCategoryID, maxCategoryID+1)
	s.nextPostID = max(s.nextPostID, maxPostID+1)
	s.version++
	return nil
}
