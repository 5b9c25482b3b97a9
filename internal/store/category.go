// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"slices"
	"strings"

	"blogadmin/internal/models"
)

// ListCategories returns all categories in creation order.
func (s *Store) ListCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// GetCategory retrieves a category by ID.
func (s *Store) GetCategory(id int) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.categoryIndex(id)
	if i < 0 {
		return models.Category{}, false
	}
	return s.categories[i], true
}

// CreateCategory validates name, appends a new category and returns it.
// Names are trimmed and must be unique regardless of case.
func (s *Store) CreateCategory(name string) (models.Category, error) {
	name, err := validateCategoryName(name)
	if err != nil {
		return models.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasCategoryName(name) {
		return models.Category{}, &DuplicateError{Resource: "category", Name: name}
	}

	c := models.Category{ID: s.nextCategoryID, Name: name}
	s.nextCategoryID++
	s.categories = append(s.categories, c)
	s.version++
	return c, nil
}

// DeleteCategory removes a category together with every post filed under it.
// It returns false when no category has that id.
func (s *Store) DeleteCategory(id int) (bool, error) {
	if err := validateID("category_id", "category", id); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return false, nil
	}
	s.categories = slices.Delete(s.categories, i, i+1)
	s.posts = slices.DeleteFunc(s.posts, func(p models.Post) bool { return p.Category.ID == id })
	s.version++
	return true, nil
}

// hasCategoryName reports whether a category with name exists, ignoring case.
// Callers must hold s.mu.
func (s *Store) hasCategoryName(name string) bool {
	return slices.ContainsFunc(s.categories, func(c models.Category) bool {
		return strings.EqualFold(c.Name, name)
	})
}
