// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"slices"

	"blogadmin/internal/models"
)

// ListPostsByCategory returns the posts filed under categoryID in store
// order. The result is empty, never nil, when nothing matches.
func (s *Store) ListPostsByCategory(categoryID int) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.Post{}
	for _, p := range s.posts {
		if p.Category.ID == categoryID {
			items = append(items, p)
		}
	}
	return items
}

// GetPost retrieves a post by ID.
func (s *Store) GetPost(id int) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.postIndex(id)
	if i < 0 {
		return models.Post{}, false
	}
	return s.posts[i], true
}

// CreatePost validates the input, snapshots the target category into a new
// post dated today, and appends it.
func (s *Store) CreatePost(title, body string, categoryID int) (models.Post, error) {
	title, body, err := validatePost(title, body)
	if err != nil {
		return models.Post{}, err
	}
	if err := validateID("category_id", "category", categoryID); err != nil {
		return models.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndex(categoryID)
	if i < 0 {
		return models.Post{}, &NotFoundError{Resource: "Category", ID: categoryID}
	}

	p := models.Post{
		ID:          s.nextPostID,
		Title:       title,
		Body:        body,
		CreatedDate: models.DateOf(s.now()),
		Category:    s.categories[i],
	}
	s.nextPostID++
	s.posts = append(s.posts, p)
	s.version++
	return p, nil
}

// EditPost replaces the title and body of an existing post. The id,
// creation date and category snapshot are left untouched. It returns false
// when no post has that id.
func (s *Store) EditPost(id int, title, body string) (bool, error) {
	title, body, err := validatePost(title, body)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i < 0 {
		return false, nil
	}
	s.posts[i].Title = title
	s.posts[i].Body = body
	s.version++
	return true, nil
}

// DeletePost removes a post. It returns false when no post has that id.
func (s *Store) DeletePost(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i < 0 {
		return false
	}
	s.posts = slices.Delete(s.posts, i, i+1)
	s.version++
	return true
}
