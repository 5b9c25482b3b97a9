// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"blogadmin/internal/cache"
	"blogadmin/internal/store"
)

// API groups the JSON handlers mounted under /api.
type API struct {
	store    *store.Store
	listings *cache.ListingCache
}

// NewAPI creates the JSON API handler group. listings may be nil.
func NewAPI(st *store.Store, listings *cache.ListingCache) *API {
	return &API{store: st, listings: listings}
}

type categoryRequest struct {
	Name string `json:"name"`
}

type postRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type deletedResponse struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

// Stats returns the number of categories and posts.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Stats())
}

// --- Categories ---

// ListCategories returns every category in creation order.
func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	a.cachedListing(w, r, cache.CategoriesKey, func() any {
		return a.store.ListCategories()
	})
}

// GetCategory returns a single category.
func (a *API) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", "category")
	if err != nil {
		writeError(w, r, err)
		return
	}
	cat, ok := a.store.GetCategory(id)
	if !ok {
		writeError(w, r, &store.NotFoundError{Resource: "Category", ID: id})
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// CreateCategory creates a category from {"name": "..."}.
func (a *API) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	cat, err := a.store.CreateCategory(req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("category created", "id", cat.ID, "name", cat.Name)
	a.listings.InvalidateAll(r.Context())
	writeJSON(w, http.StatusCreated, cat)
}

// DeleteCategory removes a category and its posts.
func (a *API) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", "category")
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := a.store.DeleteCategory(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, r, &store.NotFoundError{Resource: "Category", ID: id})
		return
	}

	slog.Info("category deleted", "id", id)
	a.listings.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, deletedResponse{ID: id, Deleted: true})
}

// --- Posts ---

// ListPosts returns the posts of one category in store order.
func (a *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", "category")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, ok := a.store.GetCategory(id); !ok {
		writeError(w, r, &store.NotFoundError{Resource: "Category", ID: id})
		return
	}

	key := func(version uint64) string { return cache.PostsKey(id, version) }
	a.cachedListing(w, r, key, func() any {
		return a.store.ListPostsByCategory(id)
	})
}

// CreatePost creates a post in the category named by the URL.
func (a *API) CreatePost(w http.ResponseWriter, r *http.Request) {
	categoryID, err := idParam(r, "id", "category")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req postRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := a.store.CreatePost(req.Title, req.Body, categoryID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("post created", "id", post.ID, "category_id", categoryID)
	a.listings.InvalidateAll(r.Context())
	writeJSON(w, http.StatusCreated, post)
}

// GetPost returns a single post.
func (a *API) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", "post")
	if err != nil {
		writeError(w, r, err)
		return
	}
	post, ok := a.store.GetPost(id)
	if !ok {
		writeError(w, r, &store.NotFoundError{Resource: "Post", ID: id})
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// UpdatePost replaces a post's title and body and returns the result.
func (a *API) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", "post")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req postRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := a.store.EditPost(id, req.Title, req.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !updated {
		writeError(w, r, &store.NotFoundError{Resource: "Post", ID: id})
		return
	}

	slog.Info("post updated", "id", id)
	a.listings.InvalidateAll(r.Context())

	post, ok := a.store.GetPost(id)
	if !ok {
		// Deleted concurrently between the edit and the read.
		writeError(w, r, &store.NotFoundError{Resource: "Post", ID: id})
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// DeletePost removes a post.
func (a *API) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", "post")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !a.store.DeletePost(id) {
		writeError(w, r, &store.NotFoundError{Resource: "Post", ID: id})
		return
	}

	slog.Info("post deleted", "id", id)
	a.listings.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, deletedResponse{ID: id, Deleted: true})
}

// cachedListing serves a listing from the cache when present, otherwise
// loads it, writes it, and stores the encoded data for later requests.
//
// The key carries the store version read before load. A listing loaded
// while a mutation commits is stored under the old version, which no later
// request asks for.
func (a *API) cachedListing(w http.ResponseWriter, r *http.Request, keyFor func(version uint64) string, load func() any) {
	key := keyFor(a.store.Version())
	if payload, ok := a.listings.Get(r.Context(), key); ok {
		writeJSON(w, http.StatusOK, json.RawMessage(payload))
		return
	}

	payload, err := json.Marshal(load())
	if err != nil {
		writeError(w, r, err)
		return
	}
	a.listings.Set(r.Context(), key, payload)
	writeJSON(w, http.StatusOK, json.RawMessage(payload))
}
