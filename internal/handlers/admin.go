// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the blog admin.
// Handlers are grouped by surface (HTML admin, JSON API) and receive
// their dependencies through the handler struct.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"blogadmin/internal/cache"
	"blogadmin/internal/models"
	"blogadmin/internal/render"
	"blogadmin/internal/store"
)

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer *render.Renderer
	store    *store.Store
	listings *cache.ListingCache
}

// NewAdmin creates a new Admin handler group. listings may be nil when the
// listing cache is disabled; mutations made here still invalidate it.
func NewAdmin(renderer *render.Renderer, st *store.Store, listings *cache.ListingCache) *Admin {
	return &Admin{
		renderer: renderer,
		store:    st,
		listings: listings,
	}
}

// Dashboard renders the admin dashboard with collection counts.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	a.renderDashboard(w, r, 0, "")
}

// --- Categories ---

// CategoryCreate handles the sidebar create-category form.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.renderDashboard(w, r, http.StatusBadRequest, "Invalid form data.")
		return
	}

	cat, err := a.store.CreateCategory(r.FormValue("name"))
	if err != nil {
		a.renderDashboard(w, r, a.errorStatus(r, err), a.errorMessage(err))
		return
	}

	slog.Info("category created", "id", cat.ID, "name", cat.Name)
	a.listings.InvalidateAll(r.Context())
	http.Redirect(w, r, categoryPostsURL(cat.ID), http.StatusSeeOther)
}

// CategoryDelete removes a category and every post filed under it.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", "category")
	if err != nil {
		a.renderDashboard(w, r, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := a.store.DeleteCategory(id)
	if err != nil {
		a.renderDashboard(w, r, a.errorStatus(r, err), a.errorMessage(err))
		return
	}
	if !deleted {
		nf := &store.NotFoundError{Resource: "Category", ID: id}
		a.renderDashboard(w, r, http.StatusNotFound, nf.Error())
		return
	}

	slog.Info("category deleted", "id", id)
	a.listings.InvalidateAll(r.Context())
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// --- Posts ---

// PostsList renders the post cards of one category.
func (a *Admin) PostsList(w http.ResponseWriter, r *http.Request) {
	cat, ok := a.categoryFromURL(w, r)
	if !ok {
		return
	}

	a.renderer.Page(w, r, "posts_list", &render.PageData{
		Title:      cat.Name,
		Section:    "category",
		CategoryID: cat.ID,
		Categories: a.store.ListCategories(),
		Data: map[string]any{
			"Category": cat,
			"Posts":    a.store.ListPostsByCategory(cat.ID),
		},
	})
}

// PostNew renders the new post form for a category.
func (a *Admin) PostNew(w http.ResponseWriter, r *http.Request) {
	cat, ok := a.categoryFromURL(w, r)
	if !ok {
		return
	}
	a.renderPostForm(w, r, postForm{Category: cat, Action: categoryPostsURL(cat.ID)}, 0, "")
}

// PostCreate handles the new post form submission.
func (a *Admin) PostCreate(w http.ResponseWriter, r *http.Request) {
	cat, ok := a.categoryFromURL(w, r)
	if !ok {
		return
	}

	form := postForm{
		Category: cat,
		Action:   categoryPostsURL(cat.ID),
		Title:    r.FormValue("title"),
		Body:     r.FormValue("body"),
	}

	post, err := a.store.CreatePost(form.Title, form.Body, cat.ID)
	if err != nil {
		// The category may have been deleted since the lookup above.
		if errors.Is(err, store.ErrNotFound) {
			a.renderDashboard(w, r, http.StatusNotFound, err.Error())
			return
		}
		a.renderPostForm(w, r, form, a.errorStatus(r, err), a.errorMessage(err))
		return
	}

	slog.Info("post created", "id", post.ID, "category_id", cat.ID)
	a.listings.InvalidateAll(r.Context())
	http.Redirect(w, r, categoryPostsURL(cat.ID), http.StatusSeeOther)
}

// PostEdit renders the edit form for an existing post.
func (a *Admin) PostEdit(w http.ResponseWriter, r *http.Request) {
	post, ok := a.postFromURL(w, r)
	if !ok {
		return
	}
	a.renderPostForm(w, r, postForm{
		Category: post.Category,
		Action:   postURL(post.ID),
		Title:    post.Title,
		Body:     post.Body,
		IsEdit:   true,
	}, 0, "")
}

// PostUpdate handles the edit form submission. Only title and body change.
func (a *Admin) PostUpdate(w http.ResponseWriter, r *http.Request) {
	post, ok := a.postFromURL(w, r)
	if !ok {
		return
	}

	form := postForm{
		Category: post.Category,
		Action:   postURL(post.ID),
		Title:    r.FormValue("title"),
		Body:     r.FormValue("body"),
		IsEdit:   true,
	}

	updated, err := a.store.EditPost(post.ID, form.Title, form.Body)
	if err != nil {
		a.renderPostForm(w, r, form, a.errorStatus(r, err), a.errorMessage(err))
		return
	}
	if !updated {
		nf := &store.NotFoundError{Resource: "Post", ID: post.ID}
		a.renderDashboard(w, r, http.StatusNotFound, nf.Error())
		return
	}

	slog.Info("post updated", "id", post.ID)
	a.listings.InvalidateAll(r.Context())
	http.Redirect(w, r, categoryPostsURL(post.Category.ID), http.StatusSeeOther)
}

// PostDelete removes a post and returns to its category listing.
func (a *Admin) PostDelete(w http.ResponseWriter, r *http.Request) {
	post, ok := a.postFromURL(w, r)
	if !ok {
		return
	}

	if !a.store.DeletePost(post.ID) {
		nf := &store.NotFoundError{Resource: "Post", ID: post.ID}
		a.renderDashboard(w, r, http.StatusNotFound, nf.Error())
		return
	}

	slog.Info("post deleted", "id", post.ID)
	a.listings.InvalidateAll(r.Context())
	http.Redirect(w, r, categoryPostsURL(post.Category.ID), http.StatusSeeOther)
}

// --- Shared helpers ---

// postForm is the data behind the post_form template.
type postForm struct {
	Category models.Category
	Action   string
	Title    string
	Body     string
	IsEdit   bool
}

// renderPostForm renders the post form, optionally with an error and status.
func (a *Admin) renderPostForm(w http.ResponseWriter, r *http.Request, form postForm, status int, errMsg string) {
	title := "New Post"
	if form.IsEdit {
		title = "Edit Post"
	}
	a.renderer.Page(w, r, "post_form", &render.PageData{
		Title:      title,
		Section:    "category",
		CategoryID: form.Category.ID,
		Categories: a.store.ListCategories(),
		Error:      errMsg,
		Status:     status,
		Data: map[string]any{
			"Category": form.Category,
			"Action":   form.Action,
			"Title":    form.Title,
			"Body":     form.Body,
			"IsEdit":   form.IsEdit,
		},
	})
}

// renderDashboard renders the dashboard, optionally with an error and status.
func (a *Admin) renderDashboard(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:      "Dashboard",
		Section:    "dashboard",
		Categories: a.store.ListCategories(),
		Error:      errMsg,
		Status:     status,
		Data:       map[string]any{"Stats": a.store.Stats()},
	})
}

// categoryFromURL resolves the {id} URL parameter to a category, rendering
// a 400 or 404 page and returning false when it cannot.
func (a *Admin) categoryFromURL(w http.ResponseWriter, r *http.Request) (models.Category, bool) {
	id, err := idParam(r, "id", "category")
	if err != nil {
		a.renderDashboard(w, r, http.StatusBadRequest, err.Error())
		return models.Category{}, false
	}
	cat, ok := a.store.GetCategory(id)
	if !ok {
		nf := &store.NotFoundError{Resource: "Category", ID: id}
		a.renderDashboard(w, r, http.StatusNotFound, nf.Error())
		return models.Category{}, false
	}
	return cat, true
}

// postFromURL resolves the {id} URL parameter to a post, rendering a 400 or
// 404 page and returning false when it cannot.
func (a *Admin) postFromURL(w http.ResponseWriter, r *http.Request) (models.Post, bool) {
	id, err := idParam(r, "id", "post")
	if err != nil {
		a.renderDashboard(w, r, http.StatusBadRequest, err.Error())
		return models.Post{}, false
	}
	post, ok := a.store.GetPost(id)
	if !ok {
		nf := &store.NotFoundError{Resource: "Post", ID: id}
		a.renderDashboard(w, r, http.StatusNotFound, nf.Error())
		return models.Post{}, false
	}
	return post, true
}

// errorStatus maps a store error to a status, logging unexpected ones.
func (a *Admin) errorStatus(r *http.Request, err error) int {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("admin request failed", "error", err, "method", r.Method, "path", r.URL.Path)
	}
	return status
}

// errorMessage returns the user-facing text for a store error.
func (a *Admin) errorMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "Something went wrong. Please try again."
	}
	return err.Error()
}
