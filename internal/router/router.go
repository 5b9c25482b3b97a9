// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// blog admin. It organizes routes into the HTML admin and the JSON API,
// each with its own middleware stack.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"blogadmin/internal/handlers"
	"blogadmin/internal/middleware"
	"blogadmin/web"
)

// Options configures the middleware that depends on the deployment.
type Options struct {
	SecureCookies bool                     // Secure flag on the CSRF cookie
	CORSOrigins   []string                 // Origins allowed to call /api
	WriteLimiter  *middleware.WriteLimiter // Per-client mutation limit; nil disables
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(admin *handlers.Admin, api *handlers.API, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(opts.WriteLimiter.Middleware)

	r.Get("/health", healthHandler)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin", http.StatusFound)
	})

	static, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// Admin HTML routes, protected by CSRF. Browser forms can only POST,
	// so every DELETE/PUT also has a POST form route.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(opts.SecureCookies))

		r.Get("/", admin.Dashboard)

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", admin.CategoryCreate)
			r.Post("/{id}/delete", admin.CategoryDelete)
			r.Delete("/{id}", admin.CategoryDelete)

			r.Get("/{id}/posts", admin.PostsList)
			r.Get("/{id}/posts/new", admin.PostNew)
			r.Post("/{id}/posts", admin.PostCreate)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/{id}/edit", admin.PostEdit)
			r.Post("/{id}", admin.PostUpdate)
			r.Put("/{id}", admin.PostUpdate)
			r.Post("/{id}/delete", admin.PostDelete)
			r.Delete("/{id}", admin.PostDelete)
		})
	})

	// JSON API, open to the configured origins.
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler)

		r.Get("/stats", api.Stats)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", api.ListCategories)
			r.Post("/", api.CreateCategory)
			r.Get("/{id}", api.GetCategory)
			r.Delete("/{id}", api.DeleteCategory)
			r.Get("/{id}/posts", api.ListPosts)
			r.Post("/{id}/posts", api.CreatePost)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/{id}", api.GetPost)
			r.Put("/{id}", api.UpdatePost)
			r.Delete("/{id}", api.DeletePost)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
