// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// formRequest builds a form-encoded request, optionally carrying a chi id param.
func formRequest(method, target, id string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, formBody(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if id != "" {
		req = withChiURLParam(req, "id", id)
	}
	return req
}

func getRequest(target, id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if id != "" {
		req = withChiURLParam(req, "id", id)
	}
	return req
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t, nil)
	rr := httptest.NewRecorder()

	env.Admin.Dashboard(rr, getRequest("/admin", ""))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{"Technology", "Health", "Lifestyle", `<div class="value">9</div>`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestCategoryCreate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStatus int
		wantLoc    string
		wantBody   string
	}{
		{"created", "  Travel  ", http.StatusSeeOther, "/admin/categories/4/posts", ""},
		{"empty", "   ", http.StatusBadRequest, "", "Category name is required."},
		{"too long", strings.Repeat("x", 51), http.StatusBadRequest, "", "Category name is too long (max 50 characters)."},
		{"duplicate", "technology", http.StatusConflict, "", "A category named &#34;technology&#34; already exists."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			rr := httptest.NewRecorder()

			env.Admin.CategoryCreate(rr, formRequest(http.MethodPost, "/admin/categories", "", url.Values{"name": {tt.input}}))

			if rr.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantLoc != "" {
				if loc := rr.Header().Get("Location"); loc != tt.wantLoc {
					t.Errorf("Location: got %q, want %q", loc, tt.wantLoc)
				}
				if _, ok := env.Store.GetCategory(4); !ok {
					t.Error("category 4 not created")
				}
			}
			if tt.wantBody != "" && !strings.Contains(rr.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}
		})
	}
}

func TestCategoryDelete(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantBody   string
	}{
		{"deleted", "2", http.StatusSeeOther, ""},
		{"missing", "999", http.StatusNotFound, "Category 999 not found."},
		{"zero", "0", http.StatusBadRequest, "Invalid category ID."},
		{"not a number", "abc", http.StatusBadRequest, "Invalid category ID."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			rr := httptest.NewRecorder()

			env.Admin.CategoryDelete(rr, formRequest(http.MethodPost, "/admin/categories/"+tt.id+"/delete", tt.id, nil))

			if rr.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(rr.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}
		})
	}
}

func TestCategoryDelete_CascadesPosts(t *testing.T) {
	env := newTestEnv(t, nil)
	rr := httptest.NewRecorder()

	env.Admin.CategoryDelete(rr, formRequest(http.MethodPost, "/admin/categories/2/delete", "2", nil))

	if loc := rr.Header().Get("Location"); loc != "/admin" {
		t.Errorf("Location: got %q, want /admin", loc)
	}
	for _, id := range []int{2, 5, 8} {
		if _, ok := env.Store.GetPost(id); ok {
			t.Errorf("post %d survived category delete", id)
		}
	}
	if got := env.Store.Stats().Posts; got != 6 {
		t.Errorf("posts left: got %d, want 6", got)
	}
}

func TestPostsList(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("lists category posts", func(t *testing.T) {
		rr := httptest.NewRecorder()
		env.Admin.PostsList(rr, getRequest("/admin/categories/1/posts", "1"))

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		body := rr.Body.String()
		for _, want := range []string{"Introduction to TypeScript", "/admin/posts/4/edit", "/admin/posts/7/edit"} {
			if !strings.Contains(body, want) {
				t.Errorf("body missing %q", want)
			}
		}
		if strings.Contains(body, "Benefits of meditation") {
			t.Error("listing contains a post from another category")
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		rr := httptest.NewRecorder()
		env.Admin.PostsList(rr, getRequest("/admin/categories/42/posts", "42"))
		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rr.Code)
		}
	})
}

func TestPostNew(t *testing.T) {
	env := newTestEnv(t, nil)

	rr := httptest.NewRecorder()
	env.Admin.PostNew(rr, getRequest("/admin/categories/3/posts/new", "3"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "New post in Lifestyle") {
		t.Error("form heading missing")
	}

	rr = httptest.NewRecorder()
	env.Admin.PostNew(rr, getRequest("/admin/categories/-1/posts/new", "-1"))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("invalid id status: got %d, want 400", rr.Code)
	}
}

func TestPostCreate(t *testing.T) {
	tests := []struct {
		name       string
		catID      string
		title      string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"created", "1", "New Post", "Content", http.StatusSeeOther, ""},
		{"missing title", "1", "  ", "Content", http.StatusBadRequest, "Title is required."},
		{"missing body", "1", "New Post", "", http.StatusBadRequest, "Body is required."},
		{"title too long", "1", strings.Repeat("t", 201), "Content", http.StatusBadRequest, "Title is too long (max 200 characters)."},
		{"unknown category", "999", "New Post", "Content", http.StatusNotFound, "Category 999 not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			rr := httptest.NewRecorder()

			env.Admin.PostCreate(rr, formRequest(http.MethodPost, "/admin/categories/"+tt.catID+"/posts", tt.catID,
				url.Values{"title": {tt.title}, "body": {tt.body}}))

			if rr.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(rr.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}
			if tt.wantStatus == http.StatusSeeOther {
				if loc := rr.Header().Get("Location"); loc != "/admin/categories/1/posts" {
					t.Errorf("Location: got %q", loc)
				}
				p, ok := env.Store.GetPost(10)
				if !ok {
					t.Fatal("post 10 not created")
				}
				if p.CreatedDate.String() != "2026-10-19" {
					t.Errorf("created date: got %s", p.CreatedDate)
				}
			} else if env.Store.Stats().Posts != 9 {
				t.Error("failed create changed the store")
			}
		})
	}
}

func TestPostCreate_KeepsInputOnError(t *testing.T) {
	env := newTestEnv(t, nil)
	rr := httptest.NewRecorder()

	env.Admin.PostCreate(rr, formRequest(http.MethodPost, "/admin/categories/1/posts", "1",
		url.Values{"title": {""}, "body": {"draft body text"}}))

	if !strings.Contains(rr.Body.String(), "draft body text") {
		t.Error("form should re-render with the submitted body")
	}
}

func TestPostEdit(t *testing.T) {
	env := newTestEnv(t, nil)

	rr := httptest.NewRecorder()
	env.Admin.PostEdit(rr, getRequest("/admin/posts/3/edit", "3"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{"Edit post", "How to lead a healthy lifestyle", `action="/admin/posts/3"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}

	rr = httptest.NewRecorder()
	env.Admin.PostEdit(rr, getRequest("/admin/posts/99/edit", "99"))
	if rr.Code != http.StatusNotFound {
		t.Errorf("missing post status: got %d, want 404", rr.Code)
	}
}

func TestPostUpdate(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		title      string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"updated", "1", "Updated", "New body", http.StatusSeeOther, ""},
		{"empty body", "1", "Updated", " ", http.StatusBadRequest, "Body is required."},
		{"missing post", "99", "Updated", "New body", http.StatusNotFound, "Post 99 not found."},
		{"bad id", "x", "Updated", "New body", http.StatusBadRequest, "Invalid post ID."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			before, _ := env.Store.GetPost(1)
			rr := httptest.NewRecorder()

			env.Admin.PostUpdate(rr, formRequest(http.MethodPost, "/admin/posts/"+tt.id, tt.id,
				url.Values{"title": {tt.title}, "body": {tt.body}}))

			if rr.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(rr.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}

			after, _ := env.Store.GetPost(1)
			if tt.wantStatus == http.StatusSeeOther {
				if loc := rr.Header().Get("Location"); loc != "/admin/categories/1/posts" {
					t.Errorf("Location: got %q", loc)
				}
				if after.Title != "Updated" || after.Body != "New body" {
					t.Errorf("post not updated: %+v", after)
				}
				if !after.CreatedDate.Equal(before.CreatedDate.Time) || after.Category != before.Category {
					t.Error("update changed date or category")
				}
			} else if after.Title != before.Title || after.Body != before.Body {
				t.Error("failed update changed the post")
			}
		})
	}
}

func TestPostDelete(t *testing.T) {
	env := newTestEnv(t, nil)

	rr := httptest.NewRecorder()
	env.Admin.PostDelete(rr, formRequest(http.MethodPost, "/admin/posts/5/delete", "5", nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin/categories/2/posts" {
		t.Errorf("Location: got %q", loc)
	}

	rr = httptest.NewRecorder()
	env.Admin.PostDelete(rr, formRequest(http.MethodPost, "/admin/posts/5/delete", "5", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("second delete status: got %d, want 404", rr.Code)
	}
}
