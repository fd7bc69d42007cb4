/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"yatube/internal/form"
	"yatube/internal/pagination"
	"yatube/internal/service"
	"yatube/internal/view"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Feed page sizes.
const (
	feedPageSize    = 10
	groupPageSize   = 12
	profilePageSize = 5
)

// PostHandler serves the feeds and the post create/view/edit pages.
type PostHandler struct {
	posts    service.PostService
	groups   service.GroupService
	auth     service.AuthService
	renderer *view.PageRenderer
	logger   *zap.SugaredLogger
}

func NewPostHandler(posts service.PostService, groups service.GroupService, auth service.AuthService, renderer *view.PageRenderer, logger *zap.SugaredLogger) *PostHandler {
	return &PostHandler{
		posts:    posts,
		groups:   groups,
		auth:     auth,
		renderer: renderer,
		logger:   logger,
	}
}

// Index shows the global feed, newest first, ten posts per page.
func (h *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	total, err := h.posts.CountPosts()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := pagination.New(int(total), feedPageSize).GetPage(r.URL.Query().Get("page"))
	posts, err := h.posts.Feed(page.Limit(), page.Offset())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "index.html", map[string]interface{}{
		"Posts": posts,
		"Page":  page,
	})
}

// GroupIndex lists every group.
func (h *PostHandler) GroupIndex(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.All()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "group_list.html", map[string]interface{}{
		"Groups": groups,
	})
}

// GroupPosts shows one group's feed, twelve posts per page.
func (h *PostHandler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	group, err := h.groups.GetBySlug(slug)
	if err != nil {
		http.Error(w, "Group was not found", http.StatusNotFound)
		return
	}

	total, err := h.posts.CountGroupPosts(group.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := pagination.New(int(total), groupPageSize).GetPage(r.URL.Query().Get("page"))
	posts, err := h.posts.GroupFeed(group.ID, page.Limit(), page.Offset())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "group.html", map[string]interface{}{
		"Group": group,
		"Posts": posts,
		"Page":  page,
	})
}

// NewPost shows the post form and, on a valid submission, publishes a post
// authored by the current user. The route is auth-only.
func (h *PostHandler) NewPost(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Method == http.MethodGet {
		h.renderPostForm(w, r, form.NewPostForm("", ""), false, "")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	f := form.NewPostForm(r.FormValue("text"), r.FormValue("group"))
	if !f.Validate(h.groups.GetByID) {
		h.renderPostForm(w, r, f, false, "")
		return
	}

	if _, err := h.posts.CreatePost(&user, f.Text, f.GroupID()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Profile shows one author's feed, five posts per page, with the author's
// total post count.
func (h *PostHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	author, err := h.auth.UserByUsername(username)
	if err != nil {
		http.Error(w, "User was not found", http.StatusNotFound)
		return
	}

	total, err := h.posts.CountAuthorPosts(author.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := pagination.New(int(total), profilePageSize).GetPage(r.URL.Query().Get("page"))
	posts, err := h.posts.AuthorFeed(author.ID, page.Limit(), page.Offset())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "profile.html", map[string]interface{}{
		"Author":    author,
		"PostCount": total,
		"Posts":     posts,
		"Page":      page,
	})
}

// ViewPost shows a single post. The author is part of the address: a post id
// under the wrong username is NotFound.
func (h *PostHandler) ViewPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, ok := parseID(vars["id"])
	if !ok {
		http.Error(w, "Post was not found", http.StatusNotFound)
		return
	}

	post, err := h.posts.GetPost(vars["username"], id)
	if err != nil {
		http.Error(w, "Post was not found", http.StatusNotFound)
		return
	}

	count, err := h.posts.CountAuthorPosts(post.AuthorID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "post.html", map[string]interface{}{
		"Post":      post,
		"Author":    post.Author,
		"PostCount": count,
	})
}

// EditPost lets a post's author rewrite its text and group. Anyone else is
// silently sent back to the post view, before any form input is looked at.
func (h *PostHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	id, ok := parseID(vars["id"])
	if !ok {
		http.Error(w, "Post was not found", http.StatusNotFound)
		return
	}

	post, err := h.posts.GetPost(username, id)
	if err != nil {
		http.Error(w, "Post was not found", http.StatusNotFound)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	viewURL := fmt.Sprintf("/%s/%d/", username, post.ID)
	if user.ID != post.AuthorID {
		http.Redirect(w, r, viewURL, http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		group := ""
		if post.GroupID != nil {
			group = strconv.FormatUint(uint64(*post.GroupID), 10)
		}
		h.renderPostForm(w, r, form.NewPostForm(post.Text, group), true, viewURL)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	f := form.NewPostForm(r.FormValue("text"), r.FormValue("group"))
	if !f.Validate(h.groups.GetByID) {
		h.renderPostForm(w, r, f, true, viewURL)
		return
	}

	if err := h.posts.UpdatePost(post, f.Text, f.GroupID()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, viewURL, http.StatusSeeOther)
}

// renderPostForm shows the shared create/edit form with the group choices.
func (h *PostHandler) renderPostForm(w http.ResponseWriter, r *http.Request, f *form.PostForm, isEdit bool, postURL string) {
	groups, err := h.groups.All()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "new.html", map[string]interface{}{
		"Form":    f,
		"Groups":  groups,
		"IsEdit":  isEdit,
		"PostURL": postURL,
	})
}

// render executes a page template with the current principal added to the
// data under "User".
func (h *PostHandler) render(w http.ResponseWriter, r *http.Request, name string, data map[string]interface{}) {
	if user, ok := currentUser(r); ok {
		data["User"] = user
	}
	if err := h.renderer.RenderTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
