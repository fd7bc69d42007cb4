/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"net/http"

	"yatube/internal/service"
	"yatube/internal/view"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// AuthHandler manages user registration and the session lifecycle.
type AuthHandler struct {
	auth     service.AuthService
	store    *sessions.CookieStore
	renderer *view.PageRenderer
	logger   *zap.SugaredLogger
}

func NewAuthHandler(auth service.AuthService, store *sessions.CookieStore, renderer *view.PageRenderer, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		store:    store,
		renderer: renderer,
		logger:   logger,
	}
}

// Signup registers a user.
// If the method is GET, the registration form is shown.
// If it's POST, the submitted credentials are handed to the auth service and
// the new user is sent to the login page.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "signup.html", map[string]interface{}{
			"Username": "",
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	if _, err := h.auth.Register(username, r.FormValue("password")); err != nil {
		h.render(w, "signup.html", map[string]interface{}{
			"Error":    err.Error(),
			"Username": username,
		})
		return
	}

	http.Redirect(w, r, "/auth/login/", http.StatusSeeOther)
}

// Login authenticates a user and stores its id in the session cookie.
// A valid ?next= target, as set by RequireAuth, is honored after success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "login.html", map[string]interface{}{
			"Username": "",
			"Next":     r.URL.Query().Get("next"),
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	next := r.FormValue("next")

	user, err := h.auth.Login(username, r.FormValue("password"))
	if err != nil {
		h.render(w, "login.html", map[string]interface{}{
			"Error":    err.Error(),
			"Username": username,
			"Next":     next,
		})
		return
	}

	session, _ := h.store.Get(r, sessionName)
	session.Values["user_id"] = user.ID
	if err := sessions.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if !safeNext(next) {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// Logout deletes the current user's session, effectively logging them out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	if err := sessions.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) render(w http.ResponseWriter, name string, data map[string]interface{}) {
	if err := h.renderer.RenderTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
