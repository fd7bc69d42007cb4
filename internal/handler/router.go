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

	"github.com/gorilla/mux"
)

// NewRouter wires every route of the site. The fixed prefixes (/group/,
// /new/, /auth/) are registered before the catch-all /{username}/ routes, so
// registration order is load-bearing here.
func NewRouter(posts *PostHandler, auth *AuthHandler, mw *Middleware) http.Handler {
	r := mux.NewRouter()
	r.StrictSlash(true)
	r.Use(mw.RequestLog, mw.WithUser)

	r.HandleFunc("/", posts.Index).Methods(http.MethodGet)
	r.HandleFunc("/group/", posts.GroupIndex).Methods(http.MethodGet)
	r.HandleFunc("/group/{slug}/", posts.GroupPosts).Methods(http.MethodGet)
	r.Handle("/new/", mw.RequireAuth(http.HandlerFunc(posts.NewPost))).
		Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/auth/signup/", auth.Signup).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/auth/login/", auth.Login).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/auth/logout/", auth.Logout).Methods(http.MethodGet)

	r.HandleFunc("/{username}/", posts.Profile).Methods(http.MethodGet)
	r.HandleFunc("/{username}/{id:[0-9]+}/", posts.ViewPost).Methods(http.MethodGet)
	r.Handle("/{username}/{id:[0-9]+}/edit/", mw.RequireAuth(http.HandlerFunc(posts.EditPost))).
		Methods(http.MethodGet, http.MethodPost)

	return r
}
