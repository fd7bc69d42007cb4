/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"yatube/internal/handler"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/view"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	addr := flag.String("addr", ":8000", "HTTP network address")
	dsn := flag.String("dsn", "./yatube.db", "Path to the SQLite database file")
	tmplDir := flag.String("template-dir", "./web/templates", "Path to HTML templates")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	config := zap.NewProductionConfig()
	if *verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	db, err := repository.Open(*dsn)
	if err != nil {
		sugar.Fatalw("failed to open database", "dsn", *dsn, "error", err)
	}
	sugar.Infow("database connected", "dsn", *dsn)

	users := repository.NewSQLiteUserRepository(db)
	groups := repository.NewSQLiteGroupRepository(db)
	posts := repository.NewSQLitePostRepository(db)

	authService := service.NewAuthService(users, sugar)
	groupService := service.NewGroupService(groups, sugar)
	postService := service.NewPostService(posts, users, sugar)

	sessionKey := os.Getenv("SESSION_KEY")
	if sessionKey == "" {
		// Sessions signed with a throwaway key do not survive a restart.
		sessionKey = uuid.NewString()
		sugar.Warnw("SESSION_KEY not set, using a generated key")
	}
	store := sessions.NewCookieStore([]byte(sessionKey))

	renderer, err := view.NewDirRenderer(*tmplDir, "layout.html")
	if err != nil {
		sugar.Fatalw("failed to load templates", "dir", *tmplDir, "error", err)
	}

	mw := handler.NewMiddleware(store, authService, sugar)
	postHandler := handler.NewPostHandler(postService, groupService, authService, renderer, sugar)
	authHandler := handler.NewAuthHandler(authService, store, renderer, sugar)

	router := handler.NewRouter(postHandler, authHandler, mw)

	sugar.Infow("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
