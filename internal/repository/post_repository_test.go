/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"yatube/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database for one test. The shared cache
// keeps the pooled connections on the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := Open(dsn)
	require.NoError(t, err)
	return db
}

func createUser(t *testing.T, users UserRepository, username string) *entity.User {
	t.Helper()
	user := &entity.User{Username: username}
	require.NoError(t, users.Create(user, "irrelevant-hash"))
	return user
}

func createPost(t *testing.T, posts PostRepository, author *entity.User, text string, groupID *uint, at time.Time) *entity.Post {
	t.Helper()
	post := &entity.Post{
		Text:     text,
		PubDate:  at,
		AuthorID: author.ID,
		GroupID:  groupID,
	}
	require.NoError(t, posts.Create(post))
	return post
}

func TestFeedIsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepository(db)
	posts := NewSQLitePostRepository(db)
	author := createUser(t, users, "leo")

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	createPost(t, posts, author, "oldest", nil, base)
	createPost(t, posts, author, "middle", nil, base.Add(time.Hour))
	createPost(t, posts, author, "newest", nil, base.Add(2*time.Hour))

	feed, err := posts.List(10, 0)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "newest", feed[0].Text)
	assert.Equal(t, "middle", feed[1].Text)
	assert.Equal(t, "oldest", feed[2].Text)
	// Author is loaded for display.
	require.NotNil(t, feed[0].Author)
	assert.Equal(t, "leo", feed[0].Author.Username)
}

func TestFeedWindowing(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepository(db)
	posts := NewSQLitePostRepository(db)
	author := createUser(t, users, "leo")

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		createPost(t, posts, author, fmt.Sprintf("post %d", i), nil, base.Add(time.Duration(i)*time.Minute))
	}

	total, err := posts.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)

	first, err := posts.List(10, 0)
	require.NoError(t, err)
	assert.Len(t, first, 10)
	assert.Equal(t, "post 12", first[0].Text)

	second, err := posts.List(10, 10)
	require.NoError(t, err)
	assert.Len(t, second, 3)
	assert.Equal(t, "post 0", second[2].Text)
}

func TestGroupFeedOnlyContainsGroupPosts(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepository(db)
	groups := NewSQLiteGroupRepository(db)
	posts := NewSQLitePostRepository(db)

	author := createUser(t, users, "leo")
	group := &entity.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, groups.Create(group))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	createPost(t, posts, author, "grouped", &group.ID, base)
	createPost(t, posts, author, "ungrouped", nil, base.Add(time.Minute))

	feed, err := posts.ListByGroup(group.ID, 12, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "grouped", feed[0].Text)

	count, err := posts.CountByGroup(group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeletingGroupDetachesPostsWithoutDeletingThem(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepository(db)
	groups := NewSQLiteGroupRepository(db)
	posts := NewSQLitePostRepository(db)

	author := createUser(t, users, "leo")
	group := &entity.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, groups.Create(group))
	post := createPost(t, posts, author, "still here", &group.ID, time.Now())

	require.NoError(t, groups.Delete(group.ID))

	_, err := groups.GetBySlug("cats")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	reloaded, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.GroupID)
	assert.Equal(t, "still here", reloaded.Text)
}

func TestGetByAuthorAndIDRejectsWrongAuthor(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepository(db)
	posts := NewSQLitePostRepository(db)

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")
	post := createPost(t, posts, alice, "by alice", nil, time.Now())

	found, err := posts.GetByAuthorAndID(alice.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, found.ID)

	_, err = posts.GetByAuthorAndID(bob.ID, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateKeepsAuthorAndPubDate(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepository(db)
	groups := NewSQLiteGroupRepository(db)
	posts := NewSQLitePostRepository(db)

	author := createUser(t, users, "leo")
	group := &entity.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, groups.Create(group))

	published := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	post := createPost(t, posts, author, "before", &group.ID, published)

	post.Text = "after"
	post.GroupID = nil
	require.NoError(t, posts.Update(post))

	reloaded, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", reloaded.Text)
	assert.Nil(t, reloaded.GroupID)
	assert.Equal(t, author.ID, reloaded.AuthorID)
	assert.True(t, reloaded.PubDate.Equal(published))
}
