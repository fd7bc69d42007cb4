/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"yatube/internal/entity"
	"yatube/internal/repository"

	"go.uber.org/zap"
)

// Service used to write posts and read the three feeds (global, per group,
// per author). Feeds are newest first; windows come from the caller's
// pagination.
type PostService interface {
	CreatePost(author *entity.User, text string, groupID *uint) (*entity.Post, error) // Persists a new post for the given author
	UpdatePost(post *entity.Post, text string, groupID *uint) error                   // Rewrites a post's text and group

	GetPost(username string, id uint) (*entity.Post, error) // Retrieves a post only if it belongs to the named author

	Feed(limit, offset int) ([]*entity.Post, error)                        // Window of the global feed
	CountPosts() (int64, error)                                            // Size of the global feed
	GroupFeed(groupID uint, limit, offset int) ([]*entity.Post, error)     // Window of a group's feed
	CountGroupPosts(groupID uint) (int64, error)                           // Size of a group's feed
	AuthorFeed(authorID uint, limit, offset int) ([]*entity.Post, error)   // Window of an author's feed
	CountAuthorPosts(authorID uint) (int64, error)                         // Size of an author's feed
}

type postService struct {
	posts  repository.PostRepository
	users  repository.UserRepository
	logger *zap.SugaredLogger
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, logger *zap.SugaredLogger) PostService {
	return &postService{posts: posts, users: users, logger: logger}
}

func (s *postService) CreatePost(author *entity.User, text string, groupID *uint) (*entity.Post, error) {
	post := &entity.Post{
		Text:     text,
		AuthorID: author.ID,
		GroupID:  groupID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	s.logger.Infow("post created", "id", post.ID, "author", author.Username)
	return post, nil
}

func (s *postService) UpdatePost(post *entity.Post, text string, groupID *uint) error {
	post.Text = text
	post.GroupID = groupID
	if err := s.posts.Update(post); err != nil {
		return err
	}
	s.logger.Infow("post updated", "id", post.ID)
	return nil
}

// GetPost resolves the (username, id) pair the post URLs are built from.
// The author filter is part of the lookup: a real post id under the wrong
// username is NotFound, not that post.
func (s *postService) GetPost(username string, id uint) (*entity.Post, error) {
	author, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.posts.GetByAuthorAndID(author.ID, id)
}

func (s *postService) Feed(limit, offset int) ([]*entity.Post, error) {
	return s.posts.List(limit, offset)
}

func (s *postService) CountPosts() (int64, error) {
	return s.posts.Count()
}

func (s *postService) GroupFeed(groupID uint, limit, offset int) ([]*entity.Post, error) {
	return s.posts.ListByGroup(groupID, limit, offset)
}

func (s *postService) CountGroupPosts(groupID uint) (int64, error) {
	return s.posts.CountByGroup(groupID)
}

func (s *postService) AuthorFeed(authorID uint, limit, offset int) ([]*entity.Post, error) {
	return s.posts.ListByAuthor(authorID, limit, offset)
}

func (s *postService) CountAuthorPosts(authorID uint) (int64, error) {
	return s.posts.CountByAuthor(authorID)
}
