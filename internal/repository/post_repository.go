/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"yatube/internal/entity"

	"gorm.io/gorm"
)

// This repository is used to manipulate posts and query the feeds.
// Every feed is ordered newest first (pub_date, then id, descending) and is
// windowed with limit/offset by the caller's pagination.
type PostRepository interface {
	Create(post *entity.Post) error                                         // Inserts a post in the repository
	Update(post *entity.Post) error                                         // Saves the post's text and group; author and pub_date never change
	GetByID(id uint) (*entity.Post, error)                                  // Retrieves the post with the given id
	GetByAuthorAndID(authorID, id uint) (*entity.Post, error)               // Retrieves the post only if it belongs to the given author
	List(limit, offset int) ([]*entity.Post, error)                         // Retrieves a window of the global feed
	Count() (int64, error)                                                  // Counts all posts
	ListByGroup(groupID uint, limit, offset int) ([]*entity.Post, error)    // Retrieves a window of a group's feed
	CountByGroup(groupID uint) (int64, error)                               // Counts a group's posts
	ListByAuthor(authorID uint, limit, offset int) ([]*entity.Post, error)  // Retrieves a window of an author's feed
	CountByAuthor(authorID uint) (int64, error)                             // Counts an author's posts
}

// Implementation of the repository using a SQLite DB
type SQLitePostRepository struct {
	db *gorm.DB
}

func NewSQLitePostRepository(db *gorm.DB) PostRepository {
	return &SQLitePostRepository{db}
}

func (repo *SQLitePostRepository) Create(post *entity.Post) error {
	return repo.db.Create(post).Error
}

func (repo *SQLitePostRepository) Update(post *entity.Post) error {
	return repo.db.Model(post).
		Select("text", "group_id").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
		}).Error
}

func (repo *SQLitePostRepository) GetByID(id uint) (*entity.Post, error) {
	var post entity.Post
	err := repo.db.Preload("Author").Preload("Group").First(&post, id).Error
	return &post, err
}

func (repo *SQLitePostRepository) GetByAuthorAndID(authorID, id uint) (*entity.Post, error) {
	var post entity.Post
	err := repo.db.Preload("Author").Preload("Group").
		Where("author_id = ?", authorID).
		First(&post, id).Error
	return &post, err
}

func (repo *SQLitePostRepository) List(limit, offset int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.feed().Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) Count() (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Post{}).Count(&count).Error
	return count, err
}

func (repo *SQLitePostRepository) ListByGroup(groupID uint, limit, offset int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.feed().Where("group_id = ?", groupID).Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) CountByGroup(groupID uint) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (repo *SQLitePostRepository) ListByAuthor(authorID uint, limit, offset int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.feed().Where("author_id = ?", authorID).Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// feed is the base query every listing shares: author and group loaded,
// newest first. The id tiebreak keeps same-timestamp posts in a stable order.
func (repo *SQLitePostRepository) feed() *gorm.DB {
	return repo.db.Preload("Author").Preload("Group").
		Order("pub_date DESC, id DESC")
}
