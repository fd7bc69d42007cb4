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

// This repository is used to manipulate users and their password secrets.
// Lookups that match no row return gorm.ErrRecordNotFound.
type UserRepository interface {
	Create(user *entity.User, hash string) error          // Inserts a user together with its password hash
	GetByUsername(username string) (*entity.User, error)  // Retrieves the user with the given username
	GetByID(id uint) (*entity.User, error)                // Retrieves the user with the given id
	GetSecret(userID uint) (*entity.UserSecret, error)    // Retrieves the password hash record for the given user
}

// Implementation of the repository using a SQLite DB
type SQLiteUserRepository struct {
	db *gorm.DB
}

func NewSQLiteUserRepository(db *gorm.DB) UserRepository {
	return &SQLiteUserRepository{db}
}

func (repo *SQLiteUserRepository) Create(user *entity.User, hash string) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		secret := entity.UserSecret{UserID: user.ID, Hash: hash}
		return tx.Create(&secret).Error
	})
}

func (repo *SQLiteUserRepository) GetByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := repo.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (repo *SQLiteUserRepository) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	err := repo.db.First(&user, id).Error
	return &user, err
}

func (repo *SQLiteUserRepository) GetSecret(userID uint) (*entity.UserSecret, error) {
	var secret entity.UserSecret
	err := repo.db.First(&secret, "user_id = ?", userID).Error
	return &secret, err
}
