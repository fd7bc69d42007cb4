/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"errors"
	"fmt"
	"regexp"

	"yatube/internal/entity"
	"yatube/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Usernames appear in URLs as a path segment, so they are restricted to a
// URL-safe alphabet up front.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,150}$`)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidUsername    = errors.New("username must be 1-150 letters, digits, or _ . -")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service used to register users and resolve the current principal.
type AuthService interface {
	Register(username, password string) (*entity.User, error) // Creates a user with the given credentials
	Login(username, password string) (*entity.User, error)    // Verifies the credentials and returns the user
	UserByID(id uint) (*entity.User, error)                   // Resolves a stored session id back to a user
	UserByUsername(username string) (*entity.User, error)     // Retrieves a user by its profile name
}

type authService struct {
	users  repository.UserRepository
	logger *zap.SugaredLogger
}

func NewAuthService(users repository.UserRepository, logger *zap.SugaredLogger) AuthService {
	return &authService{users: users, logger: logger}
}

func (s *authService) Register(username, password string) (*entity.User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if password == "" {
		return nil, fmt.Errorf("password must not be empty")
	}

	if _, err := s.users.GetByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Username: username}
	if err := s.users.Create(user, string(hash)); err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "username", username, "id", user.ID)
	return user, nil
}

func (s *authService) Login(username, password string) (*entity.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		// The same answer for a missing user and a wrong password, so a
		// login probe cannot tell which usernames exist.
		return nil, ErrInvalidCredentials
	}

	secret, err := s.users.GetSecret(user.ID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(secret.Hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Infow("user logged in", "username", username, "id", user.ID)
	return user, nil
}

func (s *authService) UserByID(id uint) (*entity.User, error) {
	return s.users.GetByID(id)
}

func (s *authService) UserByUsername(username string) (*entity.User, error) {
	return s.users.GetByUsername(username)
}
