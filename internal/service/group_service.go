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

	"yatube/internal/entity"
	"yatube/internal/repository"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrSlugTaken = errors.New("slug is already taken")

// Service used to manage the groups posts can be published in. Writes come
// from the admin tooling only; the web handlers use the read side.
type GroupService interface {
	CreateGroup(title, slugText, description string) (*entity.Group, error) // Creates a group, deriving the slug from the title when none is given
	UpdateGroup(group *entity.Group) error                                  // Saves a group's title and description
	DeleteGroup(slugText string) error                                      // Deletes the group, detaching its posts
	GetBySlug(slugText string) (*entity.Group, error)                       // Retrieves the group with the given slug
	GetByID(id uint) (*entity.Group, error)                                 // Retrieves the group with the given id
	All() ([]*entity.Group, error)                                          // Retrieves all groups
}

type groupService struct {
	groups repository.GroupRepository
	logger *zap.SugaredLogger
}

func NewGroupService(groups repository.GroupRepository, logger *zap.SugaredLogger) GroupService {
	return &groupService{groups: groups, logger: logger}
}

func (s *groupService) CreateGroup(title, slugText, description string) (*entity.Group, error) {
	if title == "" {
		return nil, fmt.Errorf("title must not be empty")
	}

	if slugText == "" {
		slugText = slug.Make(title)
	}
	if !slug.IsSlug(slugText) {
		return nil, fmt.Errorf("%q is not a valid slug", slugText)
	}

	if _, err := s.groups.GetBySlug(slugText); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	group := &entity.Group{
		Title:       title,
		Slug:        slugText,
		Description: description,
	}
	if err := s.groups.Create(group); err != nil {
		return nil, err
	}

	s.logger.Infow("group created", "slug", group.Slug, "id", group.ID)
	return group, nil
}

func (s *groupService) UpdateGroup(group *entity.Group) error {
	return s.groups.Update(group)
}

func (s *groupService) DeleteGroup(slugText string) error {
	group, err := s.groups.GetBySlug(slugText)
	if err != nil {
		return err
	}
	if err := s.groups.Delete(group.ID); err != nil {
		return err
	}
	s.logger.Infow("group deleted", "slug", group.Slug, "id", group.ID)
	return nil
}

func (s *groupService) GetBySlug(slugText string) (*entity.Group, error) {
	return s.groups.GetBySlug(slugText)
}

func (s *groupService) GetByID(id uint) (*entity.Group, error) {
	return s.groups.GetByID(id)
}

func (s *groupService) All() ([]*entity.Group, error) {
	return s.groups.GetAll()
}
