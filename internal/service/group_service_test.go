/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"fmt"
	"strings"
	"testing"

	"yatube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGroupService(t *testing.T) GroupService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := repository.Open(dsn)
	require.NoError(t, err)
	return NewGroupService(repository.NewSQLiteGroupRepository(db), zap.NewNop().Sugar())
}

func TestCreateGroupDerivesSlugFromTitle(t *testing.T) {
	groups := newGroupService(t)

	group, err := groups.CreateGroup("Street Cats of Moscow", "", "feline news")
	require.NoError(t, err)
	assert.Equal(t, "street-cats-of-moscow", group.Slug)

	found, err := groups.GetBySlug("street-cats-of-moscow")
	require.NoError(t, err)
	assert.Equal(t, group.ID, found.ID)
}

func TestCreateGroupKeepsExplicitSlug(t *testing.T) {
	groups := newGroupService(t)

	group, err := groups.CreateGroup("Street Cats", "cats", "")
	require.NoError(t, err)
	assert.Equal(t, "cats", group.Slug)
}

func TestUpdateGroupChangesTitleAndDescriptionOnly(t *testing.T) {
	groups := newGroupService(t)

	group, err := groups.CreateGroup("Cats", "cats", "old description")
	require.NoError(t, err)

	group.Title = "City Cats"
	group.Description = "new description"
	group.Slug = "dogs" // never persisted: the slug is immutable
	require.NoError(t, groups.UpdateGroup(group))

	found, err := groups.GetBySlug("cats")
	require.NoError(t, err)
	assert.Equal(t, "City Cats", found.Title)
	assert.Equal(t, "new description", found.Description)
	assert.Equal(t, "cats", found.Slug)
}

func TestCreateGroupRejectsDuplicateSlug(t *testing.T) {
	groups := newGroupService(t)

	_, err := groups.CreateGroup("Cats", "cats", "")
	require.NoError(t, err)

	_, err = groups.CreateGroup("More Cats", "cats", "")
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestCreateGroupRejectsInvalidSlug(t *testing.T) {
	groups := newGroupService(t)

	_, err := groups.CreateGroup("Cats", "not a slug!", "")
	assert.Error(t, err)
}

func TestCreateGroupRequiresTitle(t *testing.T) {
	groups := newGroupService(t)

	_, err := groups.CreateGroup("", "cats", "")
	assert.Error(t, err)
}
