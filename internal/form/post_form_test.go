/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package form

import (
	"testing"

	"yatube/internal/entity"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// knownGroups resolves ids against a fixed set, the way the data store would.
func knownGroups(ids ...uint) GroupLookup {
	return func(id uint) (*entity.Group, error) {
		for _, known := range ids {
			if id == known {
				return &entity.Group{ID: id}, nil
			}
		}
		return nil, gorm.ErrRecordNotFound
	}
}

func TestValidFormWithGroup(t *testing.T) {
	f := NewPostForm("hello world", "3")

	assert.True(t, f.Validate(knownGroups(3)))
	assert.Empty(t, f.Errors)
	if assert.NotNil(t, f.GroupID()) {
		assert.Equal(t, uint(3), *f.GroupID())
	}
}

func TestValidFormWithoutGroup(t *testing.T) {
	f := NewPostForm("hello world", "")

	assert.True(t, f.Validate(knownGroups()))
	assert.Nil(t, f.GroupID())
}

func TestEmptyTextIsRejected(t *testing.T) {
	f := NewPostForm("", "")

	assert.False(t, f.Validate(knownGroups()))
	assert.Contains(t, f.Errors, "text")
}

func TestWhitespaceOnlyTextIsRejected(t *testing.T) {
	f := NewPostForm("   \n\t  ", "")

	assert.False(t, f.Validate(knownGroups()))
	assert.Contains(t, f.Errors, "text")
}

func TestTextIsTrimmed(t *testing.T) {
	f := NewPostForm("  hello  ", "")

	assert.True(t, f.Validate(knownGroups()))
	assert.Equal(t, "hello", f.Text)
}

func TestUnknownGroupIsRejected(t *testing.T) {
	f := NewPostForm("hello", "999")

	assert.False(t, f.Validate(knownGroups(1, 2)))
	assert.Contains(t, f.Errors, "group")
	assert.Nil(t, f.GroupID())
}

func TestMalformedGroupIsRejected(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "1.5"} {
		f := NewPostForm("hello", raw)

		assert.False(t, f.Validate(knownGroups(1)), "group=%q", raw)
		assert.Contains(t, f.Errors, "group")
	}
}

func TestBothFieldsCanFailTogether(t *testing.T) {
	f := NewPostForm("", "999")

	assert.False(t, f.Validate(knownGroups()))
	assert.Contains(t, f.Errors, "text")
	assert.Contains(t, f.Errors, "group")
}
