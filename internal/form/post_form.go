/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package form

import (
	"strconv"
	"strings"

	"yatube/internal/entity"
)

// GroupLookup resolves a submitted group id to a stored group.
// The pattern mirrors the data store: zero matches is an error.
type GroupLookup func(id uint) (*entity.Group, error)

// PostForm carries the raw submitted fields of the post form, together with
// any field-level errors produced by Validate. Nothing here touches storage:
// callers persist only after Validate reports the form valid.
type PostForm struct {
	Text   string            // Submitted post text
	Group  string            // Submitted group id, may be empty
	Errors map[string]string // Field name to error message, filled by Validate

	groupID *uint
}

func NewPostForm(text, group string) *PostForm {
	return &PostForm{
		Text:   text,
		Group:  group,
		Errors: map[string]string{},
	}
}

// Validate checks the submitted fields and normalizes them for persistence.
// It reports whether the form is valid; when it is not, Errors holds one
// message per failing field and GroupID must not be used.
func (f *PostForm) Validate(lookup GroupLookup) bool {
	f.Errors = map[string]string{}
	f.groupID = nil

	f.Text = strings.TrimSpace(f.Text)
	if f.Text == "" {
		f.Errors["text"] = "Text is required."
	}

	if f.Group != "" {
		id, err := strconv.ParseUint(f.Group, 10, 32)
		if err != nil {
			f.Errors["group"] = "Select an existing group."
		} else if group, err := lookup(uint(id)); err != nil {
			f.Errors["group"] = "Select an existing group."
		} else {
			f.groupID = &group.ID
		}
	}

	return len(f.Errors) == 0
}

// GroupID is the normalized group reference, nil when no group was chosen.
// Only meaningful after a successful Validate.
func (f *PostForm) GroupID() *uint {
	return f.groupID
}
