/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// One authored entry. The author is required, the group is optional:
// when a referenced group is removed, GroupID goes back to NULL and the
// post stays.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`                          // Numeric identifier
	Text     string    `gorm:"not null" json:"text"`                          // Content of the post
	PubDate  time.Time `gorm:"not null;index;autoCreateTime" json:"pub-date"` // Time of publication, set once at creation
	AuthorID uint      `gorm:"not null;index" json:"author"`                  // ID of the user that wrote the post
	Author   *User     `gorm:"foreignKey:AuthorID" json:"-"`                  // Author record, loaded for display
	GroupID  *uint     `gorm:"index" json:"group"`                            // ID of the group the post was published in, if any
	Group    *Group    `gorm:"foreignKey:GroupID" json:"-"`                   // Group record, loaded for display
}

// String renders the post for listings, truncated to its first 15
// characters. Truncation counts runes so multi-byte text is never split.
func (p *Post) String() string {
	runes := []rune(p.Text)
	if len(runes) > 15 {
		runes = runes[:15]
	}
	return string(runes)
}
