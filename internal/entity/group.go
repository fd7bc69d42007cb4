/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

// A named community/topic that posts may optionally be published in.
// Groups are managed through the admin tooling, never through the web handlers.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`             // Numeric identifier
	Title       string `gorm:"not null" json:"title"`            // Display name of the group
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"` // Unique URL-safe identifier, immutable once referenced
	Description string `json:"description"`                      // Free-text description
}

func (g *Group) String() string {
	return g.Title
}
