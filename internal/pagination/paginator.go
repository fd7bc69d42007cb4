/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package pagination

import (
	"strconv"
	"strings"
)

// Paginator slices an ordered sequence of total records into fixed-size
// pages. It only computes numbers and windows; fetching the records for a
// window is the caller's business.
type Paginator struct {
	total   int
	perPage int
}

// Page is one resolved page of a Paginator. Number is always within
// [1, TotalPages].
type Page struct {
	Number     int // 1-based page number after clamping
	PerPage    int // Page size
	Total      int // Total records across all pages
	TotalPages int // Total page count, at least 1
}

func New(total, perPage int) *Paginator {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}
	return &Paginator{total: total, perPage: perPage}
}

// NumPages is the number of pages, never less than 1: an empty sequence
// still has a single empty page.
func (p *Paginator) NumPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.perPage - 1) / p.perPage
}

// GetPage resolves the raw ?page= query value into a valid page.
// Absent or unparsable input means page 1; out-of-range numbers clamp to
// the nearest valid page instead of failing.
func (p *Paginator) GetPage(raw string) Page {
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		number = 1
	}

	last := p.NumPages()
	if number < 1 {
		number = 1
	}
	if number > last {
		number = last
	}

	return Page{
		Number:     number,
		PerPage:    p.perPage,
		Total:      p.total,
		TotalPages: last,
	}
}

// Offset is the index of the first record on the page.
func (pg Page) Offset() int {
	return (pg.Number - 1) * pg.PerPage
}

// Limit is the maximum number of records on the page.
func (pg Page) Limit() int {
	return pg.PerPage
}

func (pg Page) HasNext() bool {
	return pg.Number < pg.TotalPages
}

func (pg Page) HasPrevious() bool {
	return pg.Number > 1
}

func (pg Page) NextNumber() int {
	return pg.Number + 1
}

func (pg Page) PreviousNumber() int {
	return pg.Number - 1
}
