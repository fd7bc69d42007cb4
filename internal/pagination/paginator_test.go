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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThirteenPostsTenPerPage(t *testing.T) {
	p := New(13, 10)

	assert.Equal(t, 2, p.NumPages())

	first := p.GetPage("1")
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 0, first.Offset())
	assert.Equal(t, 10, first.Limit())
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())

	second := p.GetPage("2")
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, 10, second.Offset())
	assert.False(t, second.HasNext())
	assert.True(t, second.HasPrevious())

	// Page 3 does not exist: it clamps to the last page.
	third := p.GetPage("3")
	assert.Equal(t, second, third)
}

func TestInvalidPageNumbersDefaultToFirst(t *testing.T) {
	p := New(30, 10)

	for _, raw := range []string{"", "abc", "1.5", "  ", "--2"} {
		page := p.GetPage(raw)
		assert.Equal(t, 1, page.Number, "raw=%q", raw)
	}
}

func TestNegativeAndZeroClampToFirst(t *testing.T) {
	p := New(30, 10)

	assert.Equal(t, 1, p.GetPage("0").Number)
	assert.Equal(t, 1, p.GetPage("-5").Number)
}

func TestEmptySequenceHasOneEmptyPage(t *testing.T) {
	p := New(0, 10)

	page := p.GetPage("7")
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.Offset())
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrevious())
}

func TestExactMultipleOfPageSize(t *testing.T) {
	p := New(20, 10)

	assert.Equal(t, 2, p.NumPages())
	assert.Equal(t, 2, p.GetPage("99").Number)
}

func TestPageWindowCoversSequence(t *testing.T) {
	// Page k of size n holds elements [(k-1)*n, k*n) of the ordering.
	p := New(47, 5)

	for k := 1; k <= p.NumPages(); k++ {
		got := p.GetPage(strconv.Itoa(k))
		assert.Equal(t, (k-1)*5, got.Offset())
		assert.Equal(t, 5, got.Limit())
	}
}
