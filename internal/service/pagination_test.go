package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name                          string
		page, perPage, defaultPerPage int
		wantPage, wantPer, wantOffset int
	}{
		{"defaults", 0, 0, 15, 1, 15, 0},
		{"third page", 3, 10, 15, 3, 10, 20},
		{"negative page", -2, 5, 15, 1, 5, 0},
		{"upper bound", 2, 500, 15, 2, MaxPerPage, MaxPerPage},
		{"huge page", math.MaxInt, 20, 15, MaxPage, 20, (MaxPage - 1) * 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage, offset := normalizePage(tt.page, tt.perPage, tt.defaultPerPage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPer, perPage)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestNewPageMeta(t *testing.T) {
	assert.Equal(t, PageMeta{CurrentPage: 1, PerPage: 15, Total: 0, LastPage: 1}, newPageMeta(1, 15, 0))
	assert.Equal(t, PageMeta{CurrentPage: 2, PerPage: 15, Total: 31, LastPage: 3}, newPageMeta(2, 15, 31))
	assert.Equal(t, 2, newPageMeta(1, 15, 30).LastPage)
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	assert.NoError(t, err)
	b, err := NewToken()
	assert.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)

	assert.True(t, tokensEqual(a, a))
	assert.False(t, tokensEqual(a, b))
	assert.False(t, tokensEqual("", ""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.org", normalizeEmail("  Ana@Example.ORG "))
}
