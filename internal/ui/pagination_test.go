package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// numbers flattens page items, using 0 for ellipses
func numbers(items []PageItem) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.Number)
	}
	return out
}

func TestGeneratePagination(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"no pages", 1, 0, []int{}},
		{"few pages", 2, 5, []int{1, 2, 3, 4, 5}},
		{"seven pages", 7, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"near start", 2, 10, []int{1, 2, 3, 0, 9, 10}},
		{"near end", 9, 10, []int{1, 2, 0, 8, 9, 10}},
		{"middle", 5, 10, []int{1, 0, 4, 5, 6, 0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numbers(GeneratePagination(tt.current, tt.total)))
		})
	}
}

func TestGeneratePaginationMarksCurrent(t *testing.T) {
	items := GeneratePagination(5, 10)
	assert.True(t, items[3].Current)
	assert.True(t, items[1].Ellipsis)
	assert.False(t, items[0].Current)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination("lee", 1, 3)
	assert.Empty(t, p.PrevHref)
	assert.Equal(t, "/dashboard/invoices?page=2&query=lee", p.NextHref)
	assert.Equal(t, "/dashboard/invoices?page=3&query=lee", p.Items[2].Href)

	p = NewPagination("", 3, 3)
	assert.Equal(t, "/dashboard/invoices?page=2", p.PrevHref)
	assert.Empty(t, p.NextHref)
}
