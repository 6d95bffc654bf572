package ui

import (
	"net/url"
	"strconv"
)

// PageItem is one entry of the page strip. Ellipsis items have no number.
type PageItem struct {
	Number   int
	Ellipsis bool
	Current  bool
	Href     string
}

// Pagination is the page strip with previous and next links
type Pagination struct {
	Items    []PageItem
	PrevHref string
	NextHref string
}

// GeneratePagination returns the page numbers to show for currentPage out of
// totalPages, collapsing long ranges with ellipses.
func GeneratePagination(currentPage, totalPages int) []PageItem {
	if totalPages <= 0 {
		return []PageItem{}
	}

	var numbers []int
	switch {
	case totalPages <= 7:
		for i := 1; i <= totalPages; i++ {
			numbers = append(numbers, i)
		}
	case currentPage <= 3:
		numbers = []int{1, 2, 3, 0, totalPages - 1, totalPages}
	case currentPage >= totalPages-2:
		numbers = []int{1, 2, 0, totalPages - 2, totalPages - 1, totalPages}
	default:
		numbers = []int{1, 0, currentPage - 1, currentPage, currentPage + 1, 0, totalPages}
	}

	items := make([]PageItem, 0, len(numbers))
	for _, n := range numbers {
		if n == 0 {
			items = append(items, PageItem{Ellipsis: true})
			continue
		}
		items = append(items, PageItem{Number: n, Current: n == currentPage})
	}
	return items
}

// NewPagination builds the page strip for the invoices list, keeping query in every link
func NewPagination(query string, currentPage, totalPages int) Pagination {
	items := GeneratePagination(currentPage, totalPages)
	for i := range items {
		if !items[i].Ellipsis {
			items[i].Href = PageURL(query, items[i].Number)
		}
	}

	p := Pagination{Items: items}
	if currentPage > 1 && totalPages > 0 {
		p.PrevHref = PageURL(query, currentPage-1)
	}
	if currentPage < totalPages {
		p.NextHref = PageURL(query, currentPage+1)
	}
	return p
}

// PageURL returns the invoices list URL for page, preserving query
func PageURL(query string, page int) string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if query != "" {
		params.Set("query", query)
	}
	return invoicesPath + "?" + params.Encode()
}
