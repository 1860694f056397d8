package services

import "mentordash/internal/pagination"

// pageAll returns a page request large enough to hold every fixture row.
func pageAll() pagination.PageRequest {
	return pagination.PageRequest{Page: 1, PageSize: 100}
}
