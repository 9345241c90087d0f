package common

import (
	pkgerrors "lexicon-backend/pkg/errors"
)

// PageSlice is the half-open index window [Start, End) a page maps onto,
// plus the page count for the whole sequence.
type PageSlice struct {
	Start      int
	End        int
	TotalPages int
}

// PaginationMeta is the metadata block returned alongside a page of data.
type PaginationMeta struct {
	TotalCount  int `json:"total_count"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	PerPage     int `json:"per_page"`
}

// CalculateTotalPages calculates the number of pages needed to hold total
// items at perPage per page. Zero items means zero pages.
func CalculateTotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := total / perPage
	if total%perPage > 0 {
		pages++
	}
	return pages
}

// Paginate computes the index window for the requested page.
//
// A page starting at or beyond the end of a non-empty sequence is out of
// range and fails with PageNotFound. An empty sequence is different: every
// page of it, page 1 included, is a legal empty page with zero total
// pages. The asymmetry is deliberate and callers rely on it.
func Paginate(totalCount, page, perPage int) (PageSlice, error) {
	if page < 1 || perPage < 1 {
		return PageSlice{}, pkgerrors.NewValidationError("Page and limit parameters must be positive.")
	}

	totalPages := CalculateTotalPages(totalCount, perPage)

	// Range-check against the page count before computing the start
	// index: (page-1)*perPage overflows for huge page values, so the
	// multiplication is only safe once page is known to be in range.
	// page > totalPages is equivalent to start >= totalCount here.
	if totalCount > 0 && page > totalPages {
		return PageSlice{}, pkgerrors.NewPageNotFoundError()
	}
	if totalCount == 0 {
		return PageSlice{}, nil
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > totalCount {
		end = totalCount
	}

	return PageSlice{
		Start:      start,
		End:        end,
		TotalPages: totalPages,
	}, nil
}

// BuildPaginationMeta builds the metadata block for a page response.
func BuildPaginationMeta(totalCount, page, perPage int) PaginationMeta {
	return PaginationMeta{
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  CalculateTotalPages(totalCount, perPage),
		PerPage:     perPage,
	}
}
