package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tschmitz/bookmarkd/internal/store"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// maxPageNumber keeps Number*Size within int32 range so the OFFSET
	// never overflows; pages past the data still read as empty lists.
	maxPageNumber = (1<<31 - 1) / maxPageSize
)

// parsePage extracts zero-based page number and size from query parameters.
// page defaults to 0, size defaults to 20 and is silently capped at 100.
// Negative or unparseable values fall back to the defaults; oversized values
// are clamped rather than dropped so an absurd page number cannot wrap
// around into serving page 0.
func parsePage(r *http.Request) store.Page {
	page := store.Page{Number: 0, Size: defaultPageSize}

	if p := r.URL.Query().Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			if parsed > maxPageNumber {
				parsed = maxPageNumber
			}
			if parsed >= 0 {
				page.Number = parsed
			}
		}
	}
	if s := r.URL.Query().Get("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if (err == nil || errors.Is(err, strconv.ErrRange)) && parsed > 0 {
			page.Size = parsed
		}
	}
	if page.Size > maxPageSize {
		page.Size = maxPageSize
	}

	return page
}

// pageInfo builds the page metadata block for a list response. The total is
// always scoped to the same filter as the listing itself.
func pageInfo(page store.Page, total int) PageInfo {
	return PageInfo{
		Size:          page.Size,
		TotalElements: total,
		TotalPages:    page.TotalPages(total),
		Number:        page.Number,
	}
}
