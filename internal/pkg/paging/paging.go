// internal/pkg/paging/paging.go
package paging

import (
	"encoding/json"
	"fmt"
)

// Ellipsis is the marker emitted by Window where a run of page numbers was
// collapsed.
const Ellipsis = -1

// Page is the canonical paginated envelope returned by every list endpoint.
type Page[T any] struct {
	Items        []T `json:"items"`
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// New builds a Page from one fetched slice plus the total row count.
// total_pages is ceil(totalItems/perPage) and the echoed current page is
// clamped into [1, total_pages] (1 when the result set is empty).
func New[T any](items []T, totalItems, page, perPage int) *Page[T] {
	if perPage <= 0 {
		perPage = 1
	}
	totalPages := totalItems / perPage
	if totalItems%perPage > 0 {
		totalPages++
	}
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:        items,
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: perPage,
	}
}

// Offset returns the SQL offset for a 1-based page number.
func Offset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}

// Window computes the visible page buttons for a pager: page 1 and the last
// page are always present, pages within one of current are present, and any
// gap collapses into a single Ellipsis. One page or less needs no controls
// and yields an empty window.
//
//	Window(7, 12) => [1 Ellipsis 6 7 8 Ellipsis 12]
func Window(current, total int) []int {
	if total <= 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	var out []int
	prev := 0
	for p := 1; p <= total; p++ {
		if p != 1 && p != total && (p < current-1 || p > current+1) {
			continue
		}
		if prev != 0 && p-prev > 1 {
			out = append(out, Ellipsis)
		}
		out = append(out, p)
		prev = p
	}
	return out
}

// Normalize adapts a raw JSON list payload into a Page. Legacy endpoints
// return a bare array; newer ones return an envelope holding the rows under
// a resource-named key next to a "pagination" object. A bare array maps to
// a single page holding everything.
func Normalize[T any](data []byte) (*Page[T], error) {
	var items []T
	if err := json.Unmarshal(data, &items); err == nil {
		return New(items, len(items), 1, max(len(items), 1)), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("payload is neither an array nor an envelope: %w", err)
	}

	var meta struct {
		CurrentPage  int `json:"currentPage"`
		TotalPages   int `json:"totalPages"`
		TotalItems   int `json:"totalItems"`
		ItemsPerPage int `json:"itemsPerPage"`
	}
	if raw, ok := envelope["pagination"]; ok {
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("malformed pagination metadata: %w", err)
		}
	}

	for key, raw := range envelope {
		if key == "pagination" {
			continue
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			continue
		}
		if meta.ItemsPerPage == 0 {
			meta.ItemsPerPage = max(len(items), 1)
			meta.TotalItems = len(items)
			meta.CurrentPage = 1
		}
		return New(items, meta.TotalItems, meta.CurrentPage, meta.ItemsPerPage), nil
	}

	return nil, fmt.Errorf("envelope contains no list payload")
}
