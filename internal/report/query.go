// internal/report/query.go
package report

import (
	"net/url"
	"strconv"
	"time"
)

// DateFormat is the wire format for date filters.
const DateFormat = "2006-01-02"

// Query is the canonical filter+pagination descriptor shared by the list
// endpoints and the exporters. Changing any filter resets the page to 1;
// only explicit page navigation keeps the current page.
type Query struct {
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	SupplierID string
	Page       int
	PageSize   int
}

// NewQuery returns a descriptor positioned on the first page.
func NewQuery(pageSize int) Query {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Query{Page: 1, PageSize: pageSize}
}

// Default page sizes observed per resource class: dense list screens use 50,
// card-style screens use 8.
const (
	DefaultPageSize = 50
	CardPageSize    = 8
)

// WithSearch sets the free-text filter and resets to the first page.
func (q Query) WithSearch(search string) Query {
	q.Search = search
	q.Page = 1
	return q
}

// WithDateRange sets the date filters and resets to the first page.
func (q Query) WithDateRange(start, end *time.Time) Query {
	q.StartDate = start
	q.EndDate = end
	q.Page = 1
	return q
}

// WithSupplier sets the reference filter and resets to the first page.
func (q Query) WithSupplier(id string) Query {
	q.SupplierID = id
	q.Page = 1
	return q
}

// WithPage navigates without touching the filters. Page numbers below 1
// clamp to 1.
func (q Query) WithPage(page int) Query {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// Unpaged returns a copy with paging disabled, used by exporters and the
// analysis endpoint to aggregate the full filtered set.
func (q Query) Unpaged() Query {
	q.Page = 1
	q.PageSize = 0
	return q
}

// HasFilters reports whether any filter field is active.
func (q Query) HasFilters() bool {
	return q.Search != "" || q.StartDate != nil || q.EndDate != nil || q.SupplierID != ""
}

// Values serializes the descriptor as request parameters. Empty fields are
// omitted entirely; no empty-string parameters are ever sent.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.StartDate != nil {
		v.Set("startDate", q.StartDate.Format(DateFormat))
	}
	if q.EndDate != nil {
		v.Set("endDate", q.EndDate.Format(DateFormat))
	}
	if q.SupplierID != "" {
		v.Set("supplier", q.SupplierID)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("limit", strconv.Itoa(q.PageSize))
	}
	return v
}

// ParseQuery reads a descriptor back out of request parameters. The old
// frontend sent startDate/endDate/supplier/limit; the current API documents
// from/to/supplier_id/page_size. Both spellings are accepted, short names
// winning when both appear. Unknown or malformed values fall back to the
// defaults; validation of semantics (a start date after the end date, say)
// is left to the database.
func ParseQuery(v url.Values, defaultPageSize int) Query {
	q := NewQuery(defaultPageSize)
	q.Search = v.Get("search")
	q.SupplierID = first(v, "supplier_id", "supplier")

	if raw := first(v, "from", "startDate"); raw != "" {
		if t, err := time.Parse(DateFormat, raw); err == nil {
			q.StartDate = &t
		}
	}
	if raw := first(v, "to", "endDate"); raw != "" {
		if t, err := time.Parse(DateFormat, raw); err == nil {
			// inclusive end of day
			t = t.Add(24*time.Hour - time.Nanosecond)
			q.EndDate = &t
		}
	}

	if raw := v.Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			q.Page = p
		}
	}
	if raw := first(v, "page_size", "limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 {
			if l > MaxPageSize {
				l = MaxPageSize
			}
			q.PageSize = l
		}
	}

	return q
}

func first(v url.Values, keys ...string) string {
	for _, k := range keys {
		if s := v.Get(k); s != "" {
			return s
		}
	}
	return ""
}

// MaxPageSize bounds client-supplied limits.
const MaxPageSize = 100
