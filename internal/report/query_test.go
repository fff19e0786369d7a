package report_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sondurak/garage-be/internal/report"
)

func date(s string) *time.Time {
	t, err := time.Parse(report.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestQuery_FilterChangesResetPage(t *testing.T) {
	q := report.NewQuery(8).WithPage(3)
	assert.Equal(t, 3, q.Page)

	// changing any filter field forces page back to 1
	assert.Equal(t, 1, q.WithSearch("alternator").Page)
	assert.Equal(t, 1, q.WithDateRange(date("2024-01-01"), date("2024-01-31")).Page)
	assert.Equal(t, 1, q.WithSupplier("abc").Page)

	// explicit navigation does not touch the filters
	q = q.WithSearch("alternator").WithPage(2)
	assert.Equal(t, "alternator", q.Search)
	assert.Equal(t, 2, q.Page)
}

func TestQuery_WithPageClampsLowerBound(t *testing.T) {
	q := report.NewQuery(8).WithPage(0)
	assert.Equal(t, 1, q.Page)
	q = q.WithPage(-4)
	assert.Equal(t, 1, q.Page)
}

func TestQuery_ValuesOmitsEmptyFields(t *testing.T) {
	q := report.NewQuery(8)
	v := q.Values()

	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "8", v.Get("limit"))
	_, hasSearch := v["search"]
	_, hasStart := v["startDate"]
	_, hasSupplier := v["supplier"]
	assert.False(t, hasSearch)
	assert.False(t, hasStart)
	assert.False(t, hasSupplier)
}

func TestQuery_ValuesSerializesActiveFilters(t *testing.T) {
	q := report.NewQuery(50).
		WithSearch("buji").
		WithDateRange(date("2024-01-01"), date("2024-01-31")).
		WithSupplier("sup-1").
		WithPage(2)

	v := q.Values()
	assert.Equal(t, "buji", v.Get("search"))
	assert.Equal(t, "2024-01-01", v.Get("startDate"))
	assert.Equal(t, "2024-01-31", v.Get("endDate"))
	assert.Equal(t, "sup-1", v.Get("supplier"))
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "50", v.Get("limit"))
}

func TestParseQuery(t *testing.T) {
	v := url.Values{}
	v.Set("search", "mars")
	v.Set("startDate", "2024-02-01")
	v.Set("endDate", "2024-02-29")
	v.Set("page", "4")
	v.Set("limit", "25")

	q := report.ParseQuery(v, 50)
	assert.Equal(t, "mars", q.Search)
	assert.Equal(t, 4, q.Page)
	assert.Equal(t, 25, q.PageSize)
	assert.Equal(t, "2024-02-01", q.StartDate.Format(report.DateFormat))
	// end date is pushed to the inclusive end of day
	assert.Equal(t, "2024-02-29", q.EndDate.Format(report.DateFormat))
	assert.Equal(t, 23, q.EndDate.Hour())
}

func TestParseQuery_AcceptsShortParamNames(t *testing.T) {
	v := url.Values{}
	v.Set("from", "2024-02-01")
	v.Set("to", "2024-02-29")
	v.Set("supplier_id", "abc")
	v.Set("page_size", "25")

	q := report.ParseQuery(v, 50)
	assert.Equal(t, "abc", q.SupplierID)
	assert.Equal(t, 25, q.PageSize)
	assert.Equal(t, "2024-02-01", q.StartDate.Format(report.DateFormat))
	assert.Equal(t, "2024-02-29", q.EndDate.Format(report.DateFormat))
}

func TestParseQuery_DefaultsAndBounds(t *testing.T) {
	q := report.ParseQuery(url.Values{}, 8)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 8, q.PageSize)
	assert.False(t, q.HasFilters())

	v := url.Values{}
	v.Set("page", "garbage")
	v.Set("limit", "100000")
	v.Set("startDate", "31-01-2024") // wrong format, ignored
	q = report.ParseQuery(v, 8)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, report.MaxPageSize, q.PageSize)
	assert.Nil(t, q.StartDate)
}

func TestQuery_Unpaged(t *testing.T) {
	q := report.NewQuery(8).WithSearch("x").WithPage(5)
	full := q.Unpaged()
	assert.Equal(t, 0, full.PageSize)
	assert.Equal(t, 1, full.Page)
	assert.Equal(t, "x", full.Search)
	// the original descriptor is untouched
	assert.Equal(t, 8, q.PageSize)
}
