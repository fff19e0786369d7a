package paging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sondurak/garage-be/internal/pkg/paging"
)

func TestNew_TotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		perPage    int
		wantPages  int
	}{
		{name: "exact_division", totalItems: 100, perPage: 50, wantPages: 2},
		{name: "remainder_adds_a_page", totalItems: 101, perPage: 50, wantPages: 3},
		{name: "single_partial_page", totalItems: 7, perPage: 8, wantPages: 1},
		{name: "empty_result_set", totalItems: 0, perPage: 8, wantPages: 0},
		{name: "one_item", totalItems: 1, perPage: 8, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := paging.New([]int{}, tt.totalItems, 1, tt.perPage)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.totalItems, page.TotalItems)
		})
	}
}

func TestNew_ClampsCurrentPage(t *testing.T) {
	page := paging.New([]string{}, 20, 99, 8)
	assert.Equal(t, 3, page.CurrentPage)

	page = paging.New([]string{}, 20, 0, 8)
	assert.Equal(t, 1, page.CurrentPage)

	// empty result sets echo page 1
	page = paging.New([]string{}, 0, 5, 8)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{
			name:    "middle_of_a_long_range",
			current: 7, total: 12,
			want: []int{1, paging.Ellipsis, 6, 7, 8, paging.Ellipsis, 12},
		},
		{
			name:    "spec_example_five_of_ten",
			current: 5, total: 10,
			want: []int{1, paging.Ellipsis, 4, 5, 6, paging.Ellipsis, 10},
		},
		{
			name:    "first_page",
			current: 1, total: 10,
			want: []int{1, 2, paging.Ellipsis, 10},
		},
		{
			name:    "last_page",
			current: 10, total: 10,
			want: []int{1, paging.Ellipsis, 9, 10},
		},
		{
			name:    "short_range_has_no_ellipsis",
			current: 2, total: 4,
			want: []int{1, 2, 3, 4},
		},
		{
			name:    "single_page_renders_no_controls",
			current: 1, total: 1,
			want: nil,
		},
		{
			name:    "no_pages_renders_no_controls",
			current: 1, total: 0,
			want: nil,
		},
		{
			name:    "out_of_range_current_is_clamped",
			current: 99, total: 6,
			want: []int{1, paging.Ellipsis, 5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paging.Window(tt.current, tt.total)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Page 1 and the last page appear exactly once for any reachable state.
func TestWindow_BoundaryPagesAppearOnce(t *testing.T) {
	for total := 2; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			got := paging.Window(current, total)
			first, last := 0, 0
			for _, p := range got {
				switch p {
				case 1:
					first++
				case total:
					last++
				}
			}
			assert.Equal(t, 1, first, "current=%d total=%d", current, total)
			assert.Equal(t, 1, last, "current=%d total=%d", current, total)
		}
	}
}

func TestNormalize_BareArray(t *testing.T) {
	payload := []byte(`[{"name":"alternator"},{"name":"starter"}]`)

	type row struct {
		Name string `json:"name"`
	}

	page, err := paging.Normalize[row](payload)
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.TotalItems)
}

func TestNormalize_Envelope(t *testing.T) {
	payload := []byte(`{
		"purchases": [{"name":"bulb"}],
		"pagination": {"currentPage": 3, "totalPages": 5, "totalItems": 33, "itemsPerPage": 8}
	}`)

	type row struct {
		Name string `json:"name"`
	}

	page, err := paging.Normalize[row](payload)
	require.NoError(t, err)

	assert.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, 33, page.TotalItems)
	assert.Equal(t, 8, page.ItemsPerPage)
}

func TestNormalize_EnvelopeWithoutPagination(t *testing.T) {
	payload := []byte(`{"repairs": [{"name":"a"},{"name":"b"},{"name":"c"}]}`)

	type row struct {
		Name string `json:"name"`
	}

	page, err := paging.Normalize[row](payload)
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
}

func TestNormalize_Garbage(t *testing.T) {
	_, err := paging.Normalize[string]([]byte(`"not a list"`))
	assert.Error(t, err)
}
