package data

import (
	"testing"

	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestCalculateMetadata(t *testing.T) {
	m := CalculateMetadata(95, 3, 20)
	assert.Equal(t, 3, m.CurrentPage)
	assert.Equal(t, 20, m.PageSize)
	assert.Equal(t, 1, m.FirstPage)
	assert.Equal(t, 5, m.LastPage)
	assert.Equal(t, 95, m.TotalRecords)

	assert.Equal(t, Metadata{}, CalculateMetadata(0, 1, 20))
}

func TestFiltersSort(t *testing.T) {
	f := Filters{Sort: "-year", SortSafeList: []string{"id", "year", "-id", "-year"}}
	assert.Equal(t, "year", f.SortColumn())
	assert.Equal(t, "DESC", f.SortDirection())

	f.Sort = "id"
	assert.Equal(t, "id", f.SortColumn())
	assert.Equal(t, "ASC", f.SortDirection())

	f.Sort = "created_at"
	assert.Panics(t, func() { f.SortColumn() })
}

func TestValidateFilters(t *testing.T) {
	safeList := []string{"id", "-id"}
	tests := []struct {
		name    string
		filters Filters
		valid   bool
	}{
		{"valid", Filters{Page: 1, PageSize: 20, Sort: "id", SortSafeList: safeList}, true},
		{"zero page", Filters{Page: 0, PageSize: 20, Sort: "id", SortSafeList: safeList}, false},
		{"oversized page", Filters{Page: 10_000_001, PageSize: 20, Sort: "id", SortSafeList: safeList}, false},
		{"zero page size", Filters{Page: 1, PageSize: 0, Sort: "id", SortSafeList: safeList}, false},
		{"oversized page size", Filters{Page: 1, PageSize: 101, Sort: "id", SortSafeList: safeList}, false},
		{"unsafe sort", Filters{Page: 1, PageSize: 20, Sort: "drop table", SortSafeList: safeList}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateFilters(v, tt.filters)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestFiltersLimitOffset(t *testing.T) {
	f := Filters{Page: 3, PageSize: 25}
	assert.Equal(t, 25, f.Limit())
	assert.Equal(t, 50, f.Offset())
}
