package models

import "testing"

func TestPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       Pagination
		total      int
		wantOffset int
		wantLimit  int
		wantPages  int
	}{
		{"Defaults", DefaultPagination(), 60, 0, 25, 3},
		{"Second page", Pagination{Page: 2, PageSize: 10}, 25, 10, 10, 3},
		{"Zero page treated as first", Pagination{Page: 0, PageSize: 10}, 5, 0, 10, 1},
		{"Zero size uses default", Pagination{Page: 2, PageSize: 0}, 60, 25, 25, 3},
		{"Oversized first page", Pagination{Page: 1, PageSize: 150}, 250, 0, 100, 3},
		{"Oversized second page", Pagination{Page: 2, PageSize: 150}, 250, 100, 100, 3},
		{"Oversized last page", Pagination{Page: 3, PageSize: 150}, 250, 200, 100, 3},
		{"Empty result", Pagination{Page: 1, PageSize: 25}, 0, 0, 25, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.Offset(); got != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", got, tt.wantOffset)
			}
			if got := tt.page.Limit(); got != tt.wantLimit {
				t.Errorf("Limit() = %d, want %d", got, tt.wantLimit)
			}
			if got := tt.page.TotalPages(tt.total); got != tt.wantPages {
				t.Errorf("TotalPages(%d) = %d, want %d", tt.total, got, tt.wantPages)
			}
		})
	}
}

func TestPagination_Normalize(t *testing.T) {
	got := Pagination{Page: -3, PageSize: 500}.Normalize()
	if got.Page != 1 || got.PageSize != 100 {
		t.Errorf("Normalize() = %+v, want page 1 size 100", got)
	}
}
