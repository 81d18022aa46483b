package pkg_pagination_test

import (
	"net/url"
	"testing"

	"github.com/studynova/ingest/pkg/pagination"
	"github.com/studynova/ingest/pkg/query"
)

var testConfig = pagination.Config{
	DefaultPageSize: 20,
	MaxPageSize:     100,
}

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"page size over max", 2, 500, 2, 100},
		{"valid values unchanged", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			req.Normalize(testConfig)

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	tests := []struct {
		page     int
		pageSize int
		want     int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{5, 10, 40},
	}

	for _, tt := range tests {
		req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
		if got := req.Offset(); got != tt.want {
			t.Errorf("Offset(page=%d, size=%d) = %d, want %d", tt.page, tt.pageSize, got, tt.want)
		}
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("page_size", "50")
	values.Set("search", "algebra")
	values.Set("sort", "-ProcessedAt,Filename")

	req := pagination.PageRequestFromQuery(values, testConfig)

	if req.Page != 3 {
		t.Errorf("Page = %d, want 3", req.Page)
	}
	if req.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", req.PageSize)
	}
	if req.Search == nil || *req.Search != "algebra" {
		t.Errorf("Search = %v, want algebra", req.Search)
	}

	wantSort := []query.SortField{
		{Field: "ProcessedAt", Descending: true},
		{Field: "Filename", Descending: false},
	}
	if len(req.Sort) != len(wantSort) {
		t.Fatalf("Sort length = %d, want %d", len(req.Sort), len(wantSort))
	}
	for i, sf := range wantSort {
		if req.Sort[i] != sf {
			t.Errorf("Sort[%d] = %+v, want %+v", i, req.Sort[i], sf)
		}
	}
}

func TestPageRequestFromQuery_Defaults(t *testing.T) {
	req := pagination.PageRequestFromQuery(url.Values{}, testConfig)

	if req.Page != 1 {
		t.Errorf("Page = %d, want 1", req.Page)
	}
	if req.PageSize != testConfig.DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", req.PageSize, testConfig.DefaultPageSize)
	}
	if req.Search != nil {
		t.Errorf("Search = %v, want nil", req.Search)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"even division", 100, 20, 5},
		{"remainder adds page", 101, 20, 6},
		{"empty still one page", 0, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{"a"}, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
		})
	}
}

func TestNewPageResult_NilData(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 20)

	if result.Data == nil {
		t.Error("Data is nil, want empty slice")
	}
	if len(result.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(result.Data))
	}
}
