package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromOffset(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		offset     int
		limit      int
		wantPage   int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{name: "halaman pertama", total: 45, offset: 0, limit: 20, wantPage: 1, wantPages: 3, wantNext: true, wantPrev: false},
		{name: "halaman tengah", total: 45, offset: 20, limit: 20, wantPage: 2, wantPages: 3, wantNext: true, wantPrev: true},
		{name: "halaman terakhir", total: 45, offset: 40, limit: 20, wantPage: 3, wantPages: 3, wantNext: false, wantPrev: true},
		{name: "data kosong", total: 0, offset: 0, limit: 20, wantPage: 1, wantPages: 1, wantNext: false, wantPrev: false},
		{name: "limit nol pakai default", total: 100, offset: 0, limit: 0, wantPage: 1, wantPages: 5, wantNext: true, wantPrev: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromOffset(tt.total, tt.offset, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}
