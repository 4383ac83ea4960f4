package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "pq 23505", err: &pq.Error{Code: "23505"}, want: true},
		{name: "pq kode lain", err: &pq.Error{Code: "23503"}, want: false},
		{name: "pq 23505 terbungkus", err: fmt.Errorf("insert gagal: %w", &pq.Error{Code: "23505"}), want: true},
		{name: "pesan driver duplicate key", err: errors.New(`ERROR: duplicate key value violates unique constraint "uq_attendances_scd_type" (SQLSTATE 23505)`), want: true},
		{name: "error biasa", err: errors.New("connection refused"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateKey(tt.err); got != tt.want {
				t.Errorf("IsDuplicateKey() = %v, want %v", got, tt.want)
			}
		})
	}
}
