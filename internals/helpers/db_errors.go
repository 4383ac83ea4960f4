package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsDuplicateKey mendeteksi pelanggaran unique constraint (SQLSTATE 23505).
// Cek typed error dulu; fallback string match untuk driver yang membungkus pesan.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	s := strings.ToLower(err.Error())
	// umumnya driver menuliskan salah satu dari ini
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}
