package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Deteksi unique violation Postgres (kode "23505").
// Fallback string match juga menangkap pesan dari driver lain (mis. sqlite saat test).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
