package db

import "github.com/lib/pq"

const (
	DuplicateEntry pq.ErrorCode = "23505"
	CheckViolation pq.ErrorCode = "23514"
	EntryTooLong   pq.ErrorCode = "22001"
)

// IsUniqueViolation reports whether err is a postgres duplicate-key
// error, e.g. a replayed gateway payment reference or a milestone row
// inserted by a concurrent release.
func IsUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == DuplicateEntry
}
