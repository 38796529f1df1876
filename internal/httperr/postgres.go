package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlStateUniqueViolation      = "23505"
	sqlStateExclusionViolation   = "23P01"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsExclusionConflict reports a violated EXCLUDE constraint, i.e. an
// overlapping booking that slipped past the application checks.
func IsExclusionConflict(err error) bool {
	return pgCode(err) == sqlStateExclusionViolation
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == sqlStateUniqueViolation
}

func IsSerializationFailure(err error) bool {
	code := pgCode(err)
	return code == sqlStateSerializationFailure || code == sqlStateDeadlockDetected
}
