package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateKey is returned when an insert trips a unique constraint.
// The constraints on mutations (perner, new_unit, new_sub_unit) and
// ratings (perner, month, year) make the duplicate checks race-free:
// two concurrent inserts for the same key cannot both succeed.
var ErrDuplicateKey = errors.New("duplicate key")

const uniqueViolationCode = "23505"

func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return ErrDuplicateKey
	}
	return err
}
