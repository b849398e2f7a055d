package database

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
)

const (
	uniqueViolation          = pq.ErrorCode("23505")
	integrityConstraintClass = pq.ErrorClass("23")
)

// TrapError gives err a core.Kind from its postgres error code:
// unique violations are duplicates, any other class 23 error is a constraint violation
// and everything else means the store could not serve the request.
func TrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if core.KindOf(err) != core.KindUnknown {
		return errors.Wrap(err, msg)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == uniqueViolation:
			return core.WrapKind(err, core.KindDuplicateKey, msg)
		case pqErr.Code.Class() == integrityConstraintClass:
			return core.WrapKind(err, core.KindConstraintViolation, msg)
		}
	}
	return core.WrapKind(err, core.KindStoreUnavailable, msg)
}

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	return core.KindOf(err) == core.KindDuplicateKey
}
