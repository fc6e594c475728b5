package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeNotFound = "not_found"

	pgForeignKeyViolation = "23503"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return IsBusiness(err, CodeNotFound)
}

// IsForeignKeyViolation reports a Postgres reference to a missing row, e.g.
// a booking pointing at a deleted resource.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return false
}
