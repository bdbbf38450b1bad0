package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrBookReferenced   = errors.New("book is still referenced by one or more copies")
	ErrDuplicateISBN    = errors.New("isbn already in use")
	// ErrUnknownReference is returned when a write points at a row that does not exist.
	ErrUnknownReference = errors.New("referenced record does not exist")
)

// postgres SQLSTATE codes
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isForeignKeyViolation(err error) bool { return isPgError(err, pgForeignKeyViolation) }

func isUniqueViolation(err error) bool { return isPgError(err, pgUniqueViolation) }
