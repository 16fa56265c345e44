// Package postgres implements the dispute stores on PostgreSQL through
// database/sql. Statements run inside the transaction carried by the context
// when there is one.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var errLockOutsideTx = errors.New("row lock requested outside a transaction")

// isUniqueViolation recognizes unique constraint failures from either
// supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
