package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrStorage wraps every other failure coming from the store.
	ErrStorage = errors.New("storage error")

	// ErrForeignKey is returned when a write references a row that does not exist.
	ErrForeignKey = errors.New("foreign key violation")
)

// SQLExecutor is satisfied by *sqlx.DB and *sqlx.Tx, so repository methods
// run either on a pooled connection or inside a caller-owned transaction.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

// wrapStorageErr turns a driver error into ErrStorage (or ErrForeignKey) keeping the driver message.
func wrapStorageErr(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %w: %s: %v", ErrStorage, ErrForeignKey, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503" // foreign_key_violation
	}
	// modernc.org/sqlite reports "FOREIGN KEY constraint failed (787)".
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
