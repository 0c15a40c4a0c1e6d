package data

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
)

var (
	// ErrRecordNotFound is returned when a query finds no matching row.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateBook is returned when an insert or update violates an
	// integrity constraint, most commonly a book_id that already exists.
	ErrDuplicateBook = errors.New("integrity constraint violation")

	// ErrConnection is returned when the database cannot be reached or the
	// connection was lost mid-statement.
	ErrConnection = errors.New("database connection error")
)

// DBError wraps a store error that is neither an integrity nor a connection
// problem.
type DBError struct {
	Op  string
	Err error
}

func (e *DBError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DBError) Unwrap() error {
	return e.Err
}

// classifyError maps a driver error onto the package's error taxonomy. The
// original error stays reachable through errors.Unwrap so its message can be
// surfaced to clients.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23": // integrity_constraint_violation
			return fmt.Errorf("%s: %w: %w", op, ErrDuplicateBook, err)
		case "08", "57", "53": // connection_exception, operator_intervention, insufficient_resources
			return fmt.Errorf("%s: %w: %w", op, ErrConnection, err)
		}
		return &DBError{Op: op, Err: err}
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %w", op, ErrConnection, err)
	}

	return &DBError{Op: op, Err: err}
}
