package db

import (
	"errors"
	"time"

	sqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

var (
	ErrInsertFailed           = errors.New("insert operation failed")
	ErrUpdateFailed           = errors.New("update operation failed")
	ErrDeleteFailed           = errors.New("delete operation failed")
	ErrSelectFailed           = errors.New("select operation failed")
	ErrTransactionStartFailed = errors.New("transaction start failed")
	ErrNotFound               = errors.New("record not found")
	ErrDuplicateEmail         = errors.New("email already registered")
	ErrDuplicateBooking       = errors.New("booking already exists")
)

const (
	// Matches the format sqlite's datetime('now') produced in the
	// original database, so old and new rows sort together.
	timestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

func nowTimestamp() string {
	return time.Now().UTC().Format(timestampLayout)
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlitelib.SQLITE_CONSTRAINT_UNIQUE ||
		se.Code() == sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY
}
