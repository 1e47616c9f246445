// Package db holds small helpers shared by the sqlite-backed store.
package db

import (
	"database/sql"
	"time"
)

// WithTx executes fn within a transaction.
// It handles Begin, Rollback on error, and Commit on success.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// NullInt64Value returns the int64 value or 0 if not valid.
func NullInt64Value(n sql.NullInt64) int64 {
	if !n.Valid {
		return 0
	}
	return n.Int64
}

// NullUnixTime converts a nullable unix-seconds column to a time.
// ok is false if the value is not valid.
func NullUnixTime(n sql.NullInt64) (t time.Time, ok bool) {
	if !n.Valid {
		return time.Time{}, false
	}
	return time.Unix(n.Int64, 0), true
}
