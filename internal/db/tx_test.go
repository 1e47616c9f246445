package db

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return db
}

func countKeys(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return n
}

func TestWithTx(t *testing.T) {
	abort := errors.New("abort")

	tests := []struct {
		name      string
		keys      []string
		fnErr     error
		wantErr   bool
		wantCount int
	}{
		{"single write commits", []string{"PLAYER_STATE"}, nil, false, 1},
		{"several writes commit together", []string{"a", "b", "c"}, nil, false, 3},
		{"error rolls back everything", []string{"a", "b"}, abort, true, 0},
		{"constraint violation rolls back", []string{"a", "a"}, nil, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)

			err := WithTx(db, func(tx *sql.Tx) error {
				for _, k := range tt.keys {
					if _, err := tx.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, k, "{}"); err != nil {
						return err
					}
				}
				return tt.fnErr
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("WithTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.fnErr != nil && !errors.Is(err, tt.fnErr) {
				t.Errorf("WithTx() error = %v, want %v", err, tt.fnErr)
			}
			if got := countKeys(t, db); got != tt.wantCount {
				t.Errorf("count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestWithTx_BeginFails(t *testing.T) {
	db := setupTestDB(t)
	db.Close()

	called := false
	err := WithTx(db, func(*sql.Tx) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error from closed db")
	}
	if called {
		t.Error("fn must not run when Begin fails")
	}
}

func TestNullInt64Value(t *testing.T) {
	tests := []struct {
		name string
		in   sql.NullInt64
		want int64
	}{
		{"valid", sql.NullInt64{Int64: 42, Valid: true}, 42},
		{"invalid", sql.NullInt64{Int64: 42}, 0},
		{"zero", sql.NullInt64{Valid: true}, 0},
		{"negative", sql.NullInt64{Int64: -7, Valid: true}, -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NullInt64Value(tt.in); got != tt.want {
				t.Errorf("NullInt64Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNullUnixTime(t *testing.T) {
	got, ok := NullUnixTime(sql.NullInt64{Int64: 1700000000, Valid: true})
	if !ok {
		t.Fatal("expected ok for valid value")
	}
	if !got.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("NullUnixTime() = %v", got)
	}

	got, ok = NullUnixTime(sql.NullInt64{Int64: 1700000000})
	if ok || !got.IsZero() {
		t.Errorf("NullUnixTime(invalid) = %v, %v; want zero, false", got, ok)
	}
}
