package state

import (
	"database/sql"

	dbutil "github.com/Sumitb09/music-player/internal/db"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		var version sql.NullInt64
		if err := tx.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
			return err
		}
		v := dbutil.NullInt64Value(version)
		if v >= currentSchemaVersion {
			return nil
		}

		// Migration: v2 tracks when each key was last written.
		if v < 2 {
			_, _ = tx.Exec(`ALTER TABLE kv ADD COLUMN updated_at INTEGER`)
		}

		_, err := tx.Exec(`INSERT OR REPLACE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
		return err
	})
}
