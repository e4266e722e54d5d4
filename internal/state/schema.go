package state

import (
	"database/sql"
	"errors"
	"fmt"

	dbutil "github.com/llehouerou/quaver/internal/db"
)

// migrations[i] upgrades a database from version i to i+1.
var migrations = []string{
	`CREATE TABLE settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE queue_state (
		id            INTEGER PRIMARY KEY CHECK (id = 1),
		current_index INTEGER NOT NULL DEFAULT -1,
		repeat_mode   INTEGER NOT NULL DEFAULT 0,
		shuffle       INTEGER NOT NULL DEFAULT 0,
		sort_column   INTEGER NOT NULL DEFAULT 0,
		sort_order    INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE queue_tracks (
		position     INTEGER PRIMARY KEY,
		entry_id     TEXT NOT NULL,
		path         TEXT NOT NULL,
		title        TEXT NOT NULL,
		artist       TEXT,
		album        TEXT,
		album_id     TEXT,
		track_number INTEGER,
		duration_ms  INTEGER
	);`,
}

var currentSchemaVersion = len(migrations)

// initSchema brings the database up to currentSchemaVersion. Each step runs
// in its own transaction together with the version bump.
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return err
	}

	var version int
	err := db.QueryRow(`SELECT version FROM schema_version`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	if version > currentSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported %d", version, currentSchemaVersion)
	}

	for ; version < currentSchemaVersion; version++ {
		if err := migrate(db, version); err != nil {
			return fmt.Errorf("migrate schema to version %d: %w", version+1, err)
		}
	}
	return nil
}

func migrate(db *sql.DB, from int) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(migrations[from]); err != nil {
			return err
		}
		_, err := tx.Exec(`UPDATE schema_version SET version = ?`, from+1)
		return err
	})
}
