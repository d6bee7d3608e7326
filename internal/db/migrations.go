// Package db opens the snapshot database and keeps its schema current.
package db

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// ApplyMigrations applies the embedded schema SQL to the database and
// performs lightweight post-creation migrations (adding new columns when needed).
func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return ensureSnapshotColumns(db)
}

// ensureSnapshotColumns checks for optional columns and adds them when missing.
func ensureSnapshotColumns(db *sql.DB) error {
	rows, err := db.Query("PRAGMA table_info(snapshots)")
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	cols := map[string]bool{}
	for rows.Next() {
		var cid int
		var name string
		var ctype string
		var notnull int
		var dflt interface{}
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if !cols["author_name"] {
		if _, err := db.Exec("ALTER TABLE snapshots ADD COLUMN author_name TEXT"); err != nil {
			return err
		}
	}
	return nil
}
