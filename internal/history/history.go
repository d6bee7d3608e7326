// Package history stores save snapshots and the recent-file list in SQLite,
// giving every file edited with calliglyph a local version history.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// Snapshot is one recorded version of a file's contents.
type Snapshot struct {
	ID         int64
	Path       string
	Version    int
	CreatedAt  string
	AuthorName sql.NullString
	Operation  string
	Lines      []string
}

// RecentFile is an entry on the start screen picker, remembering where the
// cursor was when the file was last open.
type RecentFile struct {
	Path     string
	CursorX  int
	CursorY  int
	OpenedAt string
}

// Repository provides snapshot and recent-file persistence.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Close closes the underlying DB connection used by the Repository.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// NormalizePath resolves path to a cleaned absolute form so the same file
// maps to one history regardless of how it was named on the command line.
func NormalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// RecordSnapshot stores lines as the next version for path and returns the
// assigned version number. The version counter is advanced inside the
// transaction so concurrent saves cannot collide.
func (r *Repository) RecordSnapshot(path string, lines []string, author string, operation string) (int, error) {
	path = NormalizePath(path)
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return 0, fmt.Errorf("marshal lines: %w", err)
	}
	trx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = trx.Rollback() }()

	var maxVersion sql.NullInt64
	row := trx.QueryRow("SELECT COALESCE(MAX(version), 0) FROM snapshots WHERE path = ?", path)
	if err := row.Scan(&maxVersion); err != nil {
		return 0, err
	}
	newVersion := int(maxVersion.Int64) + 1
	var authorVal interface{}
	if author != "" {
		authorVal = author
	}
	_, err = trx.Exec(`INSERT INTO snapshots (path, version, created_at, author_name, operation, lines)
		VALUES (?, ?, datetime('now'), ?, ?, ?)`, path, newVersion, authorVal, operation, string(linesJSON))
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}
	if err := trx.Commit(); err != nil {
		return 0, err
	}
	return newVersion, nil
}

// ListSnapshots returns all snapshots for path, newest first.
func (r *Repository) ListSnapshots(path string) ([]Snapshot, error) {
	path = NormalizePath(path)
	rows, err := r.db.Query(`SELECT id, path, version, created_at, author_name, operation, lines
		FROM snapshots WHERE path = ? ORDER BY version DESC`, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSnapshot returns a specific version for path, or nil when absent.
func (r *Repository) GetSnapshot(path string, version int) (*Snapshot, error) {
	path = NormalizePath(path)
	row := r.db.QueryRow(`SELECT id, path, version, created_at, author_name, operation, lines
		FROM snapshots WHERE path = ? AND version = ?`, path, version)
	var s Snapshot
	var linesJSON string
	if err := row.Scan(&s.ID, &s.Path, &s.Version, &s.CreatedAt, &s.AuthorName, &s.Operation, &linesJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(linesJSON), &s.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal lines: %w", err)
	}
	return &s, nil
}

// RestoreSnapshot returns the stored lines for the requested version and
// records the restore as a new snapshot so the history stays linear.
func (r *Repository) RestoreSnapshot(path string, version int) ([]string, error) {
	s, err := r.GetSnapshot(path, version)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("version %d not found for %s", version, path)
	}
	if _, err := r.RecordSnapshot(path, s.Lines, "", "restore"); err != nil {
		return nil, err
	}
	return s.Lines, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var s Snapshot
	var linesJSON string
	if err := row.Scan(&s.ID, &s.Path, &s.Version, &s.CreatedAt, &s.AuthorName, &s.Operation, &linesJSON); err != nil {
		return Snapshot{}, err
	}
	if err := json.Unmarshal([]byte(linesJSON), &s.Lines); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal lines: %w", err)
	}
	return s, nil
}
