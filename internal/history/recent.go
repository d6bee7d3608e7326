package history

import "database/sql"

// Touch upserts the recent-file entry for path with the last cursor
// position. Called on open and again when the editor exits.
func (r *Repository) Touch(path string, cursorX, cursorY int) error {
	path = NormalizePath(path)
	_, err := r.db.Exec(`INSERT INTO recent_files (path, cursor_x, cursor_y, opened_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(path) DO UPDATE SET cursor_x = excluded.cursor_x,
			cursor_y = excluded.cursor_y, opened_at = excluded.opened_at`,
		path, cursorX, cursorY)
	return err
}

// GetRecent returns the recent-file entry for path, or nil when absent.
func (r *Repository) GetRecent(path string) (*RecentFile, error) {
	path = NormalizePath(path)
	row := r.db.QueryRow("SELECT path, cursor_x, cursor_y, opened_at FROM recent_files WHERE path = ?", path)
	var rf RecentFile
	if err := row.Scan(&rf.Path, &rf.CursorX, &rf.CursorY, &rf.OpenedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rf, nil
}

// ListRecent returns up to limit recently opened files, newest first.
func (r *Repository) ListRecent(limit int) ([]RecentFile, error) {
	rows, err := r.db.Query("SELECT path, cursor_x, cursor_y, opened_at FROM recent_files ORDER BY opened_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []RecentFile
	for rows.Next() {
		var rf RecentFile
		if err := rows.Scan(&rf.Path, &rf.CursorX, &rf.CursorY, &rf.OpenedAt); err != nil {
			return nil, err
		}
		out = append(out, rf)
	}
	return out, rows.Err()
}
