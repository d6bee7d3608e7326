package app

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads path into the buffer, creating the file when it does not
// exist. With an empty path the editor starts with a single blank line.
// The cursor returns to where it was when the file was last open.
func (a *App) Load(path string) error {
	a.Running = true
	a.Area = AreaEditor
	a.FilePath = path
	if path == "" {
		a.Editor.Content = []string{""}
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", path, err)
		}
		f, cerr := os.Create(path)
		if cerr != nil {
			return fmt.Errorf("create %s: %w", path, cerr)
		}
		_ = f.Close()
		a.Editor.Content = []string{""}
	} else {
		a.Editor.Content = splitLines(string(b))
	}
	if a.History != nil {
		if rf, err := a.History.GetRecent(path); err == nil && rf != nil {
			a.Editor.Cursor.Y = rf.CursorY
			a.Editor.Cursor.X = rf.CursorX
			a.Editor.ClampCursor()
		}
		_ = a.History.Touch(path, a.Editor.Cursor.X, a.Editor.Cursor.Y)
	}
	return nil
}

// splitLines breaks file contents into buffer lines, dropping the trailing
// newline the way most editors do.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Save writes the buffer to disk. The target is the first non-flag arg,
// else the open file, else "untitled". Writing over a different existing
// file whose contents would change asks for confirmation first, unless
// --force is given. An unchanged buffer is not rewritten.
func (a *App) Save(args []string) error {
	newContent := strings.Join(a.Editor.Content, "\n")

	var path string
	force := false
	for _, arg := range args {
		if arg == "--force" {
			force = true
			continue
		}
		if path == "" {
			path = arg
		}
	}
	pathIsCurrentFile := false
	if path == "" {
		if a.FilePath != "" {
			path = a.FilePath
			pathIsCurrentFile = true
		} else {
			path = "untitled"
		}
	} else if a.FilePath != "" && filepath.Clean(path) == filepath.Clean(a.FilePath) {
		pathIsCurrentFile = true
	}

	var hasChanges bool
	if _, err := os.Stat(path); err == nil {
		hasChanges, err = a.fileHasChanges(newContent, path)
		if err != nil {
			return err
		}
		if !pathIsCurrentFile && hasChanges && !force && a.PopupResult == PopupResultNone {
			a.OpenPopup(&Popup{Kind: PopupConfirm, Title: "Confirm overwrite of file", Message: path})
			a.Pending = append(a.Pending, PendingState{Kind: PendingSaving, Path: path})
			return nil
		}
	} else {
		hasChanges = newContent != ""
		if parent := filepath.Dir(path); parent != "." && parent != "" {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("create parent dir: %w", err)
			}
		}
	}

	if !hasChanges {
		a.Status = fmt.Sprintf("%s unchanged", path)
		return nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if _, err := w.WriteString(newContent); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.Status = fmt.Sprintf("saved %s", path)
	if a.History != nil {
		if v, err := a.History.RecordSnapshot(path, a.Editor.Content, a.AuthorName, "save"); err == nil {
			a.Status = fmt.Sprintf("saved %s (v%d)", path, v)
		}
		_ = a.History.Touch(path, a.Editor.Cursor.X, a.Editor.Cursor.Y)
	}
	return nil
}

// SaveAndExit saves the buffer and quits, deferring the quit behind a save
// confirmation when one is raised.
func (a *App) SaveAndExit(args []string) error {
	if err := a.Save(args); err != nil {
		return err
	}
	for _, p := range a.Pending {
		if p.Kind == PendingSaving {
			a.Pending = append(a.Pending, PendingState{Kind: PendingQuitting})
			return nil
		}
	}
	a.Quit()
	return nil
}

// fileHasChanges reports whether the buffer differs from what is on disk.
func (a *App) fileHasChanges(editorContent, filePath string) (bool, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return false, err
	}
	return string(b) != editorContent, nil
}
