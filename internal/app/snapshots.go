package app

import "fmt"

// RestoreSnapshot swaps the buffer for a stored history version of the open
// file. The replacement is one undo step.
func (a *App) RestoreSnapshot(version int) error {
	if a.History == nil {
		return fmt.Errorf("history store unavailable")
	}
	if a.FilePath == "" {
		return fmt.Errorf("no file open")
	}
	lines, err := a.History.RestoreSnapshot(a.FilePath, version)
	if err != nil {
		return err
	}
	a.Editor.SetContent(lines)
	a.Status = fmt.Sprintf("restored %s v%d", a.FilePath, version)
	return nil
}

// SnapshotSummary describes the stored history of the open file, formatted
// for display.
func (a *App) SnapshotSummary() (string, error) {
	if a.History == nil {
		return "", fmt.Errorf("history store unavailable")
	}
	if a.FilePath == "" {
		return "", fmt.Errorf("no file open")
	}
	snaps, err := a.History.ListSnapshots(a.FilePath)
	if err != nil {
		return "", err
	}
	if len(snaps) == 0 {
		return "no snapshots recorded", nil
	}
	out := ""
	for _, s := range snaps {
		out += fmt.Sprintf("v%d  %s  %s\n", s.Version, s.CreatedAt, s.Operation)
	}
	return out, nil
}
