// Package app holds the framework-agnostic editor application model: the
// buffer, command line, clipboard, popup state, and the pending save/quit
// queue. The TUI layer stays presentation-only on top of it.
package app

import (
	"fmt"

	"github.com/calliglyph/calliglyph/internal/clipboard"
	"github.com/calliglyph/calliglyph/internal/editor"
	"github.com/calliglyph/calliglyph/internal/history"
)

// ActiveArea is the part of the screen receiving input.
type ActiveArea int

const (
	AreaEditor ActiveArea = iota
	AreaCommandLine
	AreaPopup
)

// PendingKind identifies a deferred action awaiting popup confirmation.
type PendingKind int

const (
	PendingSaving PendingKind = iota
	PendingQuitting
)

// PendingState is one entry in the deferred-action queue.
type PendingState struct {
	Kind PendingKind
	Path string
}

// PopupKind selects the modal style.
type PopupKind int

const (
	PopupConfirm PopupKind = iota
	PopupError
)

// Popup is a modal shown over the editor.
type Popup struct {
	Kind    PopupKind
	Title   string
	Message string
}

// PopupResult is the user's answer to the active popup.
type PopupResult int

const (
	PopupResultNone PopupResult = iota
	PopupResultYes
	PopupResultNo
	PopupResultAffirmed
)

// HistoryStore is the persistence surface the app needs; *history.Repository
// satisfies it and tests provide fakes.
type HistoryStore interface {
	RecordSnapshot(path string, lines []string, author string, operation string) (int, error)
	Touch(path string, cursorX, cursorY int) error
	GetRecent(path string) (*history.RecentFile, error)
	ListSnapshots(path string) ([]history.Snapshot, error)
	RestoreSnapshot(path string, version int) ([]string, error)
}

// App is the editor application state.
type App struct {
	Running     bool
	Area        ActiveArea
	Editor      *editor.Editor
	CommandLine *CommandLine
	Clipboard   *clipboard.Clipboard
	FilePath    string
	Popup       *Popup
	PopupResult PopupResult
	Pending     []PendingState
	// Status is a one-line message shown in the status bar after commands.
	Status string

	History    HistoryStore
	AuthorName string
}

// New constructs an App with an empty buffer. history may be nil; snapshot
// recording is then skipped.
func New(hist HistoryStore) *App {
	return &App{
		Editor:      editor.New(),
		CommandLine: &CommandLine{},
		Clipboard:   clipboard.New(),
		History:     hist,
	}
}

// IsTextSelected reports whether an editor selection is active.
func (a *App) IsTextSelected() bool {
	return a.Editor.HasSelection()
}

// WriteAllChar writes c, replacing the selection when one is active.
func (a *App) WriteAllChar(c rune) {
	if a.IsTextSelected() {
		a.Editor.WriteCharReplacingSelection(c)
		return
	}
	a.Editor.WriteChar(c)
}

// BackspaceAll removes the selection when active, otherwise the rune before
// the cursor.
func (a *App) BackspaceAll() {
	if a.IsTextSelected() {
		a.Editor.BackspaceSelection()
		return
	}
	a.Editor.Backspace()
}

// DeleteAll blanks the selection when active, otherwise removes the rune
// after the cursor.
func (a *App) DeleteAll() {
	if a.IsTextSelected() {
		a.Editor.DeleteSelection()
		return
	}
	a.Editor.Delete()
}

// Tab inserts a tab character in the editor.
func (a *App) Tab() { a.Editor.Tab() }

// Enter splits the current editor line at the cursor.
func (a *App) Enter() { a.Editor.Enter() }

// MoveAllCursor moves the cursor, extending the selection while shift is
// held and dropping it otherwise.
func (a *App) MoveAllCursor(dx, dy int, shiftHeld bool) {
	if shiftHeld {
		a.Editor.MoveSelectionCursor(dx, dy)
		return
	}
	a.Editor.MoveCursor(dx, dy)
	a.Editor.ClearSelection()
}

// MoveScrollOffset shifts the editor viewport.
func (a *App) MoveScrollOffset(delta int) {
	a.Editor.MoveScrollOffset(delta)
}

// ToggleActiveArea switches focus between the editor and the command line.
// Popup focus is only entered through OpenPopup.
func (a *App) ToggleActiveArea() {
	switch a.Area {
	case AreaEditor:
		a.Area = AreaCommandLine
	case AreaCommandLine:
		a.Area = AreaEditor
	}
}

// OpenPopup shows a modal and routes input to it.
func (a *App) OpenPopup(p *Popup) {
	a.Popup = p
	a.Area = AreaPopup
}

// ClosePopup dismisses the modal and returns focus to the editor.
func (a *App) ClosePopup() {
	a.Popup = nil
	a.Area = AreaEditor
}

// Quit stops the application loop and records the last cursor position for
// the open file.
func (a *App) Quit() {
	a.Running = false
	if a.History != nil && a.FilePath != "" {
		_ = a.History.Touch(a.FilePath, a.Editor.Cursor.X, a.Editor.Cursor.Y)
	}
}

// CopySelectedText copies the selected range to the clipboard and clears
// the selection.
func (a *App) CopySelectedText() {
	lines := a.Editor.CopySelection()
	a.Clipboard.Copy(lines)
	a.Editor.ClearSelection()
}

// CutSelectedText moves the selected range to the clipboard.
func (a *App) CutSelectedText() {
	lines := a.Editor.CutSelection()
	a.Clipboard.Copy(lines)
	a.Editor.ClearSelection()
}

// PasteText inserts the clipboard contents at the cursor.
func (a *App) PasteText() {
	a.Editor.Paste(a.Clipboard.Lines())
}

// Undo reverts the last edit.
func (a *App) Undo() error {
	if err := a.Editor.Undo(); err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	return nil
}

// Redo reapplies the last undone edit.
func (a *App) Redo() error {
	if err := a.Editor.Redo(); err != nil {
		return fmt.Errorf("redo: %w", err)
	}
	return nil
}

// HandleConfirmationResponse drives the pending queue once a confirmation
// popup has been answered. An accepted save runs, and a queued quit follows
// it; a declined save cancels the whole pending chain.
func (a *App) HandleConfirmationResponse() {
	if len(a.Pending) == 0 {
		return
	}
	state := a.Pending[0]
	switch state.Kind {
	case PendingSaving:
		switch a.PopupResult {
		case PopupResultYes:
			if err := a.Save([]string{state.Path}); err != nil {
				a.OpenPopup(&Popup{Kind: PopupError, Title: "Failed to save file", Message: err.Error()})
				a.PopupResult = PopupResultNone
				a.Pending = nil
				return
			}
			a.PopupResult = PopupResultNone
			a.ClosePopup()
			a.Pending = a.Pending[1:]
			if len(a.Pending) > 0 && a.Pending[0].Kind == PendingQuitting {
				a.Pending = nil
				a.Quit()
			}
		case PopupResultNo:
			a.PopupResult = PopupResultNone
			a.ClosePopup()
			a.Pending = nil
		}
	case PendingQuitting:
		a.Pending = nil
		a.Quit()
	}
}

// HandleErrorResponse dismisses an acknowledged error popup.
func (a *App) HandleErrorResponse() {
	if a.PopupResult == PopupResultAffirmed {
		a.PopupResult = PopupResultNone
		a.ClosePopup()
	}
}
