// Package ui contains the Bubble Tea presentation layer for the editor:
// the model, key dispatch, rendering, and the recent-files picker.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calliglyph/calliglyph/internal/app"
	"github.com/calliglyph/calliglyph/internal/config"
	"github.com/calliglyph/calliglyph/internal/history"
)

// EditorModel is the Bubble Tea model wrapping the application state.
type EditorModel struct {
	app *app.App

	width  int
	height int

	cursorVisible bool

	// confirmYes tracks the highlighted button in a confirmation popup.
	confirmYes bool

	// start screen picker shown when no file was named on the command line
	showPicker bool
	picker     list.Model
}

type blinkMsg time.Time

// NewModel constructs the editor model. recents feeds the start screen
// picker; it is shown only when the app has no file loaded yet.
func NewModel(a *app.App, recents []history.RecentFile) *EditorModel {
	m := &EditorModel{app: a, cursorVisible: true, confirmYes: true}
	if a.FilePath == "" && len(recents) > 0 {
		m.showPicker = true
		m.picker = newPickerList(recents)
	}
	return m
}

// NewProgram constructs the tea.Program for the editor.
func NewProgram(a *app.App, recents []history.RecentFile) *tea.Program {
	return tea.NewProgram(NewModel(a, recents), tea.WithAltScreen())
}

func blinkTick() tea.Cmd {
	return tea.Tick(config.CursorBlinkInterval, func(t time.Time) tea.Msg {
		return blinkMsg(t)
	})
}

func (m *EditorModel) Init() tea.Cmd {
	return blinkTick()
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case blinkMsg:
		m.cursorVisible = !m.cursorVisible
		return m, blinkTick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showPicker {
			m.picker.SetSize(m.width-4, m.height-4)
		}
		m.ensureCursorVisible()
		return m, nil
	case tea.KeyMsg:
		mm, cmd := dispatchKey(m, msg)
		em := mm.(*EditorModel)
		if !em.app.Running && !em.showPicker {
			return em, tea.Quit
		}
		return em, cmd
	}
	return m, nil
}

// paneHeight is the number of buffer rows visible in the editor pane.
func (m *EditorModel) paneHeight() int {
	// title, status and command rows plus pane border
	h := m.height - 5
	if h < 1 {
		h = 1
	}
	return h
}

// ensureCursorVisible scrolls the viewport so the cursor line stays on
// screen after edits and movement.
func (m *EditorModel) ensureCursorVisible() {
	e := m.app.Editor
	h := m.paneHeight()
	if e.Cursor.Y < e.ScrollOffset {
		e.ScrollOffset = e.Cursor.Y
	}
	if e.Cursor.Y >= e.ScrollOffset+h {
		e.ScrollOffset = e.Cursor.Y - h + 1
	}
	if e.ScrollOffset < 0 {
		e.ScrollOffset = 0
	}
}
