package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calliglyph/calliglyph/internal/app"
)

// dispatchKey routes KeyMsg to the handler for the active area. Keeping the
// handlers as plain functions makes them directly testable.
func dispatchKey(m *EditorModel, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showPicker {
		return handlePickerKey(m, msg)
	}
	switch m.app.Area {
	case app.AreaPopup:
		return handlePopupKey(m, msg)
	case app.AreaCommandLine:
		return handleCommandLineKey(m, msg)
	default:
		return handleEditorKey(m, msg)
	}
}

// handleEditorKey processes keys while the editor pane has focus.
func handleEditorKey(m *EditorModel, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.app
	switch msg.Type {
	case tea.KeyEsc:
		a.ToggleActiveArea()
		return m, nil
	case tea.KeyUp:
		a.MoveAllCursor(0, -1, false)
	case tea.KeyDown:
		a.MoveAllCursor(0, 1, false)
	case tea.KeyLeft:
		a.MoveAllCursor(-1, 0, false)
	case tea.KeyRight:
		a.MoveAllCursor(1, 0, false)
	case tea.KeyShiftUp:
		a.MoveAllCursor(0, -1, true)
	case tea.KeyShiftDown:
		a.MoveAllCursor(0, 1, true)
	case tea.KeyShiftLeft:
		a.MoveAllCursor(-1, 0, true)
	case tea.KeyShiftRight:
		a.MoveAllCursor(1, 0, true)
	case tea.KeyPgUp:
		a.MoveScrollOffset(-m.paneHeight())
		return m, nil
	case tea.KeyPgDown:
		a.MoveScrollOffset(m.paneHeight())
		return m, nil
	case tea.KeyBackspace:
		a.BackspaceAll()
	case tea.KeyDelete:
		a.DeleteAll()
	case tea.KeyTab:
		a.Tab()
	case tea.KeyEnter:
		a.Enter()
	case tea.KeyCtrlC:
		a.CopySelectedText()
	case tea.KeyCtrlX:
		a.CutSelectedText()
	case tea.KeyCtrlV:
		a.PasteText()
	case tea.KeyCtrlZ:
		if err := a.Undo(); err != nil {
			a.Status = err.Error()
		}
	case tea.KeyCtrlY:
		if err := a.Redo(); err != nil {
			a.Status = err.Error()
		}
	case tea.KeyCtrlS:
		if err := a.Save(nil); err != nil {
			a.OpenPopup(&app.Popup{Kind: app.PopupError, Title: "Failed to save file", Message: err.Error()})
		}
	case tea.KeyCtrlQ:
		a.Quit()
	case tea.KeySpace:
		a.WriteAllChar(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			a.WriteAllChar(r)
		}
	}
	m.ensureCursorVisible()
	return m, nil
}

// handleCommandLineKey processes keys while the command line has focus.
func handleCommandLineKey(m *EditorModel, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.app
	switch msg.Type {
	case tea.KeyEsc:
		a.ResetCommandLine()
		a.ToggleActiveArea()
	case tea.KeyEnter:
		executeCommand(m, a.CommandLine.Input)
	case tea.KeyBackspace:
		a.BackspaceOnCommandLine()
	case tea.KeyLeft:
		a.MoveCursorInCommandLine(-1)
	case tea.KeyRight:
		a.MoveCursorInCommandLine(1)
	case tea.KeySpace:
		a.WriteCharToCommandLine(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			a.WriteCharToCommandLine(r)
		}
	}
	return m, nil
}

// handlePopupKey processes keys while a modal popup has focus.
func handlePopupKey(m *EditorModel, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.app
	if a.Popup == nil {
		a.ClosePopup()
		return m, nil
	}
	switch a.Popup.Kind {
	case app.PopupConfirm:
		switch msg.Type {
		case tea.KeyLeft, tea.KeyRight, tea.KeyTab:
			m.confirmYes = !m.confirmYes
		case tea.KeyEnter:
			if m.confirmYes {
				a.PopupResult = app.PopupResultYes
			} else {
				a.PopupResult = app.PopupResultNo
			}
			a.HandleConfirmationResponse()
		case tea.KeyEsc:
			a.PopupResult = app.PopupResultNo
			a.HandleConfirmationResponse()
		case tea.KeyRunes:
			switch string(msg.Runes) {
			case "y", "Y":
				a.PopupResult = app.PopupResultYes
				a.HandleConfirmationResponse()
			case "n", "N":
				a.PopupResult = app.PopupResultNo
				a.HandleConfirmationResponse()
			}
		}
	case app.PopupError:
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			a.PopupResult = app.PopupResultAffirmed
			a.HandleErrorResponse()
		}
	}
	return m, nil
}
