package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calliglyph/calliglyph/internal/app"
	"github.com/calliglyph/calliglyph/internal/history"
)

// fileItem adapts history.RecentFile for the list component.
type fileItem struct{ rf history.RecentFile }

func (f fileItem) Title() string       { return f.rf.Path }
func (f fileItem) Description() string { return "opened " + f.rf.OpenedAt }
func (f fileItem) FilterValue() string { return f.rf.Path }

func newPickerList(recents []history.RecentFile) list.Model {
	items := make([]list.Item, 0, len(recents))
	for _, rf := range recents {
		items = append(items, fileItem{rf: rf})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "CalliGlyph: recent files"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return l
}

// handlePickerKey processes keys on the start screen. Enter opens the
// selected file, n starts an empty buffer, q quits.
func handlePickerKey(m *EditorModel, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "q", "ctrl+c":
		m.app.Quit()
		return m, tea.Quit
	case "n", "esc":
		m.showPicker = false
		return m, nil
	case "enter":
		if it, ok := m.picker.SelectedItem().(fileItem); ok {
			if err := m.app.Load(it.rf.Path); err != nil {
				m.app.OpenPopup(&app.Popup{Kind: app.PopupError, Title: "Failed to open file", Message: err.Error()})
			}
			m.showPicker = false
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *EditorModel) renderPicker() string {
	body := lipgloss.NewStyle().Padding(1, 2).Render(m.picker.View())
	footer := footerStyle.Render("enter open • n new file • / filter • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
