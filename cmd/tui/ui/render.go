package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/calliglyph/calliglyph/internal/app"
	"github.com/calliglyph/calliglyph/internal/config"
	"github.com/calliglyph/calliglyph/internal/editor"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#0f766e")).Padding(0, 1)
	titleBarStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#0ea5a4"))
	paneStyle      = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#7dd3fc"))
	paneBlurStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#334155"))
	gutterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569"))
	selectionStyle = lipgloss.NewStyle().Background(lipgloss.Color("#334155"))
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
	statusStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#0b1226")).Foreground(lipgloss.Color("#cbd5e1")).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#94a3b8"))
	popupStyle     = lipgloss.NewStyle().BorderStyle(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("#c084fc")).Padding(1, 2)
	popupErrStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("#f87171")).Padding(1, 2)
	buttonStyle    = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#cbd5e1"))
	buttonOnStyle  = lipgloss.NewStyle().Padding(0, 2).Reverse(true).Bold(true)
)

func (m *EditorModel) View() string {
	if m.showPicker {
		return m.renderPicker()
	}

	title := m.app.FilePath
	if title == "" {
		title = "untitled"
	}
	titleBar := m.renderTitleBox(" CalliGlyph · " + title + " ")

	var body string
	if m.app.Area == app.AreaPopup && m.app.Popup != nil {
		body = m.renderPopup()
	} else {
		body = m.renderEditorPane()
	}

	status := m.renderStatusBar()
	cmdline := m.renderCommandLine()
	return lipgloss.JoinVertical(lipgloss.Left, titleBar, body, status, cmdline)
}

// renderTitleBox produces a consistent title bar matching the main page.
func (m *EditorModel) renderTitleBox(text string) string {
	w := m.width
	if w < 10 {
		w = 10
	}
	title := titleStyle.Render(runewidth.Truncate(text, w-4, "…"))
	inner := lipgloss.Place(w-2, 1, lipgloss.Center, lipgloss.Center, title)
	return titleBarStyle.Width(w).Render(inner)
}

func (m *EditorModel) renderEditorPane() string {
	e := m.app.Editor
	h := m.paneHeight()
	innerW := m.width - 2
	if innerW < 10 {
		innerW = 10
	}
	gutterW := len(fmt.Sprintf("%d", len(e.Content)+1))
	if gutterW < 2 {
		gutterW = 2
	}

	var b strings.Builder
	for row := 0; row < h; row++ {
		y := e.ScrollOffset + row
		if y > 0 && y >= len(e.Content) && y != e.Cursor.Y {
			b.WriteString(gutterStyle.Render(strings.Repeat(" ", gutterW) + "~"))
		} else {
			num := fmt.Sprintf("%*d ", gutterW, y+1)
			b.WriteString(gutterStyle.Render(num))
			b.WriteString(m.renderLine(y, innerW-gutterW-1))
		}
		if row < h-1 {
			b.WriteString("\n")
		}
	}
	style := paneStyle
	if m.app.Area != app.AreaEditor {
		style = paneBlurStyle
	}
	return style.Width(innerW).Height(h).Render(b.String())
}

// renderLine renders one buffer line with tab expansion, selection
// highlighting, and the cursor cell.
func (m *EditorModel) renderLine(y, maxW int) string {
	e := m.app.Editor
	var line []rune
	if y < len(e.Content) {
		line = []rune(e.Content[y])
	}
	selFrom, selTo := selectionRangeOnLine(e, y, len(line))
	cursorHere := m.app.Area == app.AreaEditor && m.cursorVisible && e.Cursor.Y == y
	cursorX := e.Cursor.X
	if cursorX > len(line) {
		cursorX = len(line)
	}

	var b strings.Builder
	col := 0
	for i, r := range line {
		cell := string(r)
		if r == '\t' {
			next := (col/config.TabWidth + 1) * config.TabWidth
			cell = strings.Repeat(" ", next-col)
			col = next
		} else {
			col += runewidth.RuneWidth(r)
		}
		if col > maxW {
			break
		}
		switch {
		case cursorHere && i == cursorX:
			b.WriteString(cursorStyle.Render(cell))
		case i >= selFrom && i < selTo:
			b.WriteString(selectionStyle.Render(cell))
		default:
			b.WriteString(cell)
		}
	}
	if cursorHere && cursorX >= len(line) {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

// selectionRangeOnLine returns the half-open selected rune range on line y.
func selectionRangeOnLine(e *editor.Editor, y, lineLen int) (int, int) {
	if !e.HasSelection() {
		return 0, 0
	}
	s, en := *e.SelStart, *e.SelEnd
	if en.Less(s) {
		s, en = en, s
	}
	if y < s.Y || y > en.Y {
		return 0, 0
	}
	from, to := 0, lineLen
	if y == s.Y {
		from = s.X
	}
	if y == en.Y {
		to = en.X
	}
	if from > lineLen {
		from = lineLen
	}
	if to > lineLen {
		to = lineLen
	}
	return from, to
}

func (m *EditorModel) renderStatusBar() string {
	a := m.app
	mode := "EDITOR"
	switch a.Area {
	case app.AreaCommandLine:
		mode = "COMMAND"
	case app.AreaPopup:
		mode = "POPUP"
	}
	pos := fmt.Sprintf("Ln %d, Col %d", a.Editor.Cursor.Y+1, a.Editor.VisualCursorX+1)
	status := mode + " • " + pos
	if a.IsTextSelected() {
		status += " • SELECT"
	}
	if a.Status != "" {
		status += " • " + a.Status
	}
	w := m.width
	if w < 10 {
		w = 10
	}
	return statusStyle.Width(w).Render(runewidth.Truncate(status, w-2, "…"))
}

func (m *EditorModel) renderCommandLine() string {
	a := m.app
	if a.Area != app.AreaCommandLine {
		return footerStyle.Render("esc command line • ctrl+s save • ctrl+q quit • :help")
	}
	line := []rune(a.CommandLine.Input)
	x := a.CommandLine.Cursor.X
	if x > len(line) {
		x = len(line)
	}
	var b strings.Builder
	b.WriteString(":")
	for i, r := range line {
		if m.cursorVisible && i == x {
			b.WriteString(cursorStyle.Render(string(r)))
		} else {
			b.WriteString(string(r))
		}
	}
	if m.cursorVisible && x >= len(line) {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

func (m *EditorModel) renderPopup() string {
	p := m.app.Popup
	style := popupStyle
	body := p.Message
	if p.Kind == app.PopupConfirm {
		yesBtn, noBtn := buttonStyle.Render("Yes"), buttonOnStyle.Render("No")
		if m.confirmYes {
			yesBtn, noBtn = buttonOnStyle.Render("Yes"), buttonStyle.Render("No")
		}
		body = p.Message + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, yesBtn, "  ", noBtn)
	} else {
		style = popupErrStyle
		body = p.Message + "\n\n" + footerStyle.Render("enter to dismiss")
	}
	box := style.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(p.Title), "", body))
	w := m.width
	if w < 10 {
		w = 10
	}
	return lipgloss.Place(w, m.paneHeight()+2, lipgloss.Center, lipgloss.Center, box)
}
