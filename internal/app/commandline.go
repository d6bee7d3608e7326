package app

import "github.com/calliglyph/calliglyph/internal/editor"

// CommandLine is the single-line input at the bottom of the screen.
type CommandLine struct {
	Input  string
	Cursor editor.Position
}

// WriteCharToCommandLine inserts c at the command line cursor.
func (a *App) WriteCharToCommandLine(c rune) {
	line := []rune(a.CommandLine.Input)
	if len(line) < a.CommandLine.Cursor.X {
		a.CommandLine.Cursor.X = len(line)
	}
	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:a.CommandLine.Cursor.X]...)
	out = append(out, c)
	out = append(out, line[a.CommandLine.Cursor.X:]...)
	a.CommandLine.Input = string(out)
	a.MoveCursorInCommandLine(1)
}

// BackspaceOnCommandLine removes the rune before the command line cursor.
func (a *App) BackspaceOnCommandLine() {
	line := []rune(a.CommandLine.Input)
	if a.CommandLine.Cursor.X > 0 && a.CommandLine.Cursor.X <= len(line) {
		out := append([]rune{}, line[:a.CommandLine.Cursor.X-1]...)
		out = append(out, line[a.CommandLine.Cursor.X:]...)
		a.CommandLine.Input = string(out)
		a.MoveCursorInCommandLine(-1)
	}
}

// MoveCursorInCommandLine moves the command line cursor, clamped to the
// input length.
func (a *App) MoveCursorInCommandLine(dx int) {
	maxX := len([]rune(a.CommandLine.Input))
	x := a.CommandLine.Cursor.X + dx
	if x < 0 {
		x = 0
	}
	if x > maxX {
		x = maxX
	}
	a.CommandLine.Cursor.X = x
}

// ResetCommandLine clears the input after a command has run.
func (a *App) ResetCommandLine() {
	a.CommandLine.Input = ""
	a.CommandLine.Cursor = editor.Position{}
}
