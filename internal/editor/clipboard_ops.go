package editor

// CopySelection returns the selected text as lines: the suffix of the first
// selected line, any whole middle lines, and the prefix of the last. Without
// a selection it returns an empty slice.
func (e *Editor) CopySelection() []string {
	if !e.HasSelection() {
		return nil
	}
	s, en := e.selectionBounds()
	s, en = e.clampPosition(s), e.clampPosition(en)
	if s.Y == en.Y {
		line := e.line(s.Y)
		sx, ex := clampIndex(s.X, len(line)), clampIndex(en.X, len(line))
		return []string{string(line[sx:ex])}
	}
	out := make([]string, 0, en.Y-s.Y+1)
	first := e.line(s.Y)
	out = append(out, string(first[clampIndex(s.X, len(first)):]))
	for y := s.Y + 1; y < en.Y; y++ {
		out = append(out, string(e.line(y)))
	}
	last := e.line(en.Y)
	out = append(out, string(last[:clampIndex(en.X, len(last))]))
	return out
}

// CutSelection copies the selected lines and removes the range from the
// buffer.
func (e *Editor) CutSelection() []string {
	if !e.HasSelection() {
		return nil
	}
	lines := e.CopySelection()
	e.pushUndo()
	e.removeSelection()
	return lines
}

// Paste splices lines into the buffer at the cursor. A single-line clip is
// inserted in place; a multi-line clip splits the current line, with the
// remainder appended after the clip's last line. Pasting into an empty
// buffer adopts the clip verbatim.
func (e *Editor) Paste(lines []string) {
	if len(lines) == 0 {
		return
	}
	e.pushUndo()
	if len(e.Content) == 0 {
		e.Content = append([]string{}, lines...)
		e.Cursor = Position{X: len([]rune(lines[len(lines)-1])), Y: len(lines) - 1}
		e.syncVisualCursor()
		return
	}
	e.ensureLine(e.Cursor.Y)
	line := e.line(e.Cursor.Y)
	if e.Cursor.X > len(line) {
		e.Cursor.X = len(line)
	}
	head, tail := string(line[:e.Cursor.X]), string(line[e.Cursor.X:])
	if len(lines) == 1 {
		e.Content[e.Cursor.Y] = head + lines[0] + tail
		e.Cursor.X += len([]rune(lines[0]))
		e.syncVisualCursor()
		return
	}
	e.Content[e.Cursor.Y] = head + lines[0]
	inserted := append([]string{}, lines[1:]...)
	inserted[len(inserted)-1] += tail
	rest := append([]string{}, e.Content[e.Cursor.Y+1:]...)
	e.Content = append(e.Content[:e.Cursor.Y+1], append(inserted, rest...)...)
	e.Cursor.Y += len(lines) - 1
	e.Cursor.X = len([]rune(lines[len(lines)-1]))
	e.syncVisualCursor()
}
