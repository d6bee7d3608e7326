// Package editor implements the rune-indexed text buffer behind the editor
// pane: content lines, cursor and selection movement, clipboard-shaped
// copy/cut/paste, and a snapshot-based undo history. Positions are rune
// offsets, so multi-byte characters always count as a single column.
package editor

import "errors"

// ErrNothingToUndo is returned by Undo when the undo stack is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// ErrNothingToRedo is returned by Redo when the redo stack is empty.
var ErrNothingToRedo = errors.New("nothing to redo")

// Position is a rune offset X within line Y.
type Position struct {
	X int
	Y int
}

// Less reports whether p comes before q in document order.
func (p Position) Less(q Position) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Editor holds the buffer content and all cursor state.
type Editor struct {
	Content []string
	Cursor  Position
	// VisualCursorX is the terminal column of the cursor, accounting for
	// tab stops; it trails every cursor or content change.
	VisualCursorX int
	SelStart      *Position
	SelEnd        *Position
	ScrollOffset  int

	undo []snapshot
	redo []snapshot
}

// New returns an empty editor.
func New() *Editor {
	return &Editor{}
}

// line returns the runes of line y, or an empty slice for lines past the end.
func (e *Editor) line(y int) []rune {
	if y < 0 || y >= len(e.Content) {
		return nil
	}
	return []rune(e.Content[y])
}

// ensureLine extends the content with empty lines so that line y exists.
func (e *Editor) ensureLine(y int) {
	for y >= len(e.Content) {
		e.Content = append(e.Content, "")
	}
}

// HasSelection reports whether both selection bounds are set.
func (e *Editor) HasSelection() bool {
	return e.SelStart != nil && e.SelEnd != nil
}

// ClearSelection drops the current selection.
func (e *Editor) ClearSelection() {
	e.SelStart = nil
	e.SelEnd = nil
}

// selectionBounds returns the selection in document order.
func (e *Editor) selectionBounds() (Position, Position) {
	s, en := *e.SelStart, *e.SelEnd
	if en.Less(s) {
		s, en = en, s
	}
	return s, en
}

// WriteChar inserts r at the cursor and advances it. The cursor X is clamped
// to the line length first, and the content grows when the cursor sits past
// the last line.
func (e *Editor) WriteChar(r rune) {
	e.pushUndo()
	e.writeChar(r)
}

func (e *Editor) writeChar(r rune) {
	e.ensureLine(e.Cursor.Y)
	line := e.line(e.Cursor.Y)
	if e.Cursor.X > len(line) {
		e.Cursor.X = len(line)
	}
	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:e.Cursor.X]...)
	out = append(out, r)
	out = append(out, line[e.Cursor.X:]...)
	e.Content[e.Cursor.Y] = string(out)
	e.Cursor.X++
	e.syncVisualCursor()
}

// WriteCharReplacingSelection removes the selected range and writes r where
// the selection began.
func (e *Editor) WriteCharReplacingSelection(r rune) {
	if !e.HasSelection() {
		e.WriteChar(r)
		return
	}
	e.pushUndo()
	e.removeSelection()
	e.writeChar(r)
}

// Tab inserts a literal tab character at the cursor.
func (e *Editor) Tab() {
	e.WriteChar('\t')
}

// Backspace removes the rune before the cursor. At the start of a line the
// line is joined onto the previous one and the cursor lands on the seam.
func (e *Editor) Backspace() {
	// on a virtual line past the buffer there is nothing to remove; land
	// at the end of the last real line, as if joining an empty line up
	if e.Cursor.Y >= len(e.Content) {
		if len(e.Content) == 0 {
			e.Cursor = Position{}
		} else {
			e.Cursor.Y = len(e.Content) - 1
			e.Cursor.X = len(e.line(e.Cursor.Y))
		}
		e.syncVisualCursor()
		return
	}
	line := e.line(e.Cursor.Y)
	if e.Cursor.X > len(line) {
		e.Cursor.X = len(line)
	}
	if e.Cursor.X == 0 && e.Cursor.Y == 0 {
		return
	}
	e.pushUndo()
	if e.Cursor.X > 0 {
		out := append([]rune{}, line[:e.Cursor.X-1]...)
		out = append(out, line[e.Cursor.X:]...)
		e.Content[e.Cursor.Y] = string(out)
		e.Cursor.X--
		e.syncVisualCursor()
		return
	}
	// join with the previous line
	prev := e.line(e.Cursor.Y - 1)
	e.Content[e.Cursor.Y-1] = string(prev) + e.Content[e.Cursor.Y]
	e.Content = append(e.Content[:e.Cursor.Y], e.Content[e.Cursor.Y+1:]...)
	e.Cursor.Y--
	e.Cursor.X = len(prev)
	e.syncVisualCursor()
}

// BackspaceSelection removes the selected range. For a multi-line selection
// the remainder of the last selected line stays on its own line. The cursor
// moves to the selection start.
func (e *Editor) BackspaceSelection() {
	if !e.HasSelection() {
		return
	}
	e.pushUndo()
	e.removeSelection()
}

func (e *Editor) removeSelection() {
	s, en := e.selectionBounds()
	e.ClearSelection()
	if len(e.Content) == 0 {
		e.Cursor = Position{}
		e.syncVisualCursor()
		return
	}
	s, en = e.clampPosition(s), e.clampPosition(en)
	if s.Y == en.Y {
		line := e.line(s.Y)
		sx, ex := clampIndex(s.X, len(line)), clampIndex(en.X, len(line))
		out := append([]rune{}, line[:sx]...)
		out = append(out, line[ex:]...)
		e.Content[s.Y] = string(out)
	} else {
		start := e.line(s.Y)
		end := e.line(en.Y)
		sx := clampIndex(s.X, len(start))
		ex := clampIndex(en.X, len(end))
		kept := []string{string(start[:sx]), string(end[ex:])}
		rest := append([]string{}, e.Content[en.Y+1:]...)
		e.Content = append(e.Content[:s.Y], append(kept, rest...)...)
	}
	e.Cursor = s
	e.syncVisualCursor()
}

// Delete removes the rune after the cursor. When the cursor sits on the last
// rune of a line the next line is joined up instead.
func (e *Editor) Delete() {
	if e.Cursor.Y >= len(e.Content) {
		return
	}
	line := e.line(e.Cursor.Y)
	if e.Cursor.X+1 < len(line) {
		e.pushUndo()
		out := append([]rune{}, line[:e.Cursor.X+1]...)
		out = append(out, line[e.Cursor.X+2:]...)
		e.Content[e.Cursor.Y] = string(out)
		e.syncVisualCursor()
		return
	}
	if e.Cursor.Y+1 < len(e.Content) {
		e.pushUndo()
		e.Content[e.Cursor.Y] = string(line) + e.Content[e.Cursor.Y+1]
		e.Content = append(e.Content[:e.Cursor.Y+1], e.Content[e.Cursor.Y+2:]...)
		e.syncVisualCursor()
	}
}

// DeleteSelection blanks the selected runes with spaces, keeping line widths
// stable; only the tail of the first line goes away when the selection spans
// lines. The cursor moves to the selection end.
func (e *Editor) DeleteSelection() {
	if !e.HasSelection() {
		return
	}
	e.pushUndo()
	s, en := e.selectionBounds()
	e.ClearSelection()
	if len(e.Content) == 0 {
		e.Cursor = Position{}
		e.syncVisualCursor()
		return
	}
	s, en = e.clampPosition(s), e.clampPosition(en)
	if s.Y == en.Y {
		line := e.line(s.Y)
		sx, ex := clampIndex(s.X, len(line)), clampIndex(en.X, len(line))
		for i := sx; i < ex; i++ {
			line[i] = ' '
		}
		e.Content[s.Y] = string(line)
	} else {
		start := e.line(s.Y)
		sx := clampIndex(s.X, len(start))
		e.Content[s.Y] = string(start[:sx])
		for y := s.Y + 1; y < en.Y && y < len(e.Content); y++ {
			mid := e.line(y)
			for i := range mid {
				mid[i] = ' '
			}
			e.Content[y] = string(mid)
		}
		end := e.line(en.Y)
		ex := clampIndex(en.X, len(end))
		for i := 0; i < ex; i++ {
			end[i] = ' '
		}
		e.Content[en.Y] = string(end)
	}
	e.Cursor = en
	e.syncVisualCursor()
}

// Enter splits the current line at the cursor and moves to the start of the
// newly created line.
func (e *Editor) Enter() {
	e.pushUndo()
	e.ensureLine(e.Cursor.Y)
	line := e.line(e.Cursor.Y)
	if e.Cursor.X > len(line) {
		e.Cursor.X = len(line)
	}
	head, tail := string(line[:e.Cursor.X]), string(line[e.Cursor.X:])
	e.Content[e.Cursor.Y] = head
	rest := append([]string{}, e.Content[e.Cursor.Y+1:]...)
	e.Content = append(e.Content[:e.Cursor.Y+1], append([]string{tail}, rest...)...)
	e.Cursor.Y++
	e.Cursor.X = 0
	e.syncVisualCursor()
}

// SetContent replaces the whole buffer as a single undo-able edit, used when
// restoring a history snapshot. The cursor is clamped into the new content.
func (e *Editor) SetContent(lines []string) {
	e.pushUndo()
	e.Content = append([]string{}, lines...)
	e.ClearSelection()
	if e.Cursor.Y >= len(e.Content) {
		e.Cursor.Y = len(e.Content) - 1
		if e.Cursor.Y < 0 {
			e.Cursor.Y = 0
		}
	}
	if l := len(e.line(e.Cursor.Y)); e.Cursor.X > l {
		e.Cursor.X = l
	}
	e.syncVisualCursor()
}

// MoveScrollOffset shifts the vertical scroll position, clamped to the buffer.
func (e *Editor) MoveScrollOffset(delta int) {
	maxOff := len(e.Content) - 1
	if maxOff < 0 {
		maxOff = 0
	}
	e.ScrollOffset += delta
	if e.ScrollOffset < 0 {
		e.ScrollOffset = 0
	}
	if e.ScrollOffset > maxOff {
		e.ScrollOffset = maxOff
	}
}

// clampPosition pulls p back inside the buffer. A position on a virtual
// line past the end maps to the end of the last real line.
func (e *Editor) clampPosition(p Position) Position {
	if len(e.Content) == 0 {
		return Position{}
	}
	if p.Y >= len(e.Content) {
		p.Y = len(e.Content) - 1
		p.X = len(e.line(p.Y))
		return p
	}
	if p.Y < 0 {
		p.Y = 0
	}
	p.X = clampIndex(p.X, len(e.line(p.Y)))
	return p
}

// ClampCursor pulls the cursor back inside the buffer, for callers that set
// it from stored state rather than key movement.
func (e *Editor) ClampCursor() {
	e.Cursor = e.clampPosition(e.Cursor)
	e.syncVisualCursor()
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
