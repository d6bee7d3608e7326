package editor

import "github.com/calliglyph/calliglyph/internal/config"

// MoveCursor moves the cursor by (dx, dy). X clamps to the target line
// length, moving right past the end of a line wraps to the next line only
// when one exists, and Y never goes below zero. Moving below the last line
// is allowed: writes there extend the buffer.
func (e *Editor) MoveCursor(dx, dy int) {
	if dy != 0 {
		e.Cursor.Y += dy
		if e.Cursor.Y < 0 {
			e.Cursor.Y = 0
		}
		if l := len(e.line(e.Cursor.Y)); e.Cursor.X > l {
			e.Cursor.X = l
		}
	}
	if dx != 0 {
		nx := e.Cursor.X + dx
		if nx < 0 {
			nx = 0
		}
		lineLen := len(e.line(e.Cursor.Y))
		if nx > lineLen {
			if dx > 0 && e.Cursor.Y+1 < len(e.Content) {
				e.Cursor.Y++
				nx = 0
			} else {
				nx = lineLen
			}
		}
		e.Cursor.X = nx
	}
	e.syncVisualCursor()
}

// MoveSelectionCursor extends the selection while moving the cursor. With no
// active selection both bounds start at the cursor; afterwards the bound the
// cursor crossed follows it, keeping SelStart before SelEnd.
func (e *Editor) MoveSelectionCursor(dx, dy int) {
	if !e.HasSelection() {
		s, en := e.Cursor, e.Cursor
		e.SelStart, e.SelEnd = &s, &en
	}
	e.MoveCursor(dx, dy)
	c := e.Cursor
	if c.Less(*e.SelStart) {
		p := c
		e.SelStart = &p
	} else if e.SelEnd.Less(c) {
		p := c
		e.SelEnd = &p
	}
}

// syncVisualCursor recomputes the terminal column for the logical cursor,
// expanding tabs to the next tab stop.
func (e *Editor) syncVisualCursor() {
	e.VisualCursorX = VisualWidth(e.line(e.Cursor.Y), e.Cursor.X)
}

// VisualWidth returns the terminal column after the first upto runes of
// line. Tabs advance to the next multiple of the tab width; every other
// rune counts as one column.
func VisualWidth(line []rune, upto int) int {
	col := 0
	for i := 0; i < upto && i < len(line); i++ {
		if line[i] == '\t' {
			col = (col/config.TabWidth + 1) * config.TabWidth
		} else {
			col++
		}
	}
	return col
}
