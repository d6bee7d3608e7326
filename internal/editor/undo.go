package editor

// maxUndoDepth bounds memory held by the history stacks.
const maxUndoDepth = 500

type snapshot struct {
	content []string
	cursor  Position
}

func (e *Editor) capture() snapshot {
	return snapshot{content: append([]string{}, e.Content...), cursor: e.Cursor}
}

func (e *Editor) restore(s snapshot) {
	e.Content = append([]string{}, s.content...)
	e.Cursor = s.cursor
	e.ClearSelection()
	e.syncVisualCursor()
}

// pushUndo records the current buffer before a mutation. Any pending redo
// history is invalidated by a new edit.
func (e *Editor) pushUndo() {
	e.undo = append(e.undo, e.capture())
	if len(e.undo) > maxUndoDepth {
		e.undo = e.undo[1:]
	}
	e.redo = nil
}

// Undo reverts the most recent edit.
func (e *Editor) Undo() error {
	if len(e.undo) == 0 {
		return ErrNothingToUndo
	}
	s := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.redo = append(e.redo, e.capture())
	e.restore(s)
	return nil
}

// Redo reapplies the most recently undone edit.
func (e *Editor) Redo() error {
	if len(e.redo) == 0 {
		return ErrNothingToRedo
	}
	s := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.undo = append(e.undo, e.capture())
	e.restore(s)
	return nil
}
