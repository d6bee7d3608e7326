package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calliglyph/calliglyph/internal/app"
)

const helpText = `Commands:

  save | s [path] [--force]   write the buffer
  sq | savequit [path]        save and exit
  q | quit                    exit without saving
  history                     list snapshots of this file
  restore <version>           load a snapshot into the buffer
  help                        show this help

Keys: arrows move, shift+arrows select, ctrl+c/x/v clipboard,
ctrl+z/ctrl+y undo/redo, ctrl+s save, ctrl+q quit, esc command line`

// executeCommand runs one command line input. The command line is cleared
// and focus returns to the editor unless the command opened a popup.
func executeCommand(m *EditorModel, input string) {
	a := m.app
	a.ResetCommandLine()
	fields := strings.Fields(input)
	if len(fields) == 0 {
		a.ToggleActiveArea()
		return
	}
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "q", "quit":
		a.Quit()
		return
	case "s", "save":
		err = a.Save(args)
	case "sq", "savequit":
		err = a.SaveAndExit(args)
	case "history", "snapshots":
		var summary string
		if summary, err = a.SnapshotSummary(); err == nil {
			a.OpenPopup(&app.Popup{Kind: app.PopupError, Title: "History: " + a.FilePath, Message: summary})
			return
		}
	case "restore":
		if len(args) != 1 {
			err = fmt.Errorf("usage: restore <version>")
			break
		}
		var v int
		if v, err = strconv.Atoi(strings.TrimPrefix(args[0], "v")); err != nil {
			err = fmt.Errorf("invalid version %q", args[0])
			break
		}
		err = a.RestoreSnapshot(v)
	case "help":
		a.OpenPopup(&app.Popup{Kind: app.PopupError, Title: "Help", Message: helpText})
		return
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		a.OpenPopup(&app.Popup{Kind: app.PopupError, Title: "Command failed", Message: err.Error()})
		return
	}
	// a guarded save may have opened a confirmation popup
	if a.Area != app.AreaPopup {
		a.Area = app.AreaEditor
	}
}
