package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calliglyph/calliglyph/internal/app"
)

func typeCommand(m *EditorModel, input string) {
	dispatchKey(m, key(tea.KeyEsc))
	for _, r := range input {
		if r == ' ' {
			dispatchKey(m, key(tea.KeySpace))
			continue
		}
		dispatchKey(m, runes(string(r)))
	}
	dispatchKey(m, key(tea.KeyEnter))
}

func TestQuitCommand(t *testing.T) {
	m := newTestModel()
	typeCommand(m, "q")
	if m.app.Running {
		t.Fatalf("expected quit command to stop the app")
	}
}

func TestSaveCommandWritesFile(t *testing.T) {
	m := newTestModel()
	path := filepath.Join(t.TempDir(), "out.txt")
	dispatchKey(m, runes("hello"))
	typeCommand(m, "save "+path)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "hello" {
		t.Fatalf("unexpected contents %q", string(b))
	}
	if m.app.Area != app.AreaEditor {
		t.Fatalf("expected focus back in editor, got %v", m.app.Area)
	}
	if m.app.CommandLine.Input != "" {
		t.Fatalf("expected command line cleared, got %q", m.app.CommandLine.Input)
	}
}

func TestSaveQuitCommand(t *testing.T) {
	m := newTestModel()
	path := filepath.Join(t.TempDir(), "out.txt")
	dispatchKey(m, runes("bye"))
	typeCommand(m, "sq "+path)
	if m.app.Running {
		t.Fatalf("expected save-and-quit to stop the app")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file written: %v", err)
	}
}

func TestUnknownCommandOpensErrorPopup(t *testing.T) {
	m := newTestModel()
	typeCommand(m, "bogus")
	if m.app.Popup == nil || m.app.Popup.Kind != app.PopupError {
		t.Fatalf("expected error popup, got %#v", m.app.Popup)
	}
	if !strings.Contains(m.app.Popup.Message, "bogus") {
		t.Fatalf("expected message to name the command, got %q", m.app.Popup.Message)
	}
}

func TestHelpCommandOpensPopup(t *testing.T) {
	m := newTestModel()
	typeCommand(m, "help")
	if m.app.Popup == nil || m.app.Popup.Title != "Help" {
		t.Fatalf("expected help popup, got %#v", m.app.Popup)
	}
	if !strings.Contains(m.app.Popup.Message, "restore") {
		t.Fatalf("expected command list in help text")
	}
}

func TestRestoreCommandRequiresVersion(t *testing.T) {
	m := newTestModel()
	typeCommand(m, "restore")
	if m.app.Popup == nil || m.app.Popup.Kind != app.PopupError {
		t.Fatalf("expected error popup for missing version")
	}
}

func TestRestoreCommandRejectsBadVersion(t *testing.T) {
	m := newTestModel()
	typeCommand(m, "restore abc")
	if m.app.Popup == nil || !strings.Contains(m.app.Popup.Message, "invalid version") {
		t.Fatalf("expected invalid version error, got %#v", m.app.Popup)
	}
}

func TestHistoryCommandWithoutStoreFails(t *testing.T) {
	m := newTestModel()
	m.app.FilePath = "x.txt"
	typeCommand(m, "history")
	if m.app.Popup == nil || m.app.Popup.Title != "Command failed" {
		t.Fatalf("expected failure popup without a history store, got %#v", m.app.Popup)
	}
}

func TestEmptyCommandReturnsToEditor(t *testing.T) {
	m := newTestModel()
	typeCommand(m, "")
	if m.app.Area != app.AreaEditor {
		t.Fatalf("expected editor focus, got %v", m.app.Area)
	}
}
