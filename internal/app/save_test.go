package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calliglyph/calliglyph/internal/history"
)

func TestSaveWritesNewFile(t *testing.T) {
	hist := newFakeHistory()
	a := New(hist)
	a.Editor.Content = []string{"hello", "world"}
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := a.Save([]string{path}); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "hello\nworld" {
		t.Fatalf("unexpected file contents %q", string(b))
	}
	if len(hist.snapshots[path]) != 1 {
		t.Fatalf("expected one snapshot, got %d", len(hist.snapshots[path]))
	}
	if a.Status != "saved "+path+" (v1)" {
		t.Fatalf("unexpected status %q", a.Status)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	a := New(nil)
	a.Editor.Content = []string{"x"}
	path := filepath.Join(t.TempDir(), "deep", "nested", "out.txt")
	if err := a.Save([]string{path}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
}

func TestSaveSkipsUnchangedFile(t *testing.T) {
	hist := newFakeHistory()
	a := New(hist)
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("same"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	a.FilePath = path
	a.Editor.Content = []string{"same"}
	if err := a.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(hist.snapshots[path]) != 0 {
		t.Fatalf("expected no snapshot for unchanged file")
	}
	if a.Status != path+" unchanged" {
		t.Fatalf("unexpected status %q", a.Status)
	}
}

func TestSaveOverDifferentFileAsksForConfirmation(t *testing.T) {
	a := New(nil)
	a.FilePath = "current.txt"
	a.Editor.Content = []string{"new content"}
	other := filepath.Join(t.TempDir(), "other.txt")
	if err := os.WriteFile(other, []byte("old content"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := a.Save([]string{other}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if a.Popup == nil || a.Popup.Kind != PopupConfirm {
		t.Fatalf("expected confirmation popup, got %#v", a.Popup)
	}
	if len(a.Pending) != 1 || a.Pending[0].Kind != PendingSaving || a.Pending[0].Path != other {
		t.Fatalf("expected pending save, got %#v", a.Pending)
	}
	b, _ := os.ReadFile(other)
	if string(b) != "old content" {
		t.Fatalf("file must not be written before confirmation, got %q", string(b))
	}
}

func TestSaveOverDifferentFileWithForce(t *testing.T) {
	a := New(nil)
	a.FilePath = "current.txt"
	a.Editor.Content = []string{"new content"}
	other := filepath.Join(t.TempDir(), "other.txt")
	if err := os.WriteFile(other, []byte("old content"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := a.Save([]string{other, "--force"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if a.Popup != nil {
		t.Fatalf("expected no popup with --force")
	}
	b, _ := os.ReadFile(other)
	if string(b) != "new content" {
		t.Fatalf("expected file overwritten, got %q", string(b))
	}
}

func TestConfirmedSaveRunsAndChainedQuitFollows(t *testing.T) {
	a := New(nil)
	a.Running = true
	a.FilePath = "current.txt"
	a.Editor.Content = []string{"new content"}
	other := filepath.Join(t.TempDir(), "other.txt")
	if err := os.WriteFile(other, []byte("old content"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := a.SaveAndExit([]string{other}); err != nil {
		t.Fatalf("save and exit: %v", err)
	}
	if !a.Running {
		t.Fatalf("expected quit to wait for confirmation")
	}
	if len(a.Pending) != 2 || a.Pending[1].Kind != PendingQuitting {
		t.Fatalf("expected queued quit behind pending save, got %#v", a.Pending)
	}

	a.PopupResult = PopupResultYes
	a.HandleConfirmationResponse()
	if a.Running {
		t.Fatalf("expected app to quit after confirmed save")
	}
	b, _ := os.ReadFile(other)
	if string(b) != "new content" {
		t.Fatalf("expected file overwritten after confirmation, got %q", string(b))
	}
}

func TestSaveAndExitQuitsImmediatelyWithoutConfirmation(t *testing.T) {
	a := New(nil)
	a.Running = true
	path := filepath.Join(t.TempDir(), "out.txt")
	a.Editor.Content = []string{"x"}
	if err := a.SaveAndExit([]string{path}); err != nil {
		t.Fatalf("save and exit: %v", err)
	}
	if a.Running {
		t.Fatalf("expected immediate quit")
	}
}

func TestLoadReadsFile(t *testing.T) {
	a := New(nil)
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := a.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(a.Editor.Content) != 2 || a.Editor.Content[0] != "one" || a.Editor.Content[1] != "two" {
		t.Fatalf("unexpected content %#v", a.Editor.Content)
	}
	if !a.Running || a.Area != AreaEditor {
		t.Fatalf("expected running editor after load")
	}
}

func TestLoadCreatesMissingFile(t *testing.T) {
	a := New(nil)
	path := filepath.Join(t.TempDir(), "new.txt")
	if err := a.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file created: %v", err)
	}
	if len(a.Editor.Content) != 1 || a.Editor.Content[0] != "" {
		t.Fatalf("expected single blank line, got %#v", a.Editor.Content)
	}
}

func TestLoadRestoresCursorFromRecentFiles(t *testing.T) {
	hist := newFakeHistory()
	a := New(hist)
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("one\ntwo three\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	hist.recent[path] = &history.RecentFile{Path: path, CursorX: 4, CursorY: 1}
	if err := a.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if a.Editor.Cursor.X != 4 || a.Editor.Cursor.Y != 1 {
		t.Fatalf("expected cursor restored to (4,1), got (%d,%d)", a.Editor.Cursor.X, a.Editor.Cursor.Y)
	}
	if _, ok := hist.touched[path]; !ok {
		t.Fatalf("expected load to touch the recent-file entry")
	}
}

func TestLoadClampsStaleCursorIntoBuffer(t *testing.T) {
	hist := newFakeHistory()
	a := New(hist)
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("ab\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	hist.recent[path] = &history.RecentFile{Path: path, CursorX: 10, CursorY: 5}
	if err := a.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if a.Editor.Cursor.Y != 0 || a.Editor.Cursor.X != 2 {
		t.Fatalf("expected cursor clamped to (2,0), got (%d,%d)", a.Editor.Cursor.X, a.Editor.Cursor.Y)
	}
	a.BackspaceAll()
	if a.Editor.Content[0] != "a" {
		t.Fatalf("expected backspace to work after clamp, got %#v", a.Editor.Content)
	}
}

func TestLoadEmptyPathStartsBlankBuffer(t *testing.T) {
	a := New(nil)
	if err := a.Load(""); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(a.Editor.Content) != 1 || a.Editor.Content[0] != "" {
		t.Fatalf("expected blank buffer, got %#v", a.Editor.Content)
	}
}

func TestSplitLinesNormalizesCRLF(t *testing.T) {
	got := splitLines("a\r\nb\r\n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected lines %#v", got)
	}
}
