package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calliglyph/calliglyph/internal/app"
	"github.com/calliglyph/calliglyph/internal/db"
	"github.com/calliglyph/calliglyph/internal/history"
)

func TestRestoreCommandRoundTripsWithEditorSave(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	path := filepath.Join(tmp, "notes.txt")
	dbConn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB(): %v", err)
	}
	r := history.NewRepository(dbConn)
	if _, err := r.RecordSnapshot(path, []string{"one", "two"}, "", "save"); err != nil {
		t.Fatalf("RecordSnapshot: %v", err)
	}
	if err := dbConn.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	if err := restoreCmd.Flags().Set("yes", "true"); err != nil {
		t.Fatalf("set --yes: %v", err)
	}
	t.Cleanup(func() { _ = restoreCmd.Flags().Set("yes", "false") })
	if err := restoreCmd.RunE(restoreCmd, []string{path, "1"}); err != nil {
		t.Fatalf("restore: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "one\ntwo" {
		t.Fatalf("expected the editor's save layout, got %q", string(b))
	}

	// reopening the restored file must not report pending changes
	a := app.New(nil)
	if err := a.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := a.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if a.Status != path+" unchanged" {
		t.Fatalf("expected unchanged status, got %q", a.Status)
	}
}
