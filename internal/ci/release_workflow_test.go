package ci

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// helper to find the repo-root-local release workflow file
func findReleaseWorkflow(t *testing.T) string {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	for {
		candidate := filepath.Join(cwd, ".github", "workflows", "release.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}
	t.Fatalf(".github/workflows/release.yml not found in repository tree")
	return ""
}

func TestReleaseWorkflowTriggersOnVersionTags(t *testing.T) {
	b, err := os.ReadFile(findReleaseWorkflow(t))
	if err != nil {
		t.Fatalf("read workflow: %v", err)
	}
	content := string(b)
	if !strings.Contains(content, `"v*"`) {
		t.Fatalf("expected workflow to trigger on v* tags")
	}
	if !strings.Contains(content, "tags:") {
		t.Fatalf("expected a tag trigger")
	}
}

func TestReleaseWorkflowProducesNamedBinary(t *testing.T) {
	b, err := os.ReadFile(findReleaseWorkflow(t))
	if err != nil {
		t.Fatalf("read workflow: %v", err)
	}
	content := string(b)
	if !strings.Contains(content, "-o CalliGlyph") {
		t.Fatalf("expected build step to produce a binary named CalliGlyph")
	}
	if !strings.Contains(content, "files: CalliGlyph") {
		t.Fatalf("expected the CalliGlyph binary to be uploaded as the release asset")
	}
	if !strings.Contains(content, "internal/version.Version") {
		t.Fatalf("expected the build to stamp the version variable")
	}
}
