package readme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempReadme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "README.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUpdater_Update_WritesChangedFile(t *testing.T) {
	path := writeTempReadme(t, "# Hi\n\n"+StartMarker+"\nold\n"+EndMarker+"\n")
	block := StartMarker + "\nnew\n" + EndMarker

	changed, err := NewUpdater(path).Update(block, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Error("expected changed = true")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "new") || strings.Contains(string(data), "old") {
		t.Errorf("file should hold the new block, got:\n%s", data)
	}
}

func TestUpdater_Update_NoopWhenContentIdentical(t *testing.T) {
	block := StartMarker + "\nsame\n" + EndMarker
	path := writeTempReadme(t, "# Hi\n\n"+block+"\n")

	changed, err := NewUpdater(path).Update(block, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Error("identical content should report changed = false")
	}
}

func TestUpdater_Update_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.md")

	_, err := NewUpdater(path).Update(StartMarker+"\nx\n"+EndMarker, false)

	if !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestUpdater_Update_MissingMarkersStrict(t *testing.T) {
	const original = "# Hi\n\nNo markers.\n"
	path := writeTempReadme(t, original)

	changed, err := NewUpdater(path).Update(StartMarker+"\nx\n"+EndMarker, false)

	if !errors.Is(err, ErrMarkersNotFound) {
		t.Fatalf("expected ErrMarkersNotFound, got %v", err)
	}
	if changed {
		t.Error("expected changed = false")
	}

	data, _ := os.ReadFile(path)
	if string(data) != original {
		t.Error("strict policy must leave the file untouched")
	}
}

func TestUpdater_Update_CreatesSectionWhenAsked(t *testing.T) {
	path := writeTempReadme(t, "# Hi\n\nNo markers.\n")
	block := StartMarker + "\nposts\n" + EndMarker

	changed, err := NewUpdater(path).Update(block, true)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Error("expected changed = true")
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "## Latest Blog Posts") {
		t.Error("expected section heading created")
	}
	if !strings.Contains(string(data), block) {
		t.Error("expected block written to the file")
	}
}
