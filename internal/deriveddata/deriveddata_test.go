package deriveddata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClean_RemovesMatchingEntries(t *testing.T) {
	root := t.TempDir()

	for _, dir := range []string{
		"Redi-abcdefghijklmnop",
		"Redi-qrstuvwxyz012345",
		"OtherApp-aaaaaaaaaaaa",
		"ModuleCache.noindex",
	} {
		if err := os.MkdirAll(filepath.Join(root, dir, "Build"), 0755); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := Clean(root, "Redi")
	if err != nil {
		t.Fatalf("Clean error: %v", err)
	}
	if len(removed) != 2 {
		t.Fatalf("removed %d entries, want 2: %v", len(removed), removed)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("%d entries remain, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Name() != "OtherApp-aaaaaaaaaaaa" && e.Name() != "ModuleCache.noindex" {
			t.Errorf("unexpected surviving entry %q", e.Name())
		}
	}
}

func TestClean_NoMatches(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "OtherApp-bbbb"), 0755); err != nil {
		t.Fatal(err)
	}

	removed, err := Clean(root, "Redi")
	if err != nil {
		t.Fatalf("Clean error: %v", err)
	}
	if len(removed) != 0 {
		t.Errorf("removed = %v, want none", removed)
	}
}

func TestClean_MissingRoot(t *testing.T) {
	removed, err := Clean(filepath.Join(t.TempDir(), "DerivedData"), "Redi")
	if err != nil {
		t.Fatalf("Clean error for missing root: %v", err)
	}
	if removed != nil {
		t.Errorf("removed = %v, want nil", removed)
	}
}
