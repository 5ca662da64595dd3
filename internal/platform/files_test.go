package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	tmp := t.TempDir()

	src := filepath.Join(tmp, "src.txt")
	if err := os.WriteFile(src, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(tmp, "dst.txt")
	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading copy: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("copy content = %q, want %q", string(data), "hello")
	}
}

func TestCopyFileOverwrites(t *testing.T) {
	tmp := t.TempDir()

	src := filepath.Join(tmp, "src.txt")
	dst := filepath.Join(tmp, "dst.txt")
	if err := os.WriteFile(src, []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old content that is longer"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	data, _ := os.ReadFile(dst)
	if string(data) != "new" {
		t.Errorf("copy content = %q, want %q", string(data), "new")
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	tmp := t.TempDir()
	if err := CopyFile(filepath.Join(tmp, "nope"), filepath.Join(tmp, "dst")); err == nil {
		t.Fatal("expected error for missing source, got nil")
	}
}

func TestFileExists(t *testing.T) {
	tmp := t.TempDir()

	path := filepath.Join(tmp, "f.txt")
	if FileExists(path) {
		t.Error("FileExists = true for missing file")
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists = false for existing file")
	}
	if FileExists(tmp) {
		t.Error("FileExists = true for directory")
	}
	if !DirExists(tmp) {
		t.Error("DirExists = false for existing directory")
	}
}
