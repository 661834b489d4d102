// Package glossary tests.
package glossary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyAll(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out", "glossaries")

	os.WriteFile(filepath.Join(src, "terms.csv"), []byte("a,b\n"), 0644)
	os.WriteFile(filepath.Join(src, "notes.txt"), []byte("notes"), 0644)
	os.Mkdir(filepath.Join(src, "sub"), 0755)
	os.WriteFile(filepath.Join(src, "sub", "ignored.txt"), []byte("x"), 0644)

	n, err := CopyAll(src, dst)
	if err != nil {
		t.Fatalf("CopyAll error: %v", err)
	}
	if n != 2 {
		t.Errorf("copied %d files, want 2", n)
	}

	data, err := os.ReadFile(filepath.Join(dst, "terms.csv"))
	if err != nil {
		t.Fatalf("reading copy: %v", err)
	}
	if string(data) != "a,b\n" {
		t.Errorf("copied content = %q", data)
	}

	if _, err := os.Stat(filepath.Join(dst, "sub")); !os.IsNotExist(err) {
		t.Error("subdirectory should not be copied")
	}
}

func TestCopyAll_Overwrites(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	os.WriteFile(filepath.Join(src, "terms.csv"), []byte("new"), 0644)
	os.WriteFile(filepath.Join(dst, "terms.csv"), []byte("old old old"), 0644)

	if _, err := CopyAll(src, dst); err != nil {
		t.Fatalf("CopyAll error: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dst, "terms.csv"))
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}

func TestCopyAll_MissingSource(t *testing.T) {
	if _, err := CopyAll(filepath.Join(t.TempDir(), "nope"), t.TempDir()); err == nil {
		t.Fatal("expected error for missing source directory")
	}
}

func TestCopyAll_EmptySource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "dst")
	n, err := CopyAll(t.TempDir(), dst)
	if err != nil {
		t.Fatalf("CopyAll error: %v", err)
	}
	if n != 0 {
		t.Errorf("copied %d files, want 0", n)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Error("destination should still be created")
	}
}
