// Package metafile tests.
package metafile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "widget.yaml", "name: Example Widget\ndescription: A widget used for demos\n")

	rec, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if rec.Name != "Example Widget" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Description != "A widget used for demos" {
		t.Errorf("Description = %q", rec.Description)
	}
	if rec.I18ns == nil || len(rec.I18ns) != 0 {
		t.Errorf("I18ns should be empty and non-nil, got %v", rec.I18ns)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "name: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestWriteJSON(t *testing.T) {
	rec := &Record{
		Name:        "Example Widget",
		Description: "A widget used for demos",
		I18ns: map[string]Pair{
			"zh-CN": {Name: "示例小部件", Description: "一个演示用的小部件"},
			"en":    {Name: "Example Widget", Description: "A widget used for demos"},
		},
	}

	path := filepath.Join(t.TempDir(), "widget.json")
	if err := rec.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `"i18ns": {`) {
		t.Errorf("output missing i18ns map:\n%s", out)
	}
	if !strings.Contains(out, "\n  \"name\": \"Example Widget\"") {
		t.Errorf("output not indented with 2 spaces:\n%s", out)
	}
	if !strings.Contains(out, "示例小部件") {
		t.Errorf("output missing translated name:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output missing trailing newline")
	}
}

func TestOutputName(t *testing.T) {
	if got := OutputName("widget.yaml"); got != "widget.json" {
		t.Errorf("OutputName = %q, want widget.json", got)
	}
}
