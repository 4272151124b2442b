//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// writeLayout writes a layout YAML into a temp dir and returns its path.
func writeLayout(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing layout file: %v", err)
	}
	return path
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected directory %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s exists but is not a directory", path)
	}
}

func assertEmptyFile(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("%s is a directory, expected a file", path)
	}
	if info.Size() != 0 {
		t.Fatalf("%s size = %d, want 0", path, info.Size())
	}
}
