package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLayoutFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing layout file: %v", err)
	}
	return path
}

func TestResolveLayout_BuiltInDefault(t *testing.T) {
	t.Setenv("SKAF_LAYOUT", "")

	l, err := resolveLayout("")
	if err != nil {
		t.Fatalf("resolveLayout failed: %v", err)
	}
	if l.Name != "brightness-controller" {
		t.Errorf("Name = %q, want built-in skeleton", l.Name)
	}
}

func TestResolveLayout_FlagWins(t *testing.T) {
	flagPath := writeLayoutFile(t, "name: from-flag\nentries:\n  - path: a\n    kind: directory\n")
	envPath := writeLayoutFile(t, "name: from-env\nentries:\n  - path: b\n    kind: directory\n")
	t.Setenv("SKAF_LAYOUT", envPath)

	l, err := resolveLayout(flagPath)
	if err != nil {
		t.Fatalf("resolveLayout failed: %v", err)
	}
	if l.Name != "from-flag" {
		t.Errorf("Name = %q, want from-flag", l.Name)
	}
}

func TestResolveLayout_EnvFallback(t *testing.T) {
	envPath := writeLayoutFile(t, "name: from-env\nentries:\n  - path: b\n    kind: directory\n")
	t.Setenv("SKAF_LAYOUT", envPath)

	l, err := resolveLayout("")
	if err != nil {
		t.Fatalf("resolveLayout failed: %v", err)
	}
	if l.Name != "from-env" {
		t.Errorf("Name = %q, want from-env", l.Name)
	}
}

func TestResolveLayout_InvalidFile(t *testing.T) {
	path := writeLayoutFile(t, "entries:\n  - path: /abs\n    kind: file\n")

	if _, err := resolveLayout(path); err == nil {
		t.Fatal("expected error for invalid layout")
	}
}

func TestResolveLayout_VersionGate(t *testing.T) {
	path := writeLayoutFile(t, "name: gated\nmin_tool_version: \"9.0.0\"\nentries:\n  - path: a\n    kind: directory\n")

	old := buildVersion
	buildVersion = "1.0.0"
	t.Cleanup(func() { buildVersion = old })

	if _, err := resolveLayout(path); err == nil {
		t.Fatal("expected error when tool is older than min_tool_version")
	}
}
