package safety

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateRel_Valid(t *testing.T) {
	valid := []string{
		"src",
		"src/core",
		"src/core/app.py",
		"logs/.keep",
	}
	for _, p := range valid {
		if err := ValidateRel(p); err != nil {
			t.Errorf("ValidateRel(%q) = %v, want nil", p, err)
		}
	}
}

func TestValidateRel_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"/etc/passwd",
		"../outside",
		"src/../../outside",
		"src/./core",
		"src//core",
		`src\core`,
	}
	for _, p := range invalid {
		if err := ValidateRel(p); err == nil {
			t.Errorf("ValidateRel(%q) = nil, want error", p)
		}
	}
}

func TestJoin_StaysInsideRoot(t *testing.T) {
	root := t.TempDir()

	got, err := Join(root, "src/core/app.py")
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	want := filepath.Join(root, "src", "core", "app.py")
	if got != want {
		t.Errorf("Join = %s, want %s", got, want)
	}
}

func TestJoin_RejectsEscape(t *testing.T) {
	root := t.TempDir()

	if _, err := Join(root, "../escape"); err == nil {
		t.Fatal("expected error for path escaping root")
	}
	if _, err := Join(root, "a/../../escape"); err == nil {
		t.Fatal("expected error for nested path escaping root")
	}
}

func TestJoin_ErrorNamesPath(t *testing.T) {
	root := t.TempDir()

	_, err := Join(root, "../escape")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "../escape") {
		t.Errorf("error %q does not name the offending path", err)
	}
}
