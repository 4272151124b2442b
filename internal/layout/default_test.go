package layout

import "testing"

func TestDefault(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if l.Name != "brightness-controller" {
		t.Errorf("Name = %q, want brightness-controller", l.Name)
	}

	// The built-in skeleton must contain the core directories and the
	// top-level placeholder file.
	wantDirs := []string{
		"src/brightness_controller/core",
		"src/brightness_controller/utils",
		"src/brightness_controller/gui",
		"src/brightness_controller/logs",
	}
	wantFiles := []string{
		"src/brightness_controller/brightness_controller.py",
	}

	kinds := make(map[string]string, len(l.Entries))
	for _, e := range l.Entries {
		kinds[e.Path] = e.Kind
	}

	for _, d := range wantDirs {
		if kinds[d] != KindDirectory {
			t.Errorf("expected directory entry %s, got %q", d, kinds[d])
		}
	}
	for _, f := range wantFiles {
		if kinds[f] != KindFile {
			t.Errorf("expected file entry %s, got %q", f, kinds[f])
		}
	}

	// Placeholders are zero-byte: no entry ships content.
	for _, e := range l.Entries {
		if e.Content != "" {
			t.Errorf("entry %s has content; built-in placeholders must be empty", e.Path)
		}
	}
}
