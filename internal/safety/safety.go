package safety

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateRel checks that a layout path is a clean relative path: non-empty,
// slash-separated, not absolute, and free of "." / ".." segments.
func ValidateRel(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	if strings.Contains(path, `\`) {
		return fmt.Errorf("path %q must use forward slashes", path)
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return fmt.Errorf("path %q must be relative", path)
	}
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "":
			return fmt.Errorf("path %q contains an empty segment", path)
		case ".", "..":
			return fmt.Errorf("path %q contains a %q segment", path, seg)
		}
	}
	return nil
}

// Join joins a slash-separated relative path to root and guarantees the
// result stays inside root.
func Join(root, rel string) (string, error) {
	joined := filepath.Join(root, filepath.FromSlash(rel))

	r, err := filepath.Rel(filepath.Clean(root), joined)
	if err != nil {
		return "", fmt.Errorf("resolving %s under %s: %w", rel, root, err)
	}
	rs := filepath.ToSlash(r)
	if rs == ".." || strings.HasPrefix(rs, "../") {
		return "", fmt.Errorf("path %s escapes root %s", rel, root)
	}
	return joined, nil
}
