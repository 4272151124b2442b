package builder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/skaf-labs/skaf/internal/layout"
	"github.com/skaf-labs/skaf/internal/platform"
	"github.com/skaf-labs/skaf/internal/safety"
)

// Result holds the outcome of an Apply run.
type Result struct {
	Root    string
	Created int
	Skipped int
}

// Apply creates the layout's entries under root in declaration order,
// printing progress to w. The root itself is created if absent. Existing
// entries of the expected kind are skipped; existing files keep their
// content. The first error aborts the run, leaving earlier entries in place.
func Apply(w io.Writer, root string, l *layout.Layout) (*Result, error) {
	res := &Result{Root: root}

	if err := ensureRoot(root); err != nil {
		return nil, err
	}

	for _, e := range l.Entries {
		target, err := safety.Join(root, e.Path)
		if err != nil {
			return nil, err
		}
		mode, err := e.FileMode()
		if err != nil {
			return nil, err
		}

		var created bool
		switch e.Kind {
		case layout.KindDirectory:
			created, err = ensureDir(w, target, mode)
		case layout.KindFile:
			created, err = ensureFile(w, target, e.Content, mode)
		case layout.KindSymlink:
			created, err = ensureSymlink(w, target, e.Target)
		default:
			err = fmt.Errorf("entry %s has unknown kind %q", e.Path, e.Kind)
		}
		if err != nil {
			return nil, err
		}

		if created {
			res.Created++
		} else {
			res.Skipped++
		}
	}

	return res, nil
}

// notExist reports whether err means the path is absent. ENOTDIR counts:
// Lstat returns it when an ancestor is a regular file, and letting the
// create call fail produces an error naming the colliding path.
func notExist(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}

// ensureRoot creates the destination root if it does not exist.
func ensureRoot(root string) error {
	if info, err := os.Stat(root); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("root %s exists but is not a directory", root)
		}
		return nil
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating root %s: %w", root, err)
	}
	return nil
}

// ensureDir creates a directory if it doesn't exist. Returns true when the
// directory was created.
func ensureDir(w io.Writer, path string, perm os.FileMode) (bool, error) {
	if info, err := os.Lstat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return false, nil
		}
		return false, fmt.Errorf("%s exists but is not a directory", path)
	} else if !notExist(err) {
		return false, fmt.Errorf("inspecting %s: %w", path, err)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, perm); err != nil {
		return false, fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return true, nil
}

// ensureFile creates a file with content if it doesn't exist. An existing
// regular file is left untouched, whatever its content.
func ensureFile(w io.Writer, path, content string, perm os.FileMode) (bool, error) {
	if info, err := os.Lstat(path); err == nil {
		if info.IsDir() {
			return false, fmt.Errorf("%s exists but is a directory, expected a file", path)
		}
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return false, nil
	} else if !notExist(err) {
		return false, fmt.Errorf("inspecting %s: %w", path, err)
	}

	// The layout guarantees parents are declared before files, but an
	// implied parent still needs creating here.
	if _, err := ensureDir(io.Discard, filepath.Dir(path), 0755); err != nil {
		return false, err
	}

	// O_EXCL so a file racing into existence is never truncated.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, perm)
	if err != nil {
		return false, fmt.Errorf("creating file %s: %w", path, err)
	}
	if content != "" {
		if _, err := f.WriteString(content); err != nil {
			f.Close()
			return false, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}
	if err := platform.Chmod(path, perm); err != nil {
		return false, fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return true, nil
}

// ensureSymlink creates a symlink if it doesn't exist.
func ensureSymlink(w io.Writer, linkPath, target string) (bool, error) {
	if _, err := os.Lstat(linkPath); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", linkPath)
		return false, nil
	} else if !notExist(err) {
		return false, fmt.Errorf("inspecting %s: %w", linkPath, err)
	}

	if _, err := ensureDir(io.Discard, filepath.Dir(linkPath), 0755); err != nil {
		return false, err
	}

	if err := platform.CreateSymlink(filepath.FromSlash(target), linkPath); err != nil {
		return false, fmt.Errorf("creating symlink %s -> %s: %w", linkPath, target, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s -> %s\n", linkPath, target)
	return true, nil
}
