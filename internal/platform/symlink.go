package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// CreateSymlink creates a symbolic link at link pointing to target.
// On Unix systems this uses os.Symlink directly. On Windows it attempts
// os.Symlink first (requires developer mode), then falls back to copying
// the target and writing a .target sidecar.
func CreateSymlink(target, link string) error {
	if err := os.Symlink(target, link); err == nil || runtime.GOOS != "windows" {
		return err
	}

	// Windows fallback: copy the target and record it in a sidecar so
	// ReadSymlinkTarget can recover the original.
	if err := copyForSymlink(target, link); err != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}
	if err := os.WriteFile(link+".target", []byte(target), 0644); err != nil {
		// The copy succeeded; a missing sidecar only degrades readback.
		return nil
	}
	return nil
}

// ReadSymlinkTarget returns the target of a symlink. On Windows, if
// os.Readlink fails because the copy fallback was used, it reads the
// .target sidecar instead.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err == nil {
		return target, nil
	}
	if runtime.GOOS != "windows" {
		return "", err
	}

	data, readErr := os.ReadFile(path + ".target")
	if readErr != nil {
		return "", fmt.Errorf("readlink failed and no .target sidecar found: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// copyForSymlink copies target to dst. Relative targets (the normal case for
// layout symlinks) resolve against the link's parent directory.
func copyForSymlink(target, dst string) error {
	src := target
	if !filepath.IsAbs(src) {
		src = filepath.Join(filepath.Dir(dst), src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
