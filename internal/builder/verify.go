package builder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/skaf-labs/skaf/internal/layout"
	"github.com/skaf-labs/skaf/internal/safety"
)

// Verify checks that every layout entry exists under root with the expected
// kind, writing a doctor-style report to w. It returns an error when any
// entry is missing or has the wrong kind.
func Verify(w io.Writer, root string, l *layout.Layout) error {
	fmt.Fprintf(w, "Verifying %s against layout %s:\n", root, l.Name)

	problems := 0
	for _, e := range l.Entries {
		target, err := safety.Join(root, e.Path)
		if err != nil {
			return err
		}

		info, err := os.Lstat(target)
		if errors.Is(err, syscall.ENOTDIR) {
			fmt.Fprintf(w, "  [FAIL] %s: an ancestor is not a directory\n", target)
			problems++
			continue
		}
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "  [MISS] %s does not exist\n", target)
			problems++
			continue
		}
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", target, err)
		}

		switch e.Kind {
		case layout.KindDirectory:
			if !info.IsDir() {
				fmt.Fprintf(w, "  [FAIL] %s is not a directory\n", target)
				problems++
				continue
			}
		case layout.KindFile:
			if info.IsDir() {
				fmt.Fprintf(w, "  [FAIL] %s is a directory, expected a file\n", target)
				problems++
				continue
			}
		case layout.KindSymlink:
			if info.Mode()&os.ModeSymlink == 0 {
				fmt.Fprintf(w, "  [FAIL] %s is not a symlink\n", target)
				problems++
				continue
			}
		}
		fmt.Fprintf(w, "  [ OK ] %s\n", target)
	}

	if problems > 0 {
		return fmt.Errorf("verify found %d problem(s) under %s", problems, root)
	}
	fmt.Fprintln(w, "All entries present.")
	return nil
}
