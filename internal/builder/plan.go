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

// Op is the action Apply would take for an entry.
type Op string

const (
	OpCreate   Op = "create"
	OpSkip     Op = "skip"
	OpConflict Op = "conflict"
)

// Action is the planned outcome for a single layout entry.
type Action struct {
	Entry  layout.Entry
	Target string // absolute path under root
	Op     Op
	Reason string // set for conflicts
}

// Plan evaluates what Apply would do for each entry without touching the
// filesystem. Conflicts are collected rather than aborting, so a preview
// always covers the whole layout.
func Plan(root string, l *layout.Layout) ([]Action, error) {
	actions := make([]Action, 0, len(l.Entries))

	for _, e := range l.Entries {
		target, err := safety.Join(root, e.Path)
		if err != nil {
			return nil, err
		}

		a := Action{Entry: e, Target: target}

		info, err := os.Lstat(target)
		switch {
		case errors.Is(err, syscall.ENOTDIR):
			a.Op = OpConflict
			a.Reason = "an ancestor is not a directory"
		case os.IsNotExist(err):
			a.Op = OpCreate
		case err != nil:
			return nil, fmt.Errorf("inspecting %s: %w", target, err)
		case e.IsDir() && !info.IsDir():
			a.Op = OpConflict
			a.Reason = "exists but is not a directory"
		case e.Kind == layout.KindFile && info.IsDir():
			a.Op = OpConflict
			a.Reason = "exists but is a directory"
		default:
			a.Op = OpSkip
		}

		actions = append(actions, a)
	}

	return actions, nil
}

// PrintPlan writes a human-readable plan to w and reports whether any entry
// conflicts.
func PrintPlan(w io.Writer, actions []Action) bool {
	conflicts := false
	for _, a := range actions {
		switch a.Op {
		case OpCreate:
			verb := "touch"
			if a.Entry.IsDir() {
				verb = "mkdir -p"
			} else if a.Entry.Kind == layout.KindSymlink {
				verb = "ln -s " + a.Entry.Target
			}
			fmt.Fprintf(w, "  [PLAN] %s %s\n", verb, a.Target)
		case OpSkip:
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", a.Target)
		case OpConflict:
			conflicts = true
			fmt.Fprintf(w, "  [FAIL] %s: %s\n", a.Target, a.Reason)
		}
	}
	return conflicts
}
