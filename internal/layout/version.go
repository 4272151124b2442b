package layout

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckToolVersion verifies the running tool satisfies the layout's
// min_tool_version constraint. An empty constraint always passes, and so do
// dev builds (otherwise every local build would be rejected).
func (l *Layout) CheckToolVersion(toolVersion string) error {
	if l.MinToolVersion == "" || toolVersion == "dev" {
		return nil
	}

	c, err := semver.NewConstraint(">= " + strings.TrimPrefix(l.MinToolVersion, "v"))
	if err != nil {
		return fmt.Errorf("parsing min_tool_version %q: %w", l.MinToolVersion, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(toolVersion, "v"))
	if err != nil {
		return fmt.Errorf("parsing tool version %q: %w", toolVersion, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("layout %s requires tool version >= %s, running %s",
			l.Name, l.MinToolVersion, toolVersion)
	}
	return nil
}
