package cli

import (
	"fmt"
	"os"

	"github.com/skaf-labs/skaf/internal/branding"
	"github.com/skaf-labs/skaf/internal/config"
	"github.com/skaf-labs/skaf/internal/layout"
)

// resolveLayout picks the layout to use: the --layout flag, then the
// SKAF_LAYOUT environment variable or the default_layout config key, then
// the built-in skeleton. File-based layouts are validated and version-gated
// before use.
func resolveLayout(flagPath string) (*layout.Layout, error) {
	path := flagPath
	if path == "" {
		if v := os.Getenv(branding.EnvVar("LAYOUT")); v != "" {
			path = v
		} else {
			path = config.Get(config.KeyDefaultLayout)
		}
	}

	if path == "" {
		return layout.Default()
	}

	result, err := layout.ValidateFile(path)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		printIssues(path, result.Issues)
		return nil, fmt.Errorf("layout %s has %d validation issue(s)", path, len(result.Issues))
	}

	l, err := layout.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := l.CheckToolVersion(buildVersion); err != nil {
		return nil, err
	}
	return l, nil
}

func printIssues(path string, issues []layout.ValidationIssue) {
	fmt.Fprintf(os.Stderr, "%s: %d validation issue(s):\n", path, len(issues))
	for _, issue := range issues {
		if issue.Path != "" {
			fmt.Fprintf(os.Stderr, "  - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(os.Stderr, "  - %s\n", issue.Message)
		}
	}
}
