package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skaf-labs/skaf/internal/branding"
	"github.com/skaf-labs/skaf/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` deterministically creates a project skeleton (directories, empty
placeholder files, symlinks) under a target root. Re-running is safe: existing
entries are skipped and existing file content is never touched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr; the caller only needs the exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
