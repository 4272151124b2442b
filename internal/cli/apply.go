package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skaf-labs/skaf/internal/builder"
)

var (
	applyRoot   string
	applyLayout string
	applyDryRun bool
)

func init() {
	applyCmd.Flags().StringVar(&applyRoot, "root", "", "Target root directory (default: current directory)")
	applyCmd.Flags().StringVar(&applyLayout, "layout", "", "Layout file to apply (default: built-in skeleton)")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Show what would be created without touching the filesystem")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create the scaffold under the target root",
	Long: `Create every directory, file, and symlink the layout declares, in order.

Existing entries of the right kind are skipped; existing file content is never
truncated. The first failure aborts the run and names the offending path;
entries created before the failure are left in place.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(applyRoot)
		if err != nil {
			return err
		}
		l, err := resolveLayout(applyLayout)
		if err != nil {
			return err
		}

		if applyDryRun {
			actions, err := builder.Plan(root, l)
			if err != nil {
				return err
			}
			fmt.Printf("Dry run for layout %s under %s:\n", l.Name, root)
			if conflicts := builder.PrintPlan(os.Stdout, actions); conflicts {
				return fmt.Errorf("layout %s conflicts with existing entries under %s", l.Name, root)
			}
			return nil
		}

		fmt.Printf("Applying layout %s under %s:\n", l.Name, root)
		res, err := builder.Apply(os.Stdout, root, l)
		if err != nil {
			return err
		}

		fmt.Printf("\nDone: %d created, %d skipped.\n", res.Created, res.Skipped)
		return nil
	},
}

// resolveRoot defaults the target root to the current working directory.
func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return flagRoot, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
