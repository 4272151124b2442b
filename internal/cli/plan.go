package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skaf-labs/skaf/internal/builder"
)

var (
	planRoot   string
	planLayout string
)

func init() {
	planCmd.Flags().StringVar(&planRoot, "root", "", "Target root directory (default: current directory)")
	planCmd.Flags().StringVar(&planLayout, "layout", "", "Layout file to preview (default: built-in skeleton)")
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview what apply would create",
	Long: `Evaluate the layout against the target root without creating anything,
reporting each entry as create, skip, or conflict. Unlike apply, conflicts do
not stop the preview.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(planRoot)
		if err != nil {
			return err
		}
		l, err := resolveLayout(planLayout)
		if err != nil {
			return err
		}

		actions, err := builder.Plan(root, l)
		if err != nil {
			return err
		}

		fmt.Printf("Plan for layout %s under %s:\n", l.Name, root)
		if conflicts := builder.PrintPlan(os.Stdout, actions); conflicts {
			return fmt.Errorf("layout %s conflicts with existing entries under %s", l.Name, root)
		}
		return nil
	},
}
