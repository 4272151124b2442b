package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skaf-labs/skaf/internal/builder"
)

var (
	verifyRoot   string
	verifyLayout string
)

func init() {
	verifyCmd.Flags().StringVar(&verifyRoot, "root", "", "Target root directory (default: current directory)")
	verifyCmd.Flags().StringVar(&verifyLayout, "layout", "", "Layout file to verify against (default: built-in skeleton)")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check an existing tree against a layout",
	Long: `Check that every entry of the layout exists under the target root with the
expected kind. Exits non-zero when anything is missing or mismatched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(verifyRoot)
		if err != nil {
			return err
		}
		l, err := resolveLayout(verifyLayout)
		if err != nil {
			return err
		}

		return builder.Verify(os.Stdout, root, l)
	},
}
