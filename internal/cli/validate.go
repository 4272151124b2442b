package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skaf-labs/skaf/internal/layout"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <layout.yaml>",
	Short: "Validate a layout file",
	Long: `Validate a layout file against the layout schema and structural rules
(relative paths only, no duplicates, parents declared before children).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		result, err := layout.ValidateFile(path)
		if err != nil {
			return err
		}
		if !result.Valid {
			printIssues(path, result.Issues)
			return fmt.Errorf("layout %s has %d validation issue(s)", path, len(result.Issues))
		}

		l, err := layout.ParseFile(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s: valid layout %q with %d entries\n", path, l.Name, len(l.Entries))
		return nil
	},
}
