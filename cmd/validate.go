package cmd

import (
	"fmt"

	"github.com/itsmostafa/svgflat/internal/pipeline"
	"github.com/itsmostafa/svgflat/internal/view"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input.svg>...",
	Short: "Check that SVG documents are well nested",
	Long:  `Check that each document has a single root element and balanced tags without writing any output.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			if _, err := pipeline.LoadTree(args[0], logger); err != nil {
				return err
			}
			view.FormatValid(cmd.OutOrStdout(), args[0], noColor)
			return nil
		}

		// Report every document before failing
		failed := 0
		for _, input := range args {
			if _, err := pipeline.LoadTree(input, logger); err != nil {
				view.Diagnose(cmd.ErrOrStderr(), fmt.Errorf("%s: %w", input, err), noColor)
				failed++
				continue
			}
			view.FormatValid(cmd.OutOrStdout(), input, noColor)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d documents are invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
