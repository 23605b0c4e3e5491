package cmd

import (
	"github.com/itsmostafa/svgflat/internal/pipeline"
	"github.com/itsmostafa/svgflat/internal/view"
	"github.com/spf13/cobra"
)

var treeMaxWidth int

var treeCmd = &cobra.Command{
	Use:   "tree <input.svg>",
	Short: "Print the element tree of an SVG document",
	Long:  `Validate the document and print its element hierarchy with attributes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("max-width") {
			treeMaxWidth = cfg.MaxWidth
		}

		t, err := pipeline.LoadTree(args[0], logger)
		if err != nil {
			return err
		}

		return view.Render(cmd.OutOrStdout(), t, view.Options{
			MaxWidth: treeMaxWidth,
			NoColor:  noColor,
		})
	},
}

func init() {
	treeCmd.Flags().IntVarP(&treeMaxWidth, "max-width", "w", 0, "Truncate attribute values to this many columns (0 = unlimited)")
	rootCmd.AddCommand(treeCmd)
}
