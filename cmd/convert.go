package cmd

import (
	"github.com/itsmostafa/svgflat/internal/export"
	"github.com/itsmostafa/svgflat/internal/pipeline"
	"github.com/itsmostafa/svgflat/internal/view"
	"github.com/spf13/cobra"
)

var convertFormat string
var convertDelimiter string
var convertView bool
var convertQuiet bool

var convertCmd = &cobra.Command{
	Use:   "convert <input.svg> <output>",
	Short: "Convert an SVG document into a table",
	Long: `Read the SVG document, validate its structure, build the element tree and
write it as a table. Use "-" as output to write to stdout.

Examples:
  svgflat convert resources/sample.svg output.csv
  svgflat convert drawing.svg - --format json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("format") {
			convertFormat = cfg.Format
		}
		if !cmd.Flags().Changed("delimiter") {
			convertDelimiter = cfg.Delimiter
		}

		format, err := export.ParseFormat(convertFormat)
		if err != nil {
			return err
		}
		delimiter, err := export.ParseDelimiter(convertDelimiter)
		if err != nil {
			return err
		}

		input, output := args[0], args[1]
		result, err := pipeline.Run(pipeline.Config{
			Input:   input,
			Output:  output,
			Format:  format,
			Options: export.Options{Delimiter: delimiter, Indent: "  "},
			Stdout:  cmd.OutOrStdout(),
			Logger:  logger,
		})
		if err != nil {
			return err
		}

		// Keep stdout clean when the table itself went there
		toStdout := output == pipeline.StdStream
		if convertView && !toStdout {
			if err := view.Render(cmd.OutOrStdout(), result.Tree, view.Options{
				Title:    "SVG Tree Structure",
				MaxWidth: cfg.MaxWidth,
				NoColor:  noColor,
			}); err != nil {
				return err
			}
		}
		if !convertQuiet && !toStdout {
			view.FormatSummary(cmd.OutOrStdout(), view.Summary{
				Input:    input,
				Output:   output,
				Format:   format.String(),
				Nodes:    result.Nodes,
				Rows:     result.Rows(),
				Depth:    result.Depth,
				Duration: result.Duration,
			}, noColor)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "csv", "Output format (csv, tsv, json, jsonl, yaml)")
	convertCmd.Flags().StringVarP(&convertDelimiter, "delimiter", "d", ",", `CSV field delimiter (single character, "\t" for tab)`)
	convertCmd.Flags().BoolVar(&convertView, "view", false, "Print the element tree after converting")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "Skip the summary box")

	rootCmd.AddCommand(convertCmd)
}
