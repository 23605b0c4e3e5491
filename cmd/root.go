package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/svgflat/internal/config"
	"github.com/itsmostafa/svgflat/internal/logging"
	"github.com/itsmostafa/svgflat/internal/version"
	"github.com/itsmostafa/svgflat/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logLevel string
var devLogs bool
var noColor bool

// cfg and logger are set up before any subcommand runs.
var cfg = config.Default()
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "svgflat",
	Short: "Flatten SVG markup into a table",
	Long: `svgflat reads an SVG document, checks that its tags are well nested and
converts the element hierarchy into a flat table with one row per
element attribute (ID, ParentID, Depth, Tag, Attribute, Value).

Settings can also come from SVGFLAT_* environment variables or a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		// Flags given on the command line win over the environment
		if !cmd.Flags().Changed("log-level") {
			logLevel = cfg.LogLevel
		}
		if !cmd.Flags().Changed("dev") {
			devLogs = cfg.Development
		}
		if !cmd.Flags().Changed("no-color") {
			noColor = cfg.NoColor
		}

		l, err := logging.New(logging.Config{Level: logLevel, Development: devLogs})
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.Version = version.Resolved()
	rootCmd.SetVersionTemplate(fmt.Sprintf("svgflat %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&devLogs, "dev", false, "Human readable development logs")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		view.Diagnose(os.Stderr, err, noColor)
		os.Exit(1)
	}
}
