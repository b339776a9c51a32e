package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sq9/internal/config"
	"sq9/internal/logging"
)

var (
	// Global flags
	verbose    bool
	dataPath   string
	configPath string
	watch      bool

	// Resolved at startup
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sq9",
	Short: "Square of 9 planetary chart",
	Long: `sq9 places the planets on a Square of 9 spiral.

Every body's ecliptic longitude for the selected day is mapped to a cell
between 1 and 360 of a 19x19 number spiral, and its daily motion is shown
as Direct, Retrograde or Stationary.

Run without arguments to open the interactive chart.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("data") || cfg.Data == "" {
			cfg.Data = dataPath
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		opts := logging.Options{
			Level:      cfg.Logging.Level,
			JSON:       cfg.Logging.JSON(),
			Categories: cfg.Logging.Categories,
		}
		if verbose {
			opts.Level = "debug"
		}
		// The interactive chart owns the terminal; its logs go to a file.
		if !cmd.HasParent() {
			opts.File = cfg.Logging.File
		}
		if err := logging.Initialize(opts); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.Get(logging.CategoryCLI)
		logging.BootDebug("sq9 starting: data=%s config=%s", cfg.Data, configPath)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive chart
		return runInteractive(cmd.Context())
	},
}

func init() {
	defaults := config.DefaultConfig()

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", defaults.Data, "Ephemeris CSV or imported .db file (or set SQ9_DATA)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".sq9/config.yaml", "Config file")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Reload the chart when the data file changes")

	// Chart subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(cellCmd)
	rootCmd.AddCommand(gridCmd)

	// Data subcommands
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(rangeCmd)

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
