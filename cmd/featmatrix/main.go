// Package main provides the CLI entry point for featmatrix.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/featmatrix/pkg/featmatrix"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/config"
)

var (
	// Global flags
	configPath   string
	verbose      bool
	sheet        string
	cellRange    string
	usePrintArea bool
	groupCol     string
	secondaryCol string
	entityCol    string
	features     []string
	maxRecords   int

	// Output flags
	outputPath string
	pretty     bool

	logger *zap.Logger
	cfg    *config.Config
	engine *featmatrix.Engine
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "featmatrix",
		Short: "Compare component features across suppliers",
		Long: `featmatrix reads a spreadsheet of component records, maps the supplier,
die-family and company columns, and pivots every feature column into
per-company comparisons.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.DefaultConfigFile, "Config file path")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&sheet, "sheet", "", "Sheet name (default: first sheet)")
	flags.StringVar(&cellRange, "range", "", "Cell range holding the table, e.g. B3:K200")
	flags.BoolVar(&usePrintArea, "print-area", false, "Restrict the table to the sheet's print area")
	flags.StringVar(&groupCol, "group-col", "", "Tier-1 supplier column (default: detected)")
	flags.StringVar(&secondaryCol, "secondary-col", "", "DieFamily column (default: detected)")
	flags.StringVar(&entityCol, "entity-col", "", "Company column (default: detected)")
	flags.StringSliceVar(&features, "features", nil, "Feature columns (default: every non-key column)")
	flags.IntVar(&maxRecords, "max-records", 0, "Record cap (default from config)")

	rootCmd.AddCommand(
		newSheetsCmd(),
		newColumnsCmd(),
		newBuildCmd(),
		newViewCmd(),
		newKPICmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Input.Sheet = sheet
	}
	if flags.Changed("range") {
		cfg.Input.Range = cellRange
	}
	if flags.Changed("print-area") {
		cfg.Input.UsePrintArea = usePrintArea
	}
	if flags.Changed("group-col") {
		cfg.Columns.Group = groupCol
	}
	if flags.Changed("secondary-col") {
		cfg.Columns.Secondary = secondaryCol
	}
	if flags.Changed("entity-col") {
		cfg.Columns.Entity = entityCol
	}
	if flags.Changed("features") {
		cfg.Columns.Features = features
	}
	if flags.Changed("max-records") {
		cfg.Output.MaxRecords = maxRecords
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err = newLogger(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	engine, err = featmatrix.NewEngine(cfg.Cache.Size, logger)
	if err != nil {
		return err
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

// options builds exploration options from the effective configuration.
func options() featmatrix.Options {
	opts := featmatrix.OptionsFromConfig(cfg)
	opts.Logger = logger
	return opts
}

// writeOutput writes data to --output or stdout.
func writeOutput(cmd *cobra.Command, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("wrote output", zap.String("path", outputPath), zap.Int("bytes", len(data)))
		return nil
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
