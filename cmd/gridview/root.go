package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/grid"
	"github.com/wippyai/grid/wasmmem"
)

// Version is set at build time.
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "gridview",
		Short: "Build, dump and browse contiguous grids",
		Long: `gridview builds a two or three axis grid from configuration and lets you
print it, read single cells, copy it through WebAssembly linear memory, or
browse it plane by plane in the terminal.

Configuration comes from flags, GRIDVIEW_* environment variables and
gridview.yaml, in that order of precedence.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
				grid.SetLogger(logger)
				wasmmem.SetLogger(logger)
				if cfg.File != "" {
					logger.Debug("using config file", zap.String("path", cfg.File))
				}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			syncLoggers()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./gridview.yaml)")
	flags.String("dims", "", "extents as x,y or x,y,z")
	flags.String("element", "", "element type: u8, s32, f32 or bool")
	flags.String("pattern", "", "fill pattern: fill, counter or checker")
	flags.String("value", "", "fill value, or the counter start")
	flags.String("cursor", "", "initial cursor as x,y or x,y,z")
	flags.Int("offset", 0, "linear memory offset for export")
	flags.String("format", "", "dump format: text or table")
	flags.BoolP("verbose", "v", false, "log grid construction and memory transfers")

	rootCmd.AddCommand(
		newDumpCmd(),
		newProbeCmd(),
		newExportCmd(),
		newInspectCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// configFrom returns the config stored by the root command.
func configFrom(cmd *cobra.Command) *Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
			return cfg
		}
	}
	return nil
}

// sheetFrom builds the configured array for cmd.
func sheetFrom(cmd *cobra.Command) (sheet, *Config, error) {
	cfg := configFrom(cmd)
	if cfg == nil {
		return nil, nil, fmt.Errorf("configuration not loaded")
	}
	s, err := buildSheet(cfg)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

// syncLoggers flushes the package loggers. Sync errors on terminals are
// expected and ignored.
func syncLoggers() {
	_ = grid.Logger().Sync()
	_ = wasmmem.Logger().Sync()
}
