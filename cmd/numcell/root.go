// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numcell/config"
)

// app holds state shared by the subcommands.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "numcell",
		Short: "Exact six-term number cells with carry, and a layer trained on them",
		Long: `numcell builds number cells (six signed big-integer terms arranged as
(a/(b/c))·(d/(e/f)) with place-value carry) and trains a linear layer whose
weights are such cells, using fixed-point integer updates.

Configuration is read from --config by train and inspect; a missing file
falls back to a built-in single-point regression.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger(config.LoggingConfig{Level: config.DefaultLogLevel})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "numcell.yaml", "Path to the YAML configuration")

	root.AddCommand(newTrainCmd(a), newInspectCmd(a), newCellCmd(a))
	return root
}

// initLogger replaces the logger with one built from lc, honouring --verbose.
func (a *app) initLogger(lc config.LoggingConfig) error {
	if a.verbose {
		lc.Level = "debug"
	}
	logger, err := lc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	a.logger = logger
	return nil
}

// loadConfig reads --config and switches to its logging settings. Only the
// subcommands that need a layer call it.
func (a *app) loadConfig() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := a.initLogger(cfg.Logging); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// writeYAML encodes v to w with two-space indentation.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
