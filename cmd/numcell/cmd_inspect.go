// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var cells bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the configured layer before training",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			l, err := a.cfg.Layer.Build(a.logger)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), l.Dump(cells))
		},
	}
	cmd.Flags().BoolVar(&cells, "cells", false, "Include every weight and bias cell in full")
	return cmd
}
