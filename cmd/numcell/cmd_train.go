// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numcell/train"
)

// runSummary is the printed form of a train.Result.
type runSummary struct {
	Name        string              `yaml:"name"`
	RunID       string              `yaml:"run_id"`
	Steps       uint64              `yaml:"steps"`
	History     []string            `yaml:"history"`
	FinalErrors []map[string]string `yaml:"final_errors"`
}

func newTrainCmd(a *app) *cobra.Command {
	var (
		workers  int
		replicas int
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the configured layer, optionally as parallel replicas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			if workers <= 0 {
				workers = a.cfg.Train.Workers
			}
			if replicas <= 0 {
				replicas = 1
			}

			a.logger.Info("training",
				zap.String("config", a.configPath),
				zap.Int("replicas", replicas),
				zap.Int("workers", workers),
				zap.Int("epochs", a.cfg.Train.Steps))
			results, err := train.Run(ctx, train.Replicate("run", a.cfg, replicas),
				train.WithWorkers(workers),
				train.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := make([]runSummary, len(results))
			for i, r := range results {
				s := runSummary{Name: r.Name, RunID: r.RunID.String(), Steps: r.Steps}
				for _, h := range r.History {
					s.History = append(s.History, h.String())
				}
				for _, fe := range r.FinalErrors {
					m := make(map[string]string, len(fe))
					for k, v := range fe {
						m[k] = v.String()
					}
					s.FinalErrors = append(s.FinalErrors, m)
				}
				out[i] = s
			}
			return writeYAML(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent replicas (default: train.workers from config)")
	cmd.Flags().IntVar(&replicas, "replicas", 1, "Independent copies of the run")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort training after this long (0 disables)")
	return cmd
}
