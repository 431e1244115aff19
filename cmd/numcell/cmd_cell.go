// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numcell/cell"
)

func newCellCmd(a *app) *cobra.Command {
	var (
		radix    int64
		signs    string
		text     bool
		evaluate bool
	)
	cmd := &cobra.Command{
		Use:   "cell [a [b [c [d [e [f]]]]]]",
		Short: "Build a cell from up to six integers and print its dump",
		Long: `Build a cell from up to six signed integers. Values outside [0, radix)
are carried into the cell's chain. --signs toggles sign bits afterwards,
given as six binary digits with term f first.`,
		Args: cobra.MaximumNArgs(cell.NumTerms),
		RunE: func(cmd *cobra.Command, args []string) error {
			var vals [cell.NumTerms]*big.Int
			for i, s := range args {
				v, ok := new(big.Int).SetString(s, 10)
				if !ok {
					return fmt.Errorf("term %s: not an integer: %q", cell.Term(i), s)
				}
				vals[i] = v
			}
			var opts []cell.Option
			if evaluate {
				opts = append(opts, cell.WithCollapse(true))
			}
			c, err := cell.FromValues(radix, vals, opts...)
			if err != nil {
				return err
			}
			if signs != "" {
				bits, err := strconv.ParseUint(signs, 2, 8)
				if err != nil || bits > 0b111111 {
					return fmt.Errorf("%w: %q", cell.ErrInvalidSigns, signs)
				}
				for _, t := range cell.Terms() {
					if bits&(1<<uint(t)) != 0 {
						c.Toggle(t)
					}
				}
			}

			w := cmd.OutOrStdout()
			if text {
				fmt.Fprintln(w, c.String())
			} else if err := writeYAML(w, c.Dump()); err != nil {
				return err
			}
			if evaluate {
				r, err := c.Evaluate()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "value: %s\n", r.RatString())
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&radix, "radix", cell.DefaultRadix, "Carry base")
	cmd.Flags().StringVar(&signs, "signs", "", "Sign bits to toggle, e.g. 000011")
	cmd.Flags().BoolVar(&text, "text", false, "Print the one-line-per-level text form instead of YAML")
	cmd.Flags().BoolVar(&evaluate, "evaluate", false, "Also collapse the cell to a rational")
	return cmd
}
