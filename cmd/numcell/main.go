// SPDX-License-Identifier: MIT

// Command numcell trains and inspects number-cell layers.
//
//	numcell train   --config run.yaml [--workers n] [--replicas n]
//	numcell inspect --config run.yaml [--cells]
//	numcell cell 6 0 0 1 2 3 --radix 10 --signs 000001
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
