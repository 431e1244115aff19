// SPDX-License-Identifier: MIT

// Package numcell is an exact-arithmetic playground built around the number
// cell: six signed big-integer terms read as (a / (b / c)) * (d / (e / f)),
// a six-bit sign field, a transformation counter and up to six links.
//
// 🚀 What is numcell?
//
//	A small, dependency-light library that brings together:
//		• Cells: construction, sign algebra, debug dumps, opt-in evaluation
//		• Carry engine: add / scale with place-value carry, never truncating
//		• Lattices: arena meshes of cells, neighbour sums, active regions
//		• Layers: a linear layer trained with fixed-point integer updates
//		• Runs: YAML-configured training, parallel independent replicas
//
// ✨ Why numcell?
//
//   - Exact - math/big everywhere, overflow becomes a carry cell
//   - No collapse by default - the expression stays symbolic until asked
//   - No floating point - learning rates are fixed-point over a scale S
//
// Packages:
//
//	cell/      the cell, carry engine, sign algebra, Evaluate, Dump
//	lattice/   index-linked pool of cells, NewGrid, WeightedSumNeighbors
//	layer/     Forward, Backward, Update, TrainStep over cell weights
//	config/    YAML layer and run description
//	train/     Session and parallel Run of independent layers
//	cmd/numcell/ CLI: train, inspect, cell
//
// Quick carry example (radix 10):
//
//	6 + 7  →  [a=3] ─left→ [a=1]     place value 1·10 + 3 = 13
//
//	go install github.com/katalvlaran/numcell/cmd/numcell@latest
package numcell
