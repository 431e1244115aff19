// SPDX-License-Identifier: MIT

// Package layer implements a single linear layer whose weights and biases are
// number cells, trained with integer-exact gradient-style updates.
//
// What:
//
//   - Layer maps every (output, input) pair to a weight cell and every output
//     to a bias cell. Key sets are fixed at construction.
//   - Forward computes bias + Σ weight·input through the carry engine and, if
//     a base is configured for an output, reduces the result modulo that base.
//   - Backward measures error = target − output on the a-term and records it
//     as a pending gradient; Update applies it; TrainStep chains all three on
//     a fresh forward result.
//
// Fixed point:
//
//	Weights, biases and outputs are held in units of 1/S, where S is the
//	scale set by WithScale (default 1). The learning rate passed to Update is
//	also in 1/S units, so lr = 100 with S = 1000 means 0.1. Deltas are
//	computed exactly with big integers and truncated toward zero once, at
//	the division by S. No floating point is involved.
//
// Errors:
//
//   - ErrEmptyKeys, ErrDuplicateKey: bad key sets passed to New.
//   - ErrUnknownKey: a key outside the configured sets.
//   - ErrMissingKey: Backward lacks a target or output for some output key.
//   - ErrInvalidBase: radix ≤ 1 or an output base ≤ 0.
//   - ErrInvalidScale: scale ≤ 0.
//   - ErrNoGradient: Update without a preceding Backward.
//
// Every operation validates its arguments before touching any cell, so a
// failed call leaves the layer exactly as it was.
//
// Concurrency: a Layer is not safe for concurrent use. Independent layers
// share no state and may run in parallel (see package train).
package layer
