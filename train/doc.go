// SPDX-License-Identifier: MIT

// Package train drives layers through configured training runs.
//
// Session runs epochs on one layer. Run executes many independent jobs in
// parallel, each on its own freshly built layer; a layer is only ever
// touched by the goroutine that built it, so no locking is needed.
// Cancellation is observed between train steps.
package train
