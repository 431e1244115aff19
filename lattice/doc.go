// SPDX-License-Identifier: MIT

// Package lattice composes number cells into meshes.
//
// What:
//
//   - Lattice is an arena of *cell.Cell addressed by integer index. Spatial
//     relations are stored as optional indices, never as pointers inside the
//     cells, so a mesh may reference itself freely.
//   - The lattice owns every cell in its pool; cells reached through a
//     spatial relation are plain references into that pool. Carry chains
//     remain owned by the cell that created them.
//   - NewGrid builds a rectangular mesh with up/down/left/right links.
//   - WeightedSumNeighbors adds a cell and its present spatial neighbours
//     (each scaled by a per-direction integer weight) through the carry
//     engine. In and Out are reserved and never aggregated.
//   - Step applies WeightedSumNeighbors to every cell synchronously.
//   - Regions groups connected cells whose a-term place value reaches a
//     threshold.
//
// Complexity:
//
//   - WeightedSumNeighbors: O(4·depth) big-integer operations.
//   - Step:                 O(N·4·depth), Memory: O(N) for the snapshot.
//   - Regions:              O(N·4), Memory: O(N).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: NewGrid input shape.
//   - ErrIndexOutOfRange: unknown cell index.
//   - ErrInvalidDirection: relation outside Left..Out.
//   - ErrInvalidBase, ErrRadixMismatch, ErrNilCell: aliases of the cell
//     sentinels.
//
// Concurrency: a Lattice is not safe for concurrent use.
package lattice
