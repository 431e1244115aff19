// SPDX-License-Identifier: MIT

// Package cell implements the exact six-coefficient number cell and the
// carry engine that operates on it.
//
// What:
//
//   - Cell holds six arbitrary-precision coefficients a..f read as the nested
//     product of quotients (±a / (±b / ±c)) * (±d / (±e / ±f)).
//   - A 6-bit sign field stores the sign of each coefficient independently of
//     its magnitude (bit i ↔ Term i, 1 = negative).
//   - A metadata counter grows by one with every transformation.
//   - Six directional links (Left, Right, Up, Down, In, Out). Left is the
//     carry link: the cell owns whatever the carry engine stores there.
//
// Carry engine:
//
//   - Add and ScaleByInt work term by term with the configured radix:
//     retained = value mod radix, overflow = floor(value / radix).
//   - Non-zero overflow is never dropped: it becomes a carry cell added into
//     the owned Left link (created when absent).
//   - PlaceValue reads a single term back as the exact mixed-radix integer
//     Σ term_k · radix^k along the carry chain.
//
// Collapse:
//
//   - Evaluate reduces the expression to one rational. It is refused unless
//     the cell was built WithCollapse(true), and fails with
//     ErrUndefinedEvaluation on a zero b, c, e or f. Nothing else in the
//     package evaluates; zero denominators are kept verbatim.
//
// Errors:
//
//   - ErrInvalidBase: radix ≤ 1 (or a modulus ≤ 0 for ReduceMod).
//   - ErrInvalidSigns: sign field uses bits above bit 5.
//   - ErrRadixMismatch: Add between cells with different radices.
//   - ErrNilCell: nil operand.
//   - ErrReservedLink: Link on the carry-owned Left direction.
//   - ErrCollapseDisallowed, ErrUndefinedEvaluation: see Evaluate.
//
// Concurrency: a Cell is not safe for concurrent use; callers serialize.
package cell
