// SPDX-License-Identifier: MIT

package cell

import (
	"errors"
	"fmt"
)

// Sentinel errors for cell operations. Match them with errors.Is.
var (
	// ErrInvalidBase indicates a carry radix ≤ 1 or a non-positive modulus.
	ErrInvalidBase = errors.New("cell: base must be greater than 1")

	// ErrInvalidSigns indicates a sign field with bits set above bit 5.
	ErrInvalidSigns = errors.New("cell: sign field has bits outside 0..5")

	// ErrRadixMismatch indicates an operation between cells with different radices.
	ErrRadixMismatch = errors.New("cell: radix mismatch")

	// ErrNilCell indicates a nil *Cell operand.
	ErrNilCell = errors.New("cell: nil cell")

	// ErrReservedLink indicates an attempt to overwrite the carry-owned Left link.
	ErrReservedLink = errors.New("cell: left link is reserved for carry")

	// ErrInvalidDirection indicates a Direction outside Left..Out.
	ErrInvalidDirection = errors.New("cell: invalid direction")

	// ErrCollapseDisallowed indicates Evaluate on a cell built without WithCollapse(true).
	ErrCollapseDisallowed = errors.New("cell: collapse to a single value is disallowed")

	// ErrUndefinedEvaluation indicates Evaluate hit a zero denominator coefficient.
	ErrUndefinedEvaluation = errors.New("cell: evaluation undefined for zero denominator")
)

// cellErrorf prefixes err with the operation tag, keeping it matchable.
func cellErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
