// SPDX-License-Identifier: MIT

package layer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numcell/cell"
)

var (
	// ErrEmptyKeys indicates an empty input/output key set or an empty key.
	ErrEmptyKeys = errors.New("layer: key sets must be non-empty")
	// ErrDuplicateKey indicates a key listed twice in the same set.
	ErrDuplicateKey = errors.New("layer: duplicate key")
	// ErrUnknownKey indicates a key outside the configured sets.
	ErrUnknownKey = errors.New("layer: unknown key")
	// ErrMissingKey indicates a target or output missing for an output key.
	ErrMissingKey = errors.New("layer: missing key")
	// ErrInvalidScale indicates a fixed-point scale ≤ 0.
	ErrInvalidScale = errors.New("layer: scale must be positive")
	// ErrNoGradient indicates Update was called with nothing pending.
	ErrNoGradient = errors.New("layer: no pending gradient; call Backward first")
)

// ErrInvalidBase is the cell sentinel, also used for output bases ≤ 0.
var ErrInvalidBase = cell.ErrInvalidBase

func layerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// keyErrorf wraps err with the tag and the offending key.
func keyErrorf(tag, key string, err error) error {
	return fmt.Errorf("%s: %w %q", tag, err, key)
}
