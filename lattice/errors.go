// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numcell/cell"
)

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("lattice: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("lattice: all rows must have the same length")
	// ErrIndexOutOfRange indicates a cell index outside the pool.
	ErrIndexOutOfRange = errors.New("lattice: cell index out of range")
)

// Aliases of the cell sentinels so callers can match either name.
var (
	ErrInvalidBase      = cell.ErrInvalidBase
	ErrRadixMismatch    = cell.ErrRadixMismatch
	ErrNilCell          = cell.ErrNilCell
	ErrInvalidDirection = cell.ErrInvalidDirection
)

func latticeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
