// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// fileErrorf tags a filesystem or encoding failure with the operation and path.
func fileErrorf(op, path string, err error) error {
	return fmt.Errorf("config: %s %s: %w", op, path, err)
}
