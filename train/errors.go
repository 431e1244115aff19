// SPDX-License-Identifier: MIT

package train

import (
	"errors"
	"fmt"
)

// ErrInvalidJob indicates a job without a configuration.
var ErrInvalidJob = errors.New("train: job has no configuration")

func trainErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
