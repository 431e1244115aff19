// SPDX-License-Identifier: MIT

// Package config loads the YAML file that describes a layer and a training
// run. A missing file yields DefaultConfig; present files are decoded
// strictly, so unknown fields are rejected.
//
// Environment overrides:
//
//	NUMCELL_LOG_LEVEL   replaces logging.level
//	NUMCELL_WORKERS     replaces train.workers
package config
