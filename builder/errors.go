// SPDX-License-Identifier: MIT
// Package: rutas/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site, never baked into sentinels.
//   • Graph-level violations keep their core sentinel (core.ErrBadWeight, ...).

package builder

import "errors"

// ErrInvalidNetwork indicates a network description that cannot be decoded
// (malformed YAML, unknown keys, empty document).
var ErrInvalidNetwork = errors.New("builder: invalid network description")

// ErrNoLocalities indicates a description with an empty localities list.
var ErrNoLocalities = errors.New("builder: network has no localities")

// ErrDuplicateLocality indicates the same locality name declared twice.
var ErrDuplicateLocality = errors.New("builder: duplicate locality")
