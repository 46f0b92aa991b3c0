// SPDX-License-Identifier: MIT
// Package: pathbench/mapgen
//
// errors.go - sentinel errors for the mapgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by formatting sentinels.
//   • Generators never panic at runtime; option constructors may.

package mapgen

import "errors"

// ErrInvalidSize indicates a non-positive map size.
var ErrInvalidSize = errors.New("mapgen: size must be positive")

// ErrInvalidDensity indicates an obstacle density outside [0,1].
var ErrInvalidDensity = errors.New("mapgen: density out of range")

// ErrUnknownStrategy indicates an unrecognized generation strategy.
var ErrUnknownStrategy = errors.New("mapgen: unknown strategy")

// ErrNeedRandSource indicates a generator was invoked without an RNG.
var ErrNeedRandSource = errors.New("mapgen: rng is required")
