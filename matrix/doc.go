// SPDX-License-Identifier: MIT

// Package matrix provides the numeric matrix abstraction used by the
// assignment solver and the row matcher's cost-matrix builder.
//
// What & Why:
//
//	The Matrix interface is a uniform view over a two-dimensional mutable
//	array of float64 values. Dense is the concrete row-major implementation:
//	a flat slice indexed as i*cols + j, bounds-checked at the public surface
//	(At/Set return errors instead of panicking) and guarded by a finite-only
//	numeric policy.
//
// Validators (validators.go) are the single source of truth for the checks
// the solver needs before it runs: non-nil, rectangular, and non-negative
// finite entries. They return sentinel errors from errors.go wrapped with
// the offending coordinates.
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1); Clone and the validators are O(rows*cols).
package matrix
