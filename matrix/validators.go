// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks assignment
//    solvers need before touching a cost matrix.
//  - Return sentinel errors wrapped with a validator tag and coordinates so
//    callers can match with errors.Is and still report the offending entry.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, allocate nothing on success,
//    and scan in row-major order (first offending entry is reported).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil or m is a nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonNegativeFinite ensures every entry is finite and ≥ 0.
//
// Errors: ErrNilMatrix, or ErrNaNInf / ErrNegative wrapped with "(row,col)=value".
// Complexity: O(r*c).
func ValidateNonNegativeFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateNonNegativeFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegativeFinite (%d,%d)=%g", i, j, v), ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegativeFinite (%d,%d)=%g", i, j, v), ErrNegative)
			}
		}
	}

	return nil
}

// ValidateRectangular ensures all row slices share the same length and
// returns that length (0 for empty input).
//
// Errors: ErrRagged wrapped with the first offending row.
// Complexity: O(r).
func ValidateRectangular(rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	c := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != c {
			return 0, validatorErrorf(fmt.Sprintf("ValidateRectangular row %d has %d columns, want %d", i, len(rows[i]), c), ErrRagged)
		}
	}

	return c, nil
}
