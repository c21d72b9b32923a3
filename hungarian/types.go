// SPDX-License-Identifier: MIT

package hungarian

import (
	"errors"

	"github.com/katalvlaran/rowalign/matrix"
)

// Unassigned marks a row that received no real column
// (the solver picked a padding column for it).
const Unassigned = -1

var (
	// ErrRaggedMatrix indicates rows of different lengths.
	ErrRaggedMatrix = matrix.ErrRagged

	// ErrNegativeCost indicates a cost below zero.
	ErrNegativeCost = matrix.ErrNegative

	// ErrNonFiniteCost indicates a NaN or ±Inf cost.
	ErrNonFiniteCost = matrix.ErrNaNInf

	// ErrDiverged reports that no augmenting column could be selected.
	ErrDiverged = errors.New("hungarian: solver diverged")

	// ErrCanceled is returned by the cooperative solvers when ctx is done.
	// It is a distinct outcome, never accompanied by a partial assignment;
	// the returned error also matches the context's own error.
	ErrCanceled = errors.New("hungarian: canceled")
)

// Assignment is the result of a solve.
type Assignment struct {
	// RowToCol[i] is the column assigned to row i, or Unassigned.
	RowToCol []int

	// Cost is the sum of the assigned real costs.
	Cost float64
}

// Assigned reports how many rows received a real column.
func (a Assignment) Assigned() int {
	var n int
	for _, c := range a.RowToCol {
		if c != Unassigned {
			n++
		}
	}

	return n
}

// ColToRow inverts RowToCol for a matrix with cols columns.
// Columns without a row hold Unassigned.
func (a Assignment) ColToRow(cols int) []int {
	out := make([]int, cols)
	for j := range out {
		out[j] = Unassigned
	}
	for i, j := range a.RowToCol {
		if j >= 0 && j < cols {
			out[j] = i
		}
	}

	return out
}

// Pair is one (row, col) assignment.
type Pair struct {
	Row, Col int
}

// Pairs lists assigned pairs in ascending row order.
func (a Assignment) Pairs() []Pair {
	out := make([]Pair, 0, len(a.RowToCol))
	for i, j := range a.RowToCol {
		if j != Unassigned {
			out = append(out, Pair{Row: i, Col: j})
		}
	}

	return out
}
