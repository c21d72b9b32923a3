// SPDX-License-Identifier: MIT

// Package hungarian solves the assignment problem — pair rows with columns
// one-to-one at minimum total cost — with the Kuhn–Munkres (Hungarian)
// primal-dual algorithm.
//
// 🚀 What is the assignment problem?
//
//	Given an m×n matrix of non-negative costs, choose at most one column per
//	row and at most one row per column, assigning min(m,n) pairs so that the
//	sum of the chosen costs is minimal. Typical uses:
//	  • Matching records between two datasets by a dissimilarity score
//	  • Scheduling workers to jobs
//	  • Tracking objects between video frames
//
// ✨ Key features:
//   - rectangular matrices: padded to a square with a dominating cost;
//     rows that land on padding are reported as Unassigned
//   - deterministic tie-breaking (rows in index order, lowest column first)
//   - blocking Solve and cooperative SolveContext with identical output:
//     SolveContext runs the same loop under a step budget, checks ctx at
//     every budget boundary and yields to the Go scheduler
//   - strict input validation: ragged, negative, NaN and ±Inf costs are rejected
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rowalign/hungarian"
//
//	a, err := hungarian.Solve([][]float64{
//	  {4, 1, 3},
//	  {2, 0, 5},
//	  {3, 2, 2},
//	})
//	// a.RowToCol == []int{1, 0, 2}, a.Cost == 5
//
//	// cooperative, cancelable
//	a, err = hungarian.SolveContext(ctx, cost, hungarian.WithChunkSize(1024))
//	if errors.Is(err, hungarian.ErrCanceled) {
//	  // no partial assignment is ever returned
//	}
//
// Performance:
//
//   - Time:   O(n³) for the padded order n = max(m, cols)
//   - Memory: O(n²) working copy + O(n) potentials
package hungarian
