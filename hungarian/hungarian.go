// SPDX-License-Identifier: MIT

package hungarian

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/rowalign/matrix"
)

// Solve — Kuhn–Munkres minimum-cost assignment (blocking).
//
// Description:
//
//	Pairs rows with columns one-to-one minimizing the sum of cost[i][j].
//	Rectangular input is padded to a square of order n = max(rows, cols)
//	with a dominating finite cost (max real cost + 1); every perfect matching
//	of the padded square uses the same number of padding cells, so the real
//	part of the optimum is an optimal assignment of the original matrix.
//	Rows matched to padding are reported as Unassigned.
//
// Algorithm Outline (shortest augmenting path with potentials u, v):
//  1. For each row i = 1..n (in index order) add it to the matching:
//     a. minv[j] = +∞, used[j] = false for all columns.
//     b. Repeat: mark current column j0 used; for every unused column j relax
//     minv[j] with reduced cost a[i0][j] − u[i0] − v[j]; pick the unused
//     column j1 with the smallest minv (lowest index on ties); shift
//     potentials by that delta; move to j1 — until j1 is free.
//     c. Flip the alternating path back to the root column.
//  2. p[j] now holds the row matched to each column.
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(n²) working copy + O(n) for potentials and path arrays
//
// Errors:
//   - ErrRaggedMatrix  — rows have different lengths.
//   - ErrNonFiniteCost — NaN or ±Inf entry.
//   - ErrNegativeCost  — negative entry.
//   - ErrDiverged      — the potentials stopped producing a finite
//     augmenting step (not expected for validated input).
//
// An empty matrix yields an empty assignment; a matrix with zero columns
// yields an all-Unassigned assignment.
func Solve(cost [][]float64) (Assignment, error) {
	return solveRows(cost, nil)
}

// SolveContext — cooperative, cancelable Solve.
//
// The same algorithm as Solve runs on the calling goroutine; every
// chunkSize inner steps it checks ctx.Err() and then calls the yield hook
// (runtime.Gosched by default) so other goroutines sharing the thread make
// progress. The result for an uncanceled ctx is identical to Solve's.
//
// On cancellation it returns the zero Assignment and an error that matches
// both ErrCanceled and ctx.Err() via errors.Is.
func SolveContext(ctx context.Context, cost [][]float64, opts ...Option) (Assignment, error) {
	o := gatherOptions(opts...)

	return solveRows(cost, newBudget(ctx, o))
}

// SolveMatrix is Solve over the matrix abstraction.
func SolveMatrix(m matrix.Matrix) (Assignment, error) {
	return solveMatrix(m, nil)
}

// SolveMatrixContext is SolveContext over the matrix abstraction.
func SolveMatrixContext(ctx context.Context, m matrix.Matrix, opts ...Option) (Assignment, error) {
	o := gatherOptions(opts...)

	return solveMatrix(m, newBudget(ctx, o))
}

// solveRows validates the slice form and handles the degenerate shapes that
// cannot be represented as a Dense before delegating to solveMatrix.
func solveRows(cost [][]float64, b *budget) (Assignment, error) {
	cols, err := matrix.ValidateRectangular(cost)
	if err != nil {
		return Assignment{}, fmt.Errorf("hungarian: cost matrix with %d rows: %w", len(cost), err)
	}
	if len(cost) == 0 || cols == 0 {
		if err = b.check(); err != nil {
			return Assignment{}, err
		}

		return degenerate(len(cost)), nil
	}
	m, err := matrix.NewDenseFromRows(cost)
	if err != nil {
		return Assignment{}, fmt.Errorf("hungarian: cost matrix %dx%d: %w", len(cost), cols, err)
	}

	return solveMatrix(m, b)
}

// degenerate returns the assignment of a matrix with rows rows and no columns.
func degenerate(rows int) Assignment {
	out := make([]int, rows)
	for i := range out {
		out[i] = Unassigned
	}

	return Assignment{RowToCol: out}
}

// solveMatrix validates m, builds the padded working copy and runs the solver.
func solveMatrix(m matrix.Matrix, b *budget) (Assignment, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Assignment{}, fmt.Errorf("hungarian: %w", err)
	}
	if err := matrix.ValidateNonNegativeFinite(m); err != nil {
		return Assignment{}, fmt.Errorf("hungarian: cost matrix %dx%d: %w", m.Rows(), m.Cols(), err)
	}
	if err := b.check(); err != nil {
		return Assignment{}, err
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return degenerate(rows), nil
	}

	s := newSolver(m)
	rowToCol, err := s.run(b)
	if err != nil {
		return Assignment{}, err
	}

	var (
		total float64
		v     float64
	)
	for i, j := range rowToCol {
		if j == Unassigned {
			continue
		}
		v, _ = m.At(i, j)
		total += v
	}

	return Assignment{RowToCol: rowToCol, Cost: total}, nil
}

// solver holds the padded square working copy.
type solver struct {
	n          int       // padded order
	rows, cols int       // real shape
	a          []float64 // n*n row-major costs, padding = dominating cost
}

// newSolver copies m into an n×n buffer padded with a dominating cost.
// Costs above 1 are divided by the largest entry so the potentials stay
// far from overflow; the assignment is unchanged by a positive scale and
// callers sum the unscaled entries. m must already be validated.
func newSolver(m matrix.Matrix) *solver {
	rows, cols := m.Rows(), m.Cols()
	n := rows
	if cols > n {
		n = cols
	}

	var (
		i, j int
		v    float64
		maxC float64
	)
	a := make([]float64, n*n)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			a[i*n+j] = v
			if v > maxC {
				maxC = v
			}
		}
	}
	if maxC > 1 {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				a[i*n+j] /= maxC
			}
		}
		maxC = 1
	}
	pad := maxC + 1
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i >= rows || j >= cols {
				a[i*n+j] = pad
			}
		}
	}

	return &solver{n: n, rows: rows, cols: cols, a: a}
}

// run executes the potentials form of Kuhn–Munkres (1-based internal indices,
// column 0 is the virtual root). b may be nil for the blocking form.
func (s *solver) run(b *budget) ([]int, error) {
	n := s.n
	inf := math.Inf(1)
	var (
		u    = make([]float64, n+1) // row potentials
		v    = make([]float64, n+1) // column potentials
		p    = make([]int, n+1)     // p[j] = row matched to column j (0 = free)
		way  = make([]int, n+1)     // previous column on the augmenting path
		minv = make([]float64, n+1)
		used = make([]bool, n+1)
	)

	var (
		i, j, i0, j0, j1 int
		delta, cur       float64
		err              error
	)
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}
		for {
			used[j0] = true
			i0 = p[j0]
			delta = inf
			j1 = 0
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = s.a[(i0-1)*n+(j-1)] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			if j1 == 0 {
				return nil, fmt.Errorf("%w: row %d has no augmenting column", ErrDiverged, i-1)
			}
			j0 = j1
			if err = b.spend(n); err != nil {
				return nil, err
			}
			if p[j0] == 0 {
				break
			}
		}
		// flip the augmenting path
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, s.rows)
	for i = range rowToCol {
		rowToCol[i] = Unassigned
	}
	for j = 1; j <= n; j++ {
		i = p[j] - 1
		if i < s.rows && j-1 < s.cols {
			rowToCol[i] = j - 1
		}
	}

	return rowToCol, nil
}

// budget tracks steps between suspension points. A nil *budget is the
// blocking mode: every method is a no-op.
type budget struct {
	ctx   context.Context
	chunk int
	yield func()
	steps int
}

func newBudget(ctx context.Context, o Options) *budget {
	if ctx == nil {
		ctx = context.Background()
	}

	return &budget{ctx: ctx, chunk: o.chunkSize, yield: o.yield}
}

// check reports cancellation without yielding.
func (b *budget) check() error {
	if b == nil {
		return nil
	}
	if err := b.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	return nil
}

// spend accounts k steps; at a budget boundary it checks ctx and yields.
func (b *budget) spend(k int) error {
	if b == nil {
		return nil
	}
	b.steps += k
	if b.steps < b.chunk {
		return nil
	}
	b.steps = 0
	if err := b.check(); err != nil {
		return err
	}
	b.yield()

	return nil
}
