package hungarian_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowalign/hungarian"
)

// benchmarkSolve runs Solve (or SolveContext when coop) on an n×n random matrix.
func benchmarkSolve(b *testing.B, n int, coop bool) {
	rng := rand.New(rand.NewSource(1))
	cost := randomMatrix(rng, n, n, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if coop {
			_, err = hungarian.SolveContext(context.Background(), cost)
		} else {
			_, err = hungarian.Solve(cost)
		}
		if err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_50 benchmarks the blocking solver on 50×50.
func BenchmarkSolve_50(b *testing.B) { benchmarkSolve(b, 50, false) }

// BenchmarkSolve_200 benchmarks the blocking solver on 200×200.
func BenchmarkSolve_200(b *testing.B) { benchmarkSolve(b, 200, false) }

// BenchmarkSolveContext_200 measures the overhead of cooperative scheduling.
func BenchmarkSolveContext_200(b *testing.B) { benchmarkSolve(b, 200, true) }
