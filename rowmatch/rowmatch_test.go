package rowmatch_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowalign/grid"
	"github.com/katalvlaran/rowalign/hungarian"
	"github.com/katalvlaran/rowalign/rowmatch"
)

var allStrategies = []grid.Strategy{grid.Position, grid.KeyColumn, grid.LCS}

// TestPosition pairs rows by index and spills the longer tail.
func TestPosition(t *testing.T) {
	three := table([]any{"a"}, []any{"b"}, []any{"c"})
	two := table([]any{"x"}, []any{"y"})

	got, err := rowmatch.AlignSync(three, two, withStrategy(grid.Position))
	require.NoError(t, err)
	assert.Equal(t, []string{"matched(0,0)", "matched(1,1)", "removed(2)"}, render(got))

	got, err = rowmatch.AlignSync(two, three, withStrategy(grid.Position))
	require.NoError(t, err)
	assert.Equal(t, []string{"matched(0,0)", "matched(1,1)", "added(2)"}, render(got))
}

// TestKeyColumn_Basic covers a removed and an added key.
func TestKeyColumn_Basic(t *testing.T) {
	orig := table([]any{"A", 1}, []any{"B", 2}, []any{"C", 3})
	mod := table([]any{"A", 1}, []any{"C", 3}, []any{"D", 4})

	got, err := rowmatch.AlignSync(orig, mod, withStrategy(grid.KeyColumn))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"matched(0,0)", "removed(1)", "matched(2,1)", "added(2)"},
		render(got))
}

// TestKeyColumn_DuplicateKeys pairs duplicates in encounter order.
func TestKeyColumn_DuplicateKeys(t *testing.T) {
	orig := table([]any{"X", 1}, []any{"X", 2}, []any{"Y", 3})
	mod := table([]any{"X", 9}, []any{"Y", 9}, []any{"X", 9})

	got, err := rowmatch.AlignSync(orig, mod, withStrategy(grid.KeyColumn))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"matched(0,0)", "matched(1,2)", "matched(2,1)"},
		render(got))
}

// TestKeyColumn_Normalized matches keys under case and whitespace folding.
func TestKeyColumn_Normalized(t *testing.T) {
	orig := table([]any{"abc"})
	mod := table([]any{" ABC "})

	opts := withStrategy(grid.KeyColumn)
	got, err := rowmatch.AlignSync(orig, mod, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"removed(0)", "added(0)"}, render(got))

	opts.IgnoreCase, opts.IgnoreWhitespace = true, true
	got, err = rowmatch.AlignSync(orig, mod, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"matched(0,0)"}, render(got))
}

// TestKeyColumn_InvalidKey rejects unusable key indices.
func TestKeyColumn_InvalidKey(t *testing.T) {
	rows := table([]any{"a", "b"})

	cases := map[string]func(o *grid.Options){
		"negative":     func(o *grid.Options) { o.KeyColumnIndex = -1 },
		"out of range": func(o *grid.Options) { o.KeyColumnIndex = 2 },
		"ignored": func(o *grid.Options) {
			o.KeyColumnIndex = 1
			o.IgnoredColumns = grid.NewColumnSet(1)
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			opts := withStrategy(grid.KeyColumn)
			mutate(&opts)
			got, err := rowmatch.AlignSync(rows, rows, opts)
			require.ErrorIs(t, err, rowmatch.ErrInvalidKeyColumn)
			assert.Nil(t, got)
		})
	}

	// the key only has to exist on one side
	opts := withStrategy(grid.KeyColumn)
	opts.KeyColumnIndex = 1
	_, err := rowmatch.AlignSync(table([]any{"a"}), rows, opts)
	assert.NoError(t, err)

	// nothing to check against when both sides are empty
	opts.KeyColumnIndex = 7
	got, err := rowmatch.AlignSync(nil, nil, opts)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

// TestUnknownStrategy is rejected before any work.
func TestUnknownStrategy(t *testing.T) {
	opts := grid.DefaultOptions()
	opts.Strategy = grid.Strategy(42)
	_, err := rowmatch.AlignSync(nil, nil, opts)
	assert.ErrorIs(t, err, rowmatch.ErrUnknownStrategy)
}

// TestLCS_RemovedRow is the canonical anchoring case.
func TestLCS_RemovedRow(t *testing.T) {
	orig := table([]any{"A"}, []any{"B"}, []any{"C"})
	mod := table([]any{"A"}, []any{"C"})

	got, err := rowmatch.AlignSync(orig, mod, withStrategy(grid.LCS))
	require.NoError(t, err)
	assert.Equal(t, []string{"matched(0,0)", "removed(1)", "matched(2,1)"}, render(got))
}

// TestLCS_EditedRow resolves a row with one edited cell through fuzzy matching.
func TestLCS_EditedRow(t *testing.T) {
	orig := table(
		[]any{1, "apple", 30},
		[]any{2, "pear", 10},
		[]any{3, "plum", 5},
	)
	mod := table(
		[]any{1, "apple", 30},
		[]any{2, "pear", 11},
		[]any{3, "plum", 5},
	)

	got, err := rowmatch.AlignSync(orig, mod, withStrategy(grid.LCS))
	require.NoError(t, err)
	assert.Equal(t, []string{"matched(0,0)", "matched(1,1)", "matched(2,2)"}, render(got))
}

// TestLCS_EditedTextCell pairs a row whose only change is one text cell.
func TestLCS_EditedTextCell(t *testing.T) {
	orig := table(
		[]any{"P-1", "shirt", "blue", "M", 19.9},
		[]any{"P-2", "shirt", "green", "L", 19.9},
		[]any{"P-3", "scarf", "red", "S", 9.5},
	)
	mod := table(
		[]any{"P-1", "shirt", "blue", "M", 19.9},
		[]any{"P-2", "shirt", "yellow", "L", 19.9},
		[]any{"P-3", "scarf", "red", "S", 9.5},
	)

	got, err := rowmatch.AlignSync(orig, mod, withStrategy(grid.LCS))
	require.NoError(t, err)
	assert.Equal(t, []string{"matched(0,0)", "matched(1,1)", "matched(2,2)"}, render(got))
}

// TestLCS_ReplacedRow splits a dissimilar pair into removed + added.
func TestLCS_ReplacedRow(t *testing.T) {
	orig := table(
		[]any{1, "apple", 30},
		[]any{2, "pear", 10},
		[]any{3, "plum", 5},
	)
	mod := table(
		[]any{1, "apple", 30},
		[]any{9, "kiwi", "n/a"},
		[]any{3, "plum", 5},
	)

	got, err := rowmatch.AlignSync(orig, mod, withStrategy(grid.LCS))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"matched(0,0)", "removed(1)", "added(1)", "matched(2,2)"},
		render(got))
}

// TestLCS_MovedRow finds a row moved to the end.
func TestLCS_MovedRow(t *testing.T) {
	orig := inventory(4)
	mod := append(append([]grid.Row{}, orig[1:]...), orig[0])

	got, err := rowmatch.AlignSync(orig, mod, withStrategy(grid.LCS))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"matched(0,3)", "matched(1,0)", "matched(2,1)", "matched(3,2)"},
		render(got))
}

// TestLCS_IgnoredColumns anchors rows differing only in ignored columns.
func TestLCS_IgnoredColumns(t *testing.T) {
	orig := table([]any{"a", 1, "2024-01-01"}, []any{"b", 2, "2024-01-01"})
	mod := table([]any{"a", 1, "2024-06-30"}, []any{"b", 2, "2024-06-30"})

	opts := withStrategy(grid.LCS)
	opts.IgnoredColumns = grid.NewColumnSet(2)
	got, err := rowmatch.AlignSync(orig, mod, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"matched(0,0)", "matched(1,1)"}, render(got))
}

// TestLCS_Dates compares dates as instants regardless of zone.
func TestLCS_Dates(t *testing.T) {
	utc := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	kyiv := utc.In(time.FixedZone("EET", 2*60*60))

	got, err := rowmatch.AlignSync(
		table([]any{"x", utc}),
		table([]any{"x", kyiv}),
		withStrategy(grid.LCS))
	require.NoError(t, err)
	assert.Equal(t, []string{"matched(0,0)"}, render(got))
}

// TestLCS_Reversed matches every row of a reversed dataset.
func TestLCS_Reversed(t *testing.T) {
	const n = 40
	orig := inventory(n)

	got, err := rowmatch.AlignSync(orig, reversed(orig), withStrategy(grid.LCS))
	require.NoError(t, err)
	require.Len(t, got, n)
	for i, rec := range got {
		assert.Equal(t, grid.MatchedRows(i, n-1-i), rec)
	}
}

// TestEmptyInputs returns empty results for every strategy.
func TestEmptyInputs(t *testing.T) {
	for _, s := range allStrategies {
		got, err := rowmatch.AlignSync(nil, nil, withStrategy(s))
		require.NoError(t, err, s.String())
		assert.Empty(t, got, s.String())
	}

	rows := table([]any{"a"}, []any{"b"})
	for _, s := range allStrategies {
		got, err := rowmatch.AlignSync(rows, nil, withStrategy(s))
		require.NoError(t, err, s.String())
		assert.Equal(t, []string{"removed(0)", "removed(1)"}, render(got), s.String())

		got, err = rowmatch.AlignSync(nil, rows, withStrategy(s))
		require.NoError(t, err, s.String())
		assert.Equal(t, []string{"added(0)", "added(1)"}, render(got), s.String())
	}
}

// TestPartition checks on random data that every row is used exactly once
// and records are ordered by original index.
func TestPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		orig := randomRows(rng, rng.Intn(25))
		mod := randomRows(rng, rng.Intn(25))
		for _, s := range allStrategies {
			got, err := rowmatch.AlignSync(orig, mod, withStrategy(s))
			require.NoError(t, err)
			require.NoError(t, rowmatch.Validate(got, len(orig), len(mod)), "%s trial %d", s, trial)

			last := -1
			for _, rec := range got {
				if rec.HasOriginal() {
					assert.Greater(t, rec.OriginalIndex, last)
					last = rec.OriginalIndex
				}
			}
		}
	}
}

// TestSyncAsyncEquivalence compares both paths on random data with the
// smallest solver chunk, so the cooperative path yields as often as possible.
func TestSyncAsyncEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ctx := context.Background()
	for trial := 0; trial < 25; trial++ {
		orig := randomRows(rng, 1+rng.Intn(30))
		mod := randomRows(rng, 1+rng.Intn(30))
		for _, s := range allStrategies {
			want, err := rowmatch.AlignSync(orig, mod, withStrategy(s))
			require.NoError(t, err)

			got, err := rowmatch.AlignAsync(ctx, orig, mod, withStrategy(s), hungarian.WithChunkSize(1))
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s trial %d", s, trial)

			cctx, cancel := context.WithCancel(ctx)
			got, err = rowmatch.Align(cctx, orig, mod, withStrategy(s))
			cancel()
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s trial %d (dispatcher)", s, trial)
		}
	}
}

// TestDeterminism repeats the same call.
func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	orig, mod := randomRows(rng, 30), randomRows(rng, 30)
	first, err := rowmatch.AlignSync(orig, mod, withStrategy(grid.LCS))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := rowmatch.AlignSync(orig, mod, withStrategy(grid.LCS))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestAsync_CanceledBeforeStart returns no result for a done context.
func TestAsync_CanceledBeforeStart(t *testing.T) {
	orig := inventory(500)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, s := range allStrategies {
		got, err := rowmatch.AlignAsync(ctx, orig, reversed(orig), withStrategy(s))
		assert.Nil(t, got, s.String())
		assert.ErrorIs(t, err, rowmatch.ErrCanceled)
		assert.ErrorIs(t, err, context.Canceled)

		got, err = rowmatch.Align(ctx, orig, reversed(orig), withStrategy(s))
		assert.Nil(t, got, s.String())
		assert.ErrorIs(t, err, rowmatch.ErrCanceled)
	}
}

// TestAsync_Deadline reports the deadline as the cause.
func TestAsync_Deadline(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := rowmatch.AlignAsync(ctx, inventory(3), inventory(3), withStrategy(grid.LCS))
	assert.ErrorIs(t, err, rowmatch.ErrCanceled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestAsync_CanceledDuringSolve cancels from inside the solver's yield hook.
func TestAsync_CanceledDuringSolve(t *testing.T) {
	orig := inventory(120)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	yields := 0
	hook := func() {
		yields++
		if yields == 3 {
			cancel()
		}
	}
	got, err := rowmatch.AlignAsync(ctx, orig, reversed(orig), withStrategy(grid.LCS),
		hungarian.WithChunkSize(1), hungarian.WithYield(hook))
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rowmatch.ErrCanceled))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 3, yields)
}

// TestAlign_Dispatch runs the blocking path for a background context.
func TestAlign_Dispatch(t *testing.T) {
	orig := inventory(20)
	mod := reversed(orig)

	want, err := rowmatch.AlignSync(orig, mod, withStrategy(grid.LCS))
	require.NoError(t, err)

	got, err := rowmatch.Align(context.Background(), orig, mod, withStrategy(grid.LCS))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestDebugLogging writes phase events to the context logger.
func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	orig := table([]any{1, "apple", 30}, []any{2, "pear", 10})
	mod := table([]any{1, "apple", 30}, []any{2, "pear", 11})
	_, err := rowmatch.AlignAsync(ctx, orig, mod, withStrategy(grid.LCS))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "rowmatch: align")
	assert.Contains(t, out, "rowmatch: lcs anchoring")
	assert.Contains(t, out, "rowmatch: fuzzy resolution")
	assert.Contains(t, out, `"strategy":"lcs"`)
}
