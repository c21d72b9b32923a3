// Package rowmatch aligns the rows of two tabular datasets: it decides which
// original rows correspond to which modified rows and which rows were added
// or removed, so a renderer can diff cells of matched rows.
//
// 🚀 Strategies (grid.Options.Strategy):
//
//	Position  — row i ↔ row i; trailing rows are added/removed. O(N).
//	KeyColumn — rows with equal normalized key cells pair up in first-seen
//	            order; duplicate keys pair in encounter order. O(N).
//	LCS       — two phases:
//	            1. anchoring: longest common subsequence over whole-row
//	               fingerprints; every LCS pair is an immediate match.
//	            2. fuzzy resolution: rows left unanchored are profiled, scored
//	               with weighted similarity and paired by exact minimum-cost
//	               assignment (cost = 1 − similarity); pairs below the
//	               dynamic threshold are split into removed + added.
//
// ✨ Guarantees:
//   - every original and every modified row appears in exactly one record;
//   - records come ordered by original index, added rows merged before the
//     first matched row that follows them in the modified dataset;
//   - AlignSync and AlignAsync return identical results for identical input.
//
// ⚙️ Usage:
//
//	opts := grid.DefaultOptions()
//	opts.Strategy = grid.LCS
//
//	// blocking
//	res, err := rowmatch.AlignSync(original, modified, opts)
//
//	// cooperative: yields to the scheduler and honors ctx
//	res, err = rowmatch.AlignAsync(ctx, original, modified, opts)
//	if errors.Is(err, rowmatch.ErrCanceled) {
//	  // canceled: res is nil, never a partial alignment
//	}
//
// Debug events (strategy, sizes, anchors, threshold, rejected pairs) are
// written to the zerolog logger carried by ctx, if any.
package rowmatch
