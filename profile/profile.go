package profile

import "github.com/katalvlaran/rowalign/grid"

// WeightEpsilon is the weight floor of every non-ignored column.
const WeightEpsilon = 0.01

// ProfileColumns computes one ColumnProfile per column index 0..w-1, where w
// is the widest row across both datasets. Pass nil for modified to profile a
// single dataset.
//
//   - EmptyRatio  = empty cells ÷ rows, over both datasets.
//   - UniqueRatio = distinct normalized values ÷ non-empty values, both
//     datasets pooled. A value present on both sides counts once, so a column
//     whose cells survive unchanged scores lower than the column that was
//     edited between the two versions.
//   - Weight      = max(UniqueRatio·(1−EmptyRatio), WeightEpsilon), or 0 when ignored.
//
// Degenerate inputs (no rows, all-empty columns) yield ratios of 0 and the
// epsilon weight; nothing divides by zero.
//
// Complexity: O(R·w) time, O(R) extra space per column, R = total rows.
func ProfileColumns(original, modified []grid.Row, opts grid.Options) []grid.ColumnProfile {
	width := grid.MaxColumns(original, modified)
	norm := NewNormalizer(opts)
	totalRows := len(original) + len(modified)

	out := make([]grid.ColumnProfile, width)
	seen := make(map[Value]struct{}, totalRows)
	var (
		col      int
		nonEmpty int
		empties  int
		v        Value
	)
	for col = 0; col < width; col++ {
		clear(seen)
		nonEmpty, empties = 0, 0
		for _, rows := range [2][]grid.Row{original, modified} {
			for _, r := range rows {
				v = norm.Normalize(r.At(col))
				if v.IsEmpty() {
					empties++
					continue
				}
				nonEmpty++
				seen[v] = struct{}{}
			}
		}

		p := grid.ColumnProfile{Index: col}
		if totalRows > 0 {
			p.EmptyRatio = float64(empties) / float64(totalRows)
		}
		if nonEmpty > 0 {
			p.UniqueRatio = float64(len(seen)) / float64(nonEmpty)
		}
		p.Weight = columnWeight(col, p, opts)
		out[col] = p
	}

	return out
}

// columnWeight applies the ignore rule and the epsilon floor.
func columnWeight(col int, p grid.ColumnProfile, opts grid.Options) float64 {
	if IsColumnIgnored(col, opts) {
		return 0
	}
	w := p.UniqueRatio * (1 - p.EmptyRatio)
	if w < WeightEpsilon {
		return WeightEpsilon
	}

	return w
}
