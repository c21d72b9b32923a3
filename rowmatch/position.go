package rowmatch

import "github.com/katalvlaran/rowalign/grid"

// alignPosition pairs row i with row i; the longer side's tail becomes
// removed or added rows.
func alignPosition(nOrig, nMod int) []grid.RowAlignment {
	common := min(nOrig, nMod)
	out := make([]grid.RowAlignment, 0, max(nOrig, nMod))
	for i := 0; i < common; i++ {
		out = append(out, grid.MatchedRows(i, i))
	}
	for i := common; i < nOrig; i++ {
		out = append(out, grid.RemovedRow(i))
	}
	for j := common; j < nMod; j++ {
		out = append(out, grid.AddedRow(j))
	}

	return out
}
