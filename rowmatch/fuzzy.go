package rowmatch

import (
	"github.com/katalvlaran/rowalign/grid"
	"github.com/katalvlaran/rowalign/hungarian"
	"github.com/katalvlaran/rowalign/matrix"
	"github.com/katalvlaran/rowalign/profile"
)

// resolve pairs the unanchored rows uo (original) and um (modified).
//
// Implementation:
//   - Stage 1: profile the unresolved rows only and derive the threshold.
//   - Stage 2: score every (uo[k], um[l]) pair; cost = 1 − similarity.
//   - Stage 3: exact minimum-cost assignment over the cost matrix.
//   - Stage 4: keep pairs with similarity ≥ threshold; everything else is
//     removed (original side) or added (modified side).
//
// Complexity: O(K·L·w) scoring plus O(max(K,L)³) assignment.
func (r *run) resolve(original, modified []grid.Row, uo, um []int) ([]grid.RowAlignment, error) {
	out := make([]grid.RowAlignment, 0, len(uo)+len(um))
	if len(uo) == 0 || len(um) == 0 {
		for _, i := range uo {
			out = append(out, grid.RemovedRow(i))
		}
		for _, j := range um {
			out = append(out, grid.AddedRow(j))
		}

		return out, nil
	}

	subOrig, subMod := pick(original, uo), pick(modified, um)
	profiles := profile.ProfileColumns(subOrig, subMod, r.opts)
	threshold := profile.CalculateDynamicThreshold(profiles)
	scorer := profile.NewScorer(r.norm, profiles)

	prepOrig := make([]profile.NormalizedRow, len(subOrig))
	for k, row := range subOrig {
		prepOrig[k] = scorer.Prepare(row)
	}
	prepMod := make([]profile.NormalizedRow, len(subMod))
	for l, row := range subMod {
		prepMod[l] = scorer.Prepare(row)
	}

	cost, err := matrix.NewDense(len(uo), len(um))
	if err != nil {
		return nil, err
	}
	sims := make([]float64, len(uo)*len(um))
	var s float64
	for k := range prepOrig {
		for l := range prepMod {
			s = scorer.Score(prepOrig[k], prepMod[l])
			sims[k*len(um)+l] = s
			if err = cost.Set(k, l, max(1-s, 0)); err != nil {
				return nil, err
			}
		}
		if err = r.tick(len(um) * max(len(profiles), 1)); err != nil {
			return nil, err
		}
	}
	if err = r.checkpoint(); err != nil {
		return nil, err
	}

	cells := len(uo) * len(um)
	var asg hungarian.Assignment
	if r.cooperative(cells) {
		asg, err = hungarian.SolveMatrixContext(r.ctx, cost, r.solverOpts...)
	} else {
		asg, err = hungarian.SolveMatrix(cost)
	}
	if err != nil {
		return nil, err
	}

	rejected := 0
	for k, l := range asg.RowToCol {
		if l == hungarian.Unassigned {
			out = append(out, grid.RemovedRow(uo[k]))
			continue
		}
		if sims[k*len(um)+l] < threshold {
			rejected++
			out = append(out, grid.RemovedRow(uo[k]))
			continue
		}
		out = append(out, grid.MatchedRows(uo[k], um[l]))
	}
	for l, k := range asg.ColToRow(len(um)) {
		if k == hungarian.Unassigned || sims[k*len(um)+l] < threshold {
			out = append(out, grid.AddedRow(um[l]))
		}
	}

	r.log.Debug().
		Int("unresolved_original", len(uo)).
		Int("unresolved_modified", len(um)).
		Float64("threshold", threshold).
		Bool("cooperative", r.cooperative(cells)).
		Int("rejected", rejected).
		Msg("rowmatch: fuzzy resolution")

	return out, nil
}

func pick(rows []grid.Row, idx []int) []grid.Row {
	out := make([]grid.Row, len(idx))
	for k, i := range idx {
		out[k] = rows[i]
	}

	return out
}
