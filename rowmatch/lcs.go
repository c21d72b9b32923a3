package rowmatch

import (
	"github.com/katalvlaran/rowalign/grid"
)

// anchor is one LCS pair: original row i ↔ modified row j.
type anchor struct{ i, j int }

// alignLCS runs the two-phase strategy: fingerprint anchoring, then
// fuzzy resolution of everything left over.
func (r *run) alignLCS(original, modified []grid.Row) ([]grid.RowAlignment, error) {
	width := grid.MaxColumns(original, modified)
	a, b, err := r.fingerprintIDs(original, modified, width)
	if err != nil {
		return nil, err
	}

	anchors, err := r.lcsAnchors(a, b)
	if err != nil {
		return nil, err
	}
	if err = r.checkpoint(); err != nil {
		return nil, err
	}

	out := make([]grid.RowAlignment, 0, len(original)+len(modified))
	origDone := make([]bool, len(original))
	modDone := make([]bool, len(modified))
	for _, p := range anchors {
		origDone[p.i], modDone[p.j] = true, true
		out = append(out, grid.MatchedRows(p.i, p.j))
	}

	r.log.Debug().
		Int("width", width).
		Int("anchors", len(anchors)).
		Msg("rowmatch: lcs anchoring")

	fuzzy, err := r.resolve(original, modified, pending(origDone), pending(modDone))
	if err != nil {
		return nil, err
	}

	return append(out, fuzzy...), nil
}

// fingerprintIDs interns row fingerprints into small integers shared by
// both datasets, so the DP compares ints instead of strings.
func (r *run) fingerprintIDs(original, modified []grid.Row, width int) (a, b []int, err error) {
	ids := make(map[string]int, len(original)+len(modified))
	intern := func(rows []grid.Row) ([]int, error) {
		out := make([]int, len(rows))
		for k, row := range rows {
			fp := r.norm.Fingerprint(row, width)
			id, ok := ids[fp]
			if !ok {
				id = len(ids)
				ids[fp] = id
			}
			out[k] = id
			if err := r.tick(width + 1); err != nil {
				return nil, err
			}
		}

		return out, nil
	}
	if a, err = intern(original); err != nil {
		return nil, nil, err
	}
	if b, err = intern(modified); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// lcsAnchors returns the pairs of one longest common subsequence of a and b,
// ascending in both indices.
//
// Implementation:
//   - Stage 1: strip the common prefix and suffix; both are always part of
//     some LCS.
//   - Stage 2: fill the suffix-form DP table over the middle
//     (dp[i][j] = LCS of a[i:], b[j:]) in a flat int32 slice.
//   - Stage 3: walk forward from (0,0), taking equal pairs and otherwise
//     stepping toward the larger neighbour (original side on ties).
//
// Complexity: O(n·m) time and memory over the middle section.
func (r *run) lcsAnchors(a, b []int) ([]anchor, error) {
	n, m := len(a), len(b)

	pre := 0
	for pre < n && pre < m && a[pre] == b[pre] {
		pre++
	}
	suf := 0
	for suf < n-pre && suf < m-pre && a[n-1-suf] == b[m-1-suf] {
		suf++
	}

	out := make([]anchor, 0, min(n, m))
	for k := 0; k < pre; k++ {
		out = append(out, anchor{k, k})
	}

	mid, err := r.lcsMiddle(a[pre:n-suf], b[pre:m-suf])
	if err != nil {
		return nil, err
	}
	for _, p := range mid {
		out = append(out, anchor{p.i + pre, p.j + pre})
	}

	for k := suf; k > 0; k-- {
		out = append(out, anchor{n - k, m - k})
	}

	return out, nil
}

func (r *run) lcsMiddle(a, b []int) ([]anchor, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil, nil
	}

	stride := m + 1
	dp := make([]int32, (n+1)*stride)
	var i, j int
	for i = n - 1; i >= 0; i-- {
		row, next := i*stride, (i+1)*stride
		for j = m - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				dp[row+j] = dp[next+j+1] + 1
			case dp[next+j] >= dp[row+j+1]:
				dp[row+j] = dp[next+j]
			default:
				dp[row+j] = dp[row+j+1]
			}
		}
		if err := r.tick(m); err != nil {
			return nil, err
		}
	}

	out := make([]anchor, 0, dp[0])
	i, j = 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			out = append(out, anchor{i, j})
			i++
			j++
		case dp[(i+1)*stride+j] >= dp[i*stride+j+1]:
			i++
		default:
			j++
		}
	}

	return out, nil
}

// pending lists the indices not yet marked done.
func pending(done []bool) []int {
	var out []int
	for k, ok := range done {
		if !ok {
			out = append(out, k)
		}
	}

	return out
}
