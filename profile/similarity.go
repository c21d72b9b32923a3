package profile

import (
	"math"
	"time"

	"github.com/katalvlaran/rowalign/grid"
)

// DateClosenessWindow is the time distance at which two dates score 0.
const DateClosenessWindow = 30 * 24 * time.Hour

// Threshold band for CalculateDynamicThreshold.
const (
	MinThreshold = 0.5
	MaxThreshold = 0.9
)

// SharedWeight is the column weight at which CalculateDynamicThreshold
// starts rising above MinThreshold.
const SharedWeight = 0.5

// Scorer computes weighted row similarity for a fixed profile set. It
// normalizes through one Normalizer; build one per comparison.
type Scorer struct {
	norm     *Normalizer
	profiles []grid.ColumnProfile
}

// NewScorer returns a Scorer using norm and profiles.
func NewScorer(norm *Normalizer, profiles []grid.ColumnProfile) *Scorer {
	return &Scorer{norm: norm, profiles: profiles}
}

// NormalizedRow is a row already passed through the Scorer's Normalizer.
type NormalizedRow []Value

// Prepare normalizes r so it can be scored many times without re-normalizing.
func (s *Scorer) Prepare(r grid.Row) NormalizedRow {
	out := make(NormalizedRow, len(r))
	for i, c := range r {
		out[i] = s.norm.Normalize(c)
	}

	return out
}

// Score returns the weighted similarity of two prepared rows in [0,1].
//
// For each non-ignored column c in [0, max(len(a), len(b), len(profiles))):
// score 1 if the values are equal, numeric or date closeness when both are
// numbers or both are dates, else 0. Scores are averaged with the column
// weights (WeightEpsilon for columns beyond the profiles). When the total
// weight is 0 the result is the unweighted equality ratio over all columns;
// two zero-width rows score 1.
func (s *Scorer) Score(a, b NormalizedRow) float64 {
	width := len(a)
	if len(b) > width {
		width = len(b)
	}
	if len(s.profiles) > width {
		width = len(s.profiles)
	}
	if width == 0 {
		return 1
	}

	var (
		num, den float64
		w        float64
		va, vb   Value
	)
	for c := 0; c < width; c++ {
		w = s.weight(c)
		if w == 0 {
			continue
		}
		va, vb = valueAt(a, c), valueAt(b, c)
		num += w * cellScore(va, vb)
		den += w
	}
	if den > 0 {
		return num / den
	}

	// Degenerate profile: unweighted equality over every column.
	var equal int
	for c := 0; c < width; c++ {
		if valueAt(a, c) == valueAt(b, c) {
			equal++
		}
	}

	return float64(equal) / float64(width)
}

func (s *Scorer) weight(c int) float64 {
	if IsColumnIgnored(c, s.norm.opts) {
		return 0
	}
	if c < len(s.profiles) {
		return s.profiles[c].Weight
	}

	return WeightEpsilon
}

func valueAt(r NormalizedRow, c int) Value {
	if c < len(r) {
		return r[c]
	}

	return EmptyValue
}

// cellScore is 1 for equal values, closeness for two numbers or two dates, else 0.
func cellScore(a, b Value) float64 {
	if a == b {
		return 1
	}
	if a.Kind != b.Kind {
		return 0
	}
	switch a.Kind {
	case grid.KindNumber:
		return numericCloseness(a, b)
	case grid.KindDate:
		return dateCloseness(a, b)
	default:
		return 0
	}
}

// numericCloseness = 1 − |x−y| / max(|x|,|y|), floored at 0. NaN scores 0.
func numericCloseness(a, b Value) float64 {
	if a.Str != "" || b.Str != "" {
		return 0
	}
	scale := math.Max(math.Abs(a.Num), math.Abs(b.Num))
	if scale == 0 || math.IsInf(scale, 0) {
		return 0
	}
	score := 1 - math.Abs(a.Num-b.Num)/scale
	if score < 0 || math.IsNaN(score) {
		return 0
	}

	return score
}

// dateCloseness = 1 − |Δt| / DateClosenessWindow, floored at 0.
func dateCloseness(a, b Value) float64 {
	ta := time.Unix(a.Sec, int64(a.Nsec))
	tb := time.Unix(b.Sec, int64(b.Nsec))
	d := ta.Sub(tb)
	if d < 0 {
		d = -d
	}
	score := 1 - float64(d)/float64(DateClosenessWindow)
	if score < 0 {
		return 0
	}

	return score
}

// WeightedRowSimilarity scores rows a and b in [0,1] using the column
// weights in profiles; see Scorer.Score for the exact rule. A row compared
// with itself scores 1.
func WeightedRowSimilarity(a, b grid.Row, profiles []grid.ColumnProfile, opts grid.Options) float64 {
	s := NewScorer(NewNormalizer(opts), profiles)

	return s.Score(s.Prepare(a), s.Prepare(b))
}

// CalculateDynamicThreshold derives the minimum similarity for accepting a
// fuzzy match from the mean weight m of the non-ignored (weight > 0) columns.
//
// SharedWeight is the weight of a fully populated column whose every value
// reappears once on the other side, the usual state of an unchanged column.
// m is mapped linearly from [SharedWeight, 1] onto [MinThreshold,
// MaxThreshold]: the more columns differ between the datasets, the stricter
// the threshold. m at or below SharedWeight (shared or low-signal columns)
// gives MinThreshold, as does a profile without usable columns.
func CalculateDynamicThreshold(profiles []grid.ColumnProfile) float64 {
	var (
		sum float64
		n   int
	)
	for _, p := range profiles {
		if p.Weight > 0 {
			sum += p.Weight
			n++
		}
	}
	if n == 0 {
		return MinThreshold
	}
	x := (sum/float64(n) - SharedWeight) / (1 - SharedWeight)
	x = math.Min(1, math.Max(0, x))

	return MinThreshold + (MaxThreshold-MinThreshold)*x
}
