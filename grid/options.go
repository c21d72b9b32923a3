package grid

import (
	"fmt"
	"sort"
)

// ColumnSet is a set of column indices.
type ColumnSet map[int]struct{}

// NewColumnSet builds a ColumnSet from the given indices.
func NewColumnSet(idx ...int) ColumnSet {
	s := make(ColumnSet, len(idx))
	for _, i := range idx {
		s[i] = struct{}{}
	}

	return s
}

// Has reports membership. A nil set contains nothing.
func (s ColumnSet) Has(i int) bool {
	_, ok := s[i]

	return ok
}

// Sorted returns the members in ascending order.
func (s ColumnSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}

// Options configures normalization and row matching.
//
// Fields:
//   - IgnoreWhitespace — trim leading/trailing whitespace of text before comparing.
//   - IgnoreCase       — case-fold text before comparing.
//   - Strategy         — Position, KeyColumn or LCS.
//   - KeyColumnIndex   — key column for the KeyColumn strategy (NoKeyColumn when unset).
//   - IgnoredColumns   — columns excluded from similarity scoring and key comparison.
//
// Example:
//
//	opts := grid.DefaultOptions()
//	opts.Strategy = grid.LCS
//	opts.IgnoreCase = true
//	opts.IgnoredColumns = grid.NewColumnSet(3) // e.g. a "last modified" column
type Options struct {
	IgnoreWhitespace bool
	IgnoreCase       bool
	Strategy         Strategy
	KeyColumnIndex   int
	IgnoredColumns   ColumnSet
}

// DefaultOptions returns the position strategy, case- and whitespace-sensitive,
// with no ignored columns and no key column.
func DefaultOptions() Options {
	return Options{
		Strategy:       Position,
		KeyColumnIndex: NoKeyColumn,
	}
}

// Validate checks the option combination that can be checked without data:
// the strategy must be known and KeyColumn needs a non-negative, non-ignored key.
// Range checks against actual column counts happen in rowmatch.
func (o Options) Validate() error {
	if !o.Strategy.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(o.Strategy))
	}
	if o.Strategy != KeyColumn {
		return nil
	}
	if o.KeyColumnIndex < 0 {
		return fmt.Errorf("%w: key-column strategy requires KeyColumnIndex >= 0, got %d",
			ErrInvalidKeyColumn, o.KeyColumnIndex)
	}
	if o.IgnoredColumns.Has(o.KeyColumnIndex) {
		return fmt.Errorf("%w: key column %d is listed in IgnoredColumns",
			ErrInvalidKeyColumn, o.KeyColumnIndex)
	}

	return nil
}
