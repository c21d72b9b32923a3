package rowmatch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/rowalign/grid"
)

// ErrInvalidAlignment is returned by Validate.
var ErrInvalidAlignment = errors.New("rowmatch: invalid alignment")

// orderAlignments puts records into output order:
//   - matched and removed records ascend by original index;
//   - added records ascend by modified index and are emitted just before
//     the first matched record whose modified index is larger;
//   - remaining added records go last.
func orderAlignments(recs []grid.RowAlignment) []grid.RowAlignment {
	var withOrig, added []grid.RowAlignment
	for _, rec := range recs {
		if rec.HasOriginal() {
			withOrig = append(withOrig, rec)
		} else {
			added = append(added, rec)
		}
	}
	sort.Slice(withOrig, func(x, y int) bool {
		return withOrig[x].OriginalIndex < withOrig[y].OriginalIndex
	})
	sort.Slice(added, func(x, y int) bool {
		return added[x].ModifiedIndex < added[y].ModifiedIndex
	})

	out := make([]grid.RowAlignment, 0, len(recs))
	k := 0
	for _, rec := range withOrig {
		if rec.Type == grid.Matched {
			for k < len(added) && added[k].ModifiedIndex < rec.ModifiedIndex {
				out = append(out, added[k])
				k++
			}
		}
		out = append(out, rec)
	}

	return append(out, added[k:]...)
}

// Summarize counts records by type.
func Summarize(alignments []grid.RowAlignment) Summary {
	var s Summary
	for _, a := range alignments {
		switch a.Type {
		case grid.Matched:
			s.Matched++
		case grid.Added:
			s.Added++
		case grid.Removed:
			s.Removed++
		}
	}

	return s
}

// Validate checks that alignments is a well-formed partition of
// nOriginal original rows and nModified modified rows: every record is
// well formed, every index is in range and used exactly once.
func Validate(alignments []grid.RowAlignment, nOriginal, nModified int) error {
	if nOriginal < 0 || nModified < 0 {
		return fmt.Errorf("%w: negative row count (%d, %d)", ErrInvalidAlignment, nOriginal, nModified)
	}
	seenOrig := make([]bool, nOriginal)
	seenMod := make([]bool, nModified)
	for n, a := range alignments {
		if !a.WellFormed() {
			return fmt.Errorf("%w: record %d %v is malformed", ErrInvalidAlignment, n, a)
		}
		if a.HasOriginal() {
			if a.OriginalIndex >= nOriginal {
				return fmt.Errorf("%w: record %d original index %d out of range [0,%d)",
					ErrInvalidAlignment, n, a.OriginalIndex, nOriginal)
			}
			if seenOrig[a.OriginalIndex] {
				return fmt.Errorf("%w: original row %d appears twice", ErrInvalidAlignment, a.OriginalIndex)
			}
			seenOrig[a.OriginalIndex] = true
		}
		if a.HasModified() {
			if a.ModifiedIndex >= nModified {
				return fmt.Errorf("%w: record %d modified index %d out of range [0,%d)",
					ErrInvalidAlignment, n, a.ModifiedIndex, nModified)
			}
			if seenMod[a.ModifiedIndex] {
				return fmt.Errorf("%w: modified row %d appears twice", ErrInvalidAlignment, a.ModifiedIndex)
			}
			seenMod[a.ModifiedIndex] = true
		}
	}
	for i, ok := range seenOrig {
		if !ok {
			return fmt.Errorf("%w: original row %d is missing", ErrInvalidAlignment, i)
		}
	}
	for j, ok := range seenMod {
		if !ok {
			return fmt.Errorf("%w: modified row %d is missing", ErrInvalidAlignment, j)
		}
	}

	return nil
}
