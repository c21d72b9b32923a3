package grid

import "fmt"

// AlignmentType classifies a RowAlignment record.
type AlignmentType uint8

const (
	// InvalidAlignment is the zero value; no constructor produces it.
	InvalidAlignment AlignmentType = iota
	// Matched pairs an original row with a modified row.
	Matched
	// Added is a row present only in the modified dataset.
	Added
	// Removed is a row present only in the original dataset.
	Removed
)

// String returns "matched", "added" or "removed".
func (t AlignmentType) String() string {
	switch t {
	case Matched:
		return "matched"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("AlignmentType(%d)", uint8(t))
	}
}

// RowAlignment is one row event of an alignment result. Absent indices hold NoIndex.
// Build records with MatchedRows, AddedRow and RemovedRow so the per-record
// invariant (matched ⇒ both, added ⇒ modified only, removed ⇒ original only) holds;
// the zero RowAlignment has type InvalidAlignment and is never WellFormed.
type RowAlignment struct {
	OriginalIndex int
	ModifiedIndex int
	Type          AlignmentType
}

// MatchedRows pairs original row o with modified row m.
func MatchedRows(o, m int) RowAlignment {
	return RowAlignment{OriginalIndex: o, ModifiedIndex: m, Type: Matched}
}

// AddedRow records modified row m as added.
func AddedRow(m int) RowAlignment {
	return RowAlignment{OriginalIndex: NoIndex, ModifiedIndex: m, Type: Added}
}

// RemovedRow records original row o as removed.
func RemovedRow(o int) RowAlignment {
	return RowAlignment{OriginalIndex: o, ModifiedIndex: NoIndex, Type: Removed}
}

// HasOriginal reports whether the record references an original row.
func (a RowAlignment) HasOriginal() bool { return a.OriginalIndex >= 0 }

// HasModified reports whether the record references a modified row.
func (a RowAlignment) HasModified() bool { return a.ModifiedIndex >= 0 }

// WellFormed reports whether the record's indices agree with its type.
func (a RowAlignment) WellFormed() bool {
	switch a.Type {
	case Matched:
		return a.HasOriginal() && a.HasModified()
	case Added:
		return !a.HasOriginal() && a.HasModified()
	case Removed:
		return a.HasOriginal() && !a.HasModified()
	default:
		return false
	}
}

// String renders e.g. "matched(0,2)", "added(3)", "removed(1)".
func (a RowAlignment) String() string {
	switch a.Type {
	case Matched:
		return fmt.Sprintf("matched(%d,%d)", a.OriginalIndex, a.ModifiedIndex)
	case Added:
		return fmt.Sprintf("added(%d)", a.ModifiedIndex)
	case Removed:
		return fmt.Sprintf("removed(%d)", a.OriginalIndex)
	default:
		return fmt.Sprintf("%s(%d,%d)", a.Type, a.OriginalIndex, a.ModifiedIndex)
	}
}
