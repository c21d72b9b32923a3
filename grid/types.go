package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownStrategy indicates Options.Strategy is not one of the known strategies.
	ErrUnknownStrategy = errors.New("grid: unknown matching strategy")

	// ErrInvalidKeyColumn indicates the key-column strategy was selected without a
	// usable KeyColumnIndex (missing, negative, ignored, or out of range).
	ErrInvalidKeyColumn = errors.New("grid: invalid key column")

	// ErrInvalidSerial indicates an Excel date serial could not be converted.
	ErrInvalidSerial = errors.New("grid: invalid date serial")
)

// NoIndex marks an absent row index in a RowAlignment.
const NoIndex = -1

// NoKeyColumn marks an unset Options.KeyColumnIndex.
const NoKeyColumn = -1

// Row is an ordered sequence of cells. Column position is significant and
// shared across both datasets; reading past the end yields an empty cell.
type Row []Cell

// At returns the cell at column col, or the empty cell when col is outside the row.
func (r Row) At(col int) Cell {
	if col < 0 || col >= len(r) {
		return Empty()
	}

	return r[col]
}

// MaxColumns returns the widest row length across all given row sets.
func MaxColumns(sets ...[]Row) int {
	var best int
	for _, rows := range sets {
		for _, row := range rows {
			if len(row) > best {
				best = len(row)
			}
		}
	}

	return best
}

// Strategy selects how rowmatch pairs rows.
type Strategy int

const (
	// Position pairs row i with row i; trailing rows become added/removed.
	Position Strategy = iota

	// KeyColumn pairs rows whose normalized key cell is equal, in first-seen order.
	KeyColumn

	// LCS anchors identical rows with a longest common subsequence, then
	// resolves the remainder with weighted similarity and exact assignment.
	LCS
)

var strategyNames = [...]string{
	Position:  "position",
	KeyColumn: "key-column",
	LCS:       "lcs",
}

// String returns the canonical strategy name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s >= Position && s <= LCS
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// Accepted names: "position", "key-column" (also "key", "keycolumn"), "lcs".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "position", "pos":
		return Position, nil
	case "key-column", "key", "keycolumn", "key_column":
		return KeyColumn, nil
	case "lcs", "similarity":
		return LCS, nil
	default:
		return Position, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// ColumnProfile holds per-column statistics computed by package profile.
//
//   - UniqueRatio — distinct normalized non-empty values ÷ non-empty values, in [0,1].
//   - EmptyRatio  — empty cells ÷ total rows, in [0,1].
//   - Weight      — discriminative importance; 0 iff the column is ignored.
type ColumnProfile struct {
	Index       int
	UniqueRatio float64
	EmptyRatio  float64
	Weight      float64
}
