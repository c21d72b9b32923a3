package rowmatch

import (
	"github.com/katalvlaran/rowalign/grid"
	"github.com/katalvlaran/rowalign/hungarian"
)

var (
	// ErrCanceled is returned when the context of a cooperative call is done.
	// It is the same sentinel the solver uses and also matches ctx.Err().
	ErrCanceled = hungarian.ErrCanceled

	// ErrInvalidKeyColumn reports an unusable KeyColumnIndex for the key-column strategy.
	ErrInvalidKeyColumn = grid.ErrInvalidKeyColumn

	// ErrUnknownStrategy reports an Options.Strategy outside the known set.
	ErrUnknownStrategy = grid.ErrUnknownStrategy
)

// AsyncCellThreshold is the size (unresolved original rows × unresolved
// modified rows) above which Align switches the fuzzy phase to the
// cooperative solver when its context is cancelable.
const AsyncCellThreshold = 64 * 64

// Summary counts alignment records by type.
type Summary struct {
	Matched int `yaml:"matched" json:"matched"`
	Added   int `yaml:"added" json:"added"`
	Removed int `yaml:"removed" json:"removed"`
}

// Total is the number of records.
func (s Summary) Total() int { return s.Matched + s.Added + s.Removed }
