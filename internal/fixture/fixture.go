// Package fixture loads tabular datasets for the rowalign command and for
// table-driven tests: YAML/JSON grids of scalar cells and .xlsx worksheets.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/rowalign/grid"
)

var (
	// ErrUnsupportedFormat is returned for file extensions Load cannot read.
	ErrUnsupportedFormat = errors.New("fixture: unsupported file format")

	// ErrInvalidCell is returned for a cell value that maps to no cell kind.
	ErrInvalidCell = errors.New("fixture: invalid cell")

	// ErrSheetNotFound is returned when the requested worksheet does not exist.
	ErrSheetNotFound = errors.New("fixture: sheet not found")
)

// Load reads a dataset, choosing the decoder by extension:
// .yaml/.yml/.json via Decode, .xlsx/.xlsm via ReadWorkbook. sheet selects
// the worksheet of a workbook ("" = first) and is ignored otherwise.
func Load(path, sheet string) ([]grid.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("fixture: read %q: %w", path, err)
		}
		rows, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return rows, nil
	case ".xlsx", ".xlsm":
		return ReadWorkbook(path, sheet)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
