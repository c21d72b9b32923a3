package fixture

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/rowalign/grid"
)

// dateLayouts are tried in order for {date: "..."} cells.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Decode parses a YAML (or JSON) document holding a list of rows, each a
// list of cells:
//
//	- [SKU-1, lamp, 30, true, null]
//	- [SKU-2, desk, {date: 2024-01-02}, {value: 120, formula: "=B2*2"}]
//
// Scalars map to text, number, boolean and empty cells. A map cell may hold
// value, date (string), serial (Excel date serial; date1904 selects the
// epoch), formula and type keys.
func Decode(data []byte) ([]grid.Row, error) {
	var raw [][]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}

	return Rows(raw)
}

// Rows converts decoded row values into grid rows.
func Rows(raw [][]any) ([]grid.Row, error) {
	out := make([]grid.Row, len(raw))
	for i, vals := range raw {
		row := make(grid.Row, len(vals))
		for j, v := range vals {
			c, err := CellFromValue(v)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			row[j] = c
		}
		out[i] = row
	}

	return out, nil
}

// CellFromValue maps one decoded value to a cell.
func CellFromValue(v any) (grid.Cell, error) {
	switch x := v.(type) {
	case nil:
		return grid.Empty(), nil
	case string:
		return grid.Text(x), nil
	case bool:
		return grid.Bool(x), nil
	case time.Time:
		return grid.Date(x), nil
	case map[string]any:
		return cellFromMap(x)
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, val := range x {
			m[fmt.Sprint(k)] = val
		}
		return cellFromMap(m)
	}
	if f, ok := toFloat(v); ok {
		return grid.Number(f), nil
	}

	return grid.Cell{}, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidCell, v, v)
}

func cellFromMap(m map[string]any) (grid.Cell, error) {
	for _, k := range sortedKeys(m) {
		switch k {
		case "value", "date", "serial", "date1904", "formula", "type":
		default:
			return grid.Cell{}, fmt.Errorf("%w: unknown key %q", ErrInvalidCell, k)
		}
	}

	var (
		c   = grid.Empty()
		err error
	)
	switch {
	case m["date"] != nil:
		c, err = parseDate(m["date"])
	case m["serial"] != nil:
		serial, ok := toFloat(m["serial"])
		if !ok {
			return grid.Cell{}, fmt.Errorf("%w: serial %v is not a number", ErrInvalidCell, m["serial"])
		}
		date1904, _ := m["date1904"].(bool)
		c, err = grid.DateFromSerial(serial, date1904)
	case m["value"] != nil:
		switch m["value"].(type) {
		case map[string]any, map[any]any:
			return grid.Cell{}, fmt.Errorf("%w: nested value", ErrInvalidCell)
		}
		c, err = CellFromValue(m["value"])
	}
	if err != nil {
		return grid.Cell{}, err
	}

	if f, ok := m["formula"].(string); ok {
		c = c.WithFormula(f)
	}
	if t, ok := m["type"].(string); ok {
		c = c.WithTypeTag(t)
	}

	return c, nil
}

func parseDate(v any) (grid.Cell, error) {
	switch x := v.(type) {
	case time.Time:
		return grid.Date(x), nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return grid.Date(t), nil
			}
		}
		return grid.Cell{}, fmt.Errorf("%w: unrecognized date %q", ErrInvalidCell, x)
	default:
		return grid.Cell{}, fmt.Errorf("%w: date %v (%T)", ErrInvalidCell, v, v)
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint:
		return float64(x), true
	}

	return 0, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
