package grid

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	// KindEmpty is a blank cell (also the zero value of Cell).
	KindEmpty Kind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a float64 cell.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindDate is a time.Time cell.
	KindDate
)

var kindNames = [...]string{
	KindEmpty:  "empty",
	KindText:   "text",
	KindNumber: "number",
	KindBool:   "boolean",
	KindDate:   "date",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Cell is a single immutable spreadsheet value.
// The zero Cell is the empty cell.
type Cell struct {
	kind    Kind
	text    string
	num     float64
	flag    bool
	when    time.Time
	formula string
	typeTag string
}

// Empty returns the empty cell.
func Empty() Cell { return Cell{} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{kind: KindText, text: s} }

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{kind: KindNumber, num: v} }

// Bool returns a boolean cell.
func Bool(v bool) Cell { return Cell{kind: KindBool, flag: v} }

// Date returns a date cell.
func Date(t time.Time) Cell { return Cell{kind: KindDate, when: t} }

// DateFromSerial converts an Excel date serial (days since the 1900 or 1904
// epoch, fractional part = time of day) into a date cell.
func DateFromSerial(serial float64, date1904 bool) (Cell, error) {
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %g: %v", ErrInvalidSerial, serial, err)
	}

	return Date(t), nil
}

// WithFormula returns a copy of c carrying the source formula f.
func (c Cell) WithFormula(f string) Cell {
	c.formula = f

	return c
}

// WithTypeTag returns a copy of c carrying an explicit type tag (e.g. "currency").
func (c Cell) WithTypeTag(tag string) Cell {
	c.typeTag = tag

	return c
}

// Kind reports which variant c holds.
func (c Cell) Kind() Kind { return c.kind }

// IsEmpty reports whether c is the empty cell.
func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

// TextValue returns the string payload; ok is false for non-text cells.
func (c Cell) TextValue() (s string, ok bool) { return c.text, c.kind == KindText }

// NumberValue returns the numeric payload; ok is false for non-number cells.
func (c Cell) NumberValue() (v float64, ok bool) { return c.num, c.kind == KindNumber }

// BoolValue returns the boolean payload; ok is false for non-boolean cells.
func (c Cell) BoolValue() (v bool, ok bool) { return c.flag, c.kind == KindBool }

// DateValue returns the time payload; ok is false for non-date cells.
func (c Cell) DateValue() (t time.Time, ok bool) { return c.when, c.kind == KindDate }

// Formula returns the source formula, if any.
func (c Cell) Formula() string { return c.formula }

// TypeTag returns the explicit type tag, if any.
func (c Cell) TypeTag() string { return c.typeTag }

// String renders the payload for diagnostics. It is not a normalization;
// use profile.NormalizeValue to compare cells.
func (c Cell) String() string {
	switch c.kind {
	case KindText:
		return c.text
	case KindNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.flag)
	case KindDate:
		return c.when.Format(time.RFC3339Nano)
	default:
		return ""
	}
}
