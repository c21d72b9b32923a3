package profile

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/katalvlaran/rowalign/grid"
)

// Value is the canonical, comparable form of a cell. Two cells are the same
// under some Options iff their Values are == (Values are valid map keys).
type Value struct {
	Kind grid.Kind
	Str  string  // text payload (trimmed/folded per options); "NaN" marks a NaN number
	Num  float64 // number payload (-0 normalized to 0, NaN stored as 0)
	Bool bool    // boolean payload
	Sec  int64   // date payload: Unix seconds (UTC instant)
	Nsec int     // date payload: nanoseconds within Sec
}

// EmptyValue is the single empty sentinel.
var EmptyValue = Value{Kind: grid.KindEmpty}

// IsEmpty reports whether v is the empty sentinel.
func (v Value) IsEmpty() bool { return v.Kind == grid.KindEmpty }

// Key renders v as an unambiguous string; equal Values give equal keys.
func (v Value) Key() string {
	switch v.Kind {
	case grid.KindText:
		return "s" + strconv.Quote(v.Str)
	case grid.KindNumber:
		if v.Str != "" {
			return "n" + v.Str
		}
		return "n" + strconv.FormatFloat(v.Num, 'g', -1, 64)
	case grid.KindBool:
		return "b" + strconv.FormatBool(v.Bool)
	case grid.KindDate:
		return "d" + strconv.FormatInt(v.Sec, 10) + "." + strconv.Itoa(v.Nsec)
	default:
		return "e"
	}
}

// Normalizer canonicalizes cells under one set of Options. Create one per
// comparison and pass it explicitly to every consumer.
type Normalizer struct {
	opts grid.Options
	fold cases.Caser
}

// NewNormalizer returns a Normalizer for opts.
func NewNormalizer(opts grid.Options) *Normalizer {
	n := &Normalizer{opts: opts}
	if opts.IgnoreCase {
		n.fold = cases.Fold()
	}

	return n
}

// Options returns the options the Normalizer was built with.
func (n *Normalizer) Options() grid.Options { return n.opts }

// Normalize canonicalizes c:
//   - text: trimmed when IgnoreWhitespace, case-folded when IgnoreCase;
//     text that ends up "" is the empty sentinel;
//   - dates: reduced to the UTC instant, so equal instants in different
//     locations or formats compare equal;
//   - numbers and booleans pass through (-0 becomes 0, all NaNs are equal);
//   - empty collapses to EmptyValue.
func (n *Normalizer) Normalize(c grid.Cell) Value {
	switch c.Kind() {
	case grid.KindText:
		s, _ := c.TextValue()
		if n.opts.IgnoreWhitespace {
			s = strings.TrimSpace(s)
		}
		if s == "" {
			return EmptyValue
		}
		if n.opts.IgnoreCase {
			s = n.fold.String(s)
		}
		return Value{Kind: grid.KindText, Str: s}
	case grid.KindNumber:
		f, _ := c.NumberValue()
		if math.IsNaN(f) {
			return Value{Kind: grid.KindNumber, Str: "NaN"}
		}
		return Value{Kind: grid.KindNumber, Num: f + 0}
	case grid.KindBool:
		b, _ := c.BoolValue()
		return Value{Kind: grid.KindBool, Bool: b}
	case grid.KindDate:
		t, _ := c.DateValue()
		t = t.UTC()
		return Value{Kind: grid.KindDate, Sec: t.Unix(), Nsec: t.Nanosecond()}
	default:
		return EmptyValue
	}
}

// Key is Normalize(c).Key().
func (n *Normalizer) Key(c grid.Cell) string {
	return n.Normalize(c).Key()
}

// fingerprintSep separates cell keys; quoted text keys cannot contain it raw.
const fingerprintSep = "\x1f"

// Fingerprint renders row r over columns [0,width) as one string; ignored
// columns are skipped and missing columns read as empty. Two rows have equal
// fingerprints iff every used column normalizes equal.
func (n *Normalizer) Fingerprint(r grid.Row, width int) string {
	var b strings.Builder
	for c := 0; c < width; c++ {
		if IsColumnIgnored(c, n.opts) {
			continue
		}
		b.WriteString(n.Key(r.At(c)))
		b.WriteString(fingerprintSep)
	}

	return b.String()
}

// NormalizeValue canonicalizes a single cell under opts.
// Callers normalizing many cells should reuse a Normalizer.
func NormalizeValue(c grid.Cell, opts grid.Options) Value {
	return NewNormalizer(opts).Normalize(c)
}

// IsColumnIgnored reports whether column index is in opts.IgnoredColumns.
func IsColumnIgnored(index int, opts grid.Options) bool {
	return opts.IgnoredColumns.Has(index)
}
