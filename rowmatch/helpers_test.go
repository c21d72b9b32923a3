package rowmatch_test

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/rowalign/grid"
)

// table builds rows from plain Go values: string → text, int/float64 → number,
// bool → boolean, time.Time → date, nil → empty.
func table(rows ...[]any) []grid.Row {
	out := make([]grid.Row, len(rows))
	for i, vals := range rows {
		row := make(grid.Row, len(vals))
		for j, v := range vals {
			switch x := v.(type) {
			case nil:
				row[j] = grid.Empty()
			case string:
				row[j] = grid.Text(x)
			case int:
				row[j] = grid.Number(float64(x))
			case float64:
				row[j] = grid.Number(x)
			case bool:
				row[j] = grid.Bool(x)
			case time.Time:
				row[j] = grid.Date(x)
			default:
				panic(fmt.Sprintf("table: unsupported %T", v))
			}
		}
		out[i] = row
	}

	return out
}

// inventory builds n distinct rows: id, name, quantity.
func inventory(n int) []grid.Row {
	out := make([]grid.Row, n)
	for i := range out {
		out[i] = grid.Row{
			grid.Text(fmt.Sprintf("SKU-%04d", i)),
			grid.Text(fmt.Sprintf("item %d", i)),
			grid.Number(float64(10 + i*7)),
		}
	}

	return out
}

// reversed returns rows in reverse order.
func reversed(rows []grid.Row) []grid.Row {
	out := make([]grid.Row, len(rows))
	for i, r := range rows {
		out[len(rows)-1-i] = r
	}

	return out
}

// randomRows draws rows of 1..4 cells from a small value pool, so duplicates,
// near-duplicates and ragged widths are all common.
func randomRows(rng *rand.Rand, n int) []grid.Row {
	pool := []grid.Cell{
		grid.Empty(), grid.Text("a"), grid.Text("B"), grid.Text(" b "),
		grid.Number(1), grid.Number(2), grid.Number(2.5), grid.Bool(true),
	}
	out := make([]grid.Row, n)
	for i := range out {
		row := make(grid.Row, 1+rng.Intn(4))
		for j := range row {
			row[j] = pool[rng.Intn(len(pool))]
		}
		out[i] = row
	}

	return out
}

// withStrategy returns default options using s (key column 0 for KeyColumn).
func withStrategy(s grid.Strategy) grid.Options {
	opts := grid.DefaultOptions()
	opts.Strategy = s
	if s == grid.KeyColumn {
		opts.KeyColumnIndex = 0
	}

	return opts
}

// render turns records into their compact string forms.
func render(recs []grid.RowAlignment) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.String()
	}

	return out
}
