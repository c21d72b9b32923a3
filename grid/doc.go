// Package grid defines the value types shared by every row-alignment package:
// spreadsheet cells, rows, comparison options, column profiles and the
// row-alignment records produced by the matcher.
//
// 🚀 What lives here?
//
//	Cell          — tagged union {text, number, boolean, date, empty} with an
//	                optional source formula and explicit type tag.
//	Row           — ordered cells; column positions are shared by both datasets.
//	Options       — comparison configuration consumed by every component.
//	ColumnProfile — per-column statistics derived by package profile.
//	RowAlignment  — one matched/added/removed record of the final alignment.
//
// Everything in this package is a plain value: there is no hidden state and
// nothing here performs comparison logic. Normalization and scoring live in
// package profile; alignment lives in package rowmatch.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rowalign/grid"
//
//	original := []grid.Row{
//	  {grid.Text("A1"), grid.Number(10)},
//	  {grid.Text("B2"), grid.Number(20)},
//	}
//	opts := grid.DefaultOptions()
//	opts.Strategy = grid.KeyColumn
//	opts.KeyColumnIndex = 0
package grid
