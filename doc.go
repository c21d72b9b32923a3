// Package rowalign decides which rows of two versions of a table belong
// together, so a spreadsheet diff can compare matched rows cell by cell and
// report the rest as added or removed.
//
// 🚀 What is inside?
//
//	grid/      — cells, rows, options and the RowAlignment result type
//	profile/   — cell normalization, column profiling, weighted row similarity
//	matrix/    — dense float64 matrix + validators used for cost matrices
//	hungarian/ — exact min-cost assignment, blocking and cooperative/cancelable
//	rowmatch/  — the aligner: position, key-column and LCS strategies
//	cmd/rowalign — command-line front end for YAML/JSON/.xlsx inputs
//
// ✨ Highlights
//
//   - Deterministic: the same input always yields the same alignment.
//   - Sync and async entry points give identical results; async honors
//     context cancellation and never returns a partial alignment.
//   - Moved and edited rows are found: LCS anchors unchanged rows, the
//     Hungarian algorithm pairs the rest by column-weighted similarity.
//
// Quick example:
//
//	original: A B C        modified: A C
//	LCS → matched(0,0) removed(1) matched(2,1)
//
//	go get github.com/katalvlaran/rowalign
package rowalign
