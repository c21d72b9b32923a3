package rowmatch

import (
	"fmt"

	"github.com/katalvlaran/rowalign/grid"
	"github.com/katalvlaran/rowalign/profile"
)

// alignKeyColumn pairs rows whose normalized key cells are equal.
//
// Original rows are queued per key in encounter order; each modified row
// takes the head of its key's queue, so duplicate keys pair first with
// first, second with second. Unconsumed originals are removed, modified
// rows with no queued partner are added.
func (r *run) alignKeyColumn(original, modified []grid.Row) ([]grid.RowAlignment, error) {
	key := r.opts.KeyColumnIndex
	if err := validateKeyRange(key, original, modified); err != nil {
		return nil, err
	}

	queues := make(map[profile.Value][]int, len(original))
	for i, row := range original {
		v := r.norm.Normalize(row.At(key))
		queues[v] = append(queues[v], i)
		if err := r.tick(1); err != nil {
			return nil, err
		}
	}

	consumed := make([]bool, len(original))
	out := make([]grid.RowAlignment, 0, len(original)+len(modified))
	for j, row := range modified {
		v := r.norm.Normalize(row.At(key))
		if q := queues[v]; len(q) > 0 {
			queues[v] = q[1:]
			consumed[q[0]] = true
			out = append(out, grid.MatchedRows(q[0], j))
		} else {
			out = append(out, grid.AddedRow(j))
		}
		if err := r.tick(1); err != nil {
			return nil, err
		}
	}
	for i, ok := range consumed {
		if !ok {
			out = append(out, grid.RemovedRow(i))
		}
	}

	r.log.Debug().
		Int("key", key).
		Int("distinct_keys", len(queues)).
		Msg("rowmatch: key column")

	return out, nil
}

// validateKeyRange requires the key to exist in at least one dataset
// unless both are empty.
func validateKeyRange(key int, original, modified []grid.Row) error {
	if len(original) == 0 && len(modified) == 0 {
		return nil
	}
	origWidth, modWidth := grid.MaxColumns(original), grid.MaxColumns(modified)
	if key >= origWidth && key >= modWidth {
		return fmt.Errorf("%w: key column %d out of range (original has %d columns, modified has %d)",
			ErrInvalidKeyColumn, key, origWidth, modWidth)
	}

	return nil
}
