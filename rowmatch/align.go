package rowmatch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/rowalign/grid"
	"github.com/katalvlaran/rowalign/hungarian"
	"github.com/katalvlaran/rowalign/profile"
)

// mode selects how the run treats its context.
type mode uint8

const (
	modeSync  mode = iota // never consults ctx, blocking solver
	modeAsync             // checkpoints + cooperative solver
	modeAuto              // checkpoints; cooperative solver only for large problems
)

// tickChunk is the number of row-level steps between checkpoints outside the solver.
const tickChunk = hungarian.DefaultChunkSize

// AlignSync aligns original against modified on the calling goroutine
// without consulting any context.
//
// Errors: ErrUnknownStrategy, ErrInvalidKeyColumn (key-column strategy only).
//
// Complexity: Position and KeyColumn O(N); LCS O(N·M) for anchoring plus
// O(K³) for fuzzy resolution of K unanchored rows.
func AlignSync(original, modified []grid.Row, opts grid.Options) ([]grid.RowAlignment, error) {
	r := newRun(context.Background(), modeSync, opts)

	return r.align(original, modified)
}

// AlignAsync is the cooperative form of AlignSync. It checks ctx on entry,
// between phases and periodically inside long loops, and yields the
// goroutine at those points. solverOpts tune the assignment solver
// (hungarian.WithChunkSize, hungarian.WithYield).
//
// For an uncanceled ctx the result equals AlignSync's. Once ctx is done it
// returns nil and an error matching both ErrCanceled and ctx.Err().
func AlignAsync(
	ctx context.Context,
	original, modified []grid.Row,
	opts grid.Options,
	solverOpts ...hungarian.Option,
) ([]grid.RowAlignment, error) {
	r := newRun(ctx, modeAsync, opts)
	r.solverOpts = solverOpts

	return r.align(original, modified)
}

// Align is the dispatcher. A ctx that can never be canceled runs the
// blocking path. Otherwise ctx is honored at every checkpoint and the
// fuzzy phase switches to the cooperative solver once its problem exceeds
// AsyncCellThreshold cells. Results are identical on either path.
func Align(
	ctx context.Context,
	original, modified []grid.Row,
	opts grid.Options,
	solverOpts ...hungarian.Option,
) ([]grid.RowAlignment, error) {
	if ctx == nil || ctx.Done() == nil {
		return AlignSync(original, modified, opts)
	}
	r := newRun(ctx, modeAuto, opts)
	r.solverOpts = solverOpts

	return r.align(original, modified)
}

// run carries per-call state shared by the strategies.
type run struct {
	ctx        context.Context
	mode       mode
	opts       grid.Options
	norm       *profile.Normalizer
	log        *zerolog.Logger
	solverOpts []hungarian.Option
	steps      int
}

func newRun(ctx context.Context, m mode, opts grid.Options) *run {
	if ctx == nil {
		ctx = context.Background()
	}

	return &run{
		ctx:  ctx,
		mode: m,
		opts: opts,
		norm: profile.NewNormalizer(opts),
		log:  zerolog.Ctx(ctx),
	}
}

func (r *run) align(original, modified []grid.Row) ([]grid.RowAlignment, error) {
	if err := r.checkpoint(); err != nil {
		return nil, err
	}
	if err := r.opts.Validate(); err != nil {
		return nil, err
	}

	r.log.Debug().
		Str("strategy", r.opts.Strategy.String()).
		Int("original", len(original)).
		Int("modified", len(modified)).
		Msg("rowmatch: align")

	var (
		out []grid.RowAlignment
		err error
	)
	switch r.opts.Strategy {
	case grid.Position:
		out = alignPosition(len(original), len(modified))
	case grid.KeyColumn:
		out, err = r.alignKeyColumn(original, modified)
	case grid.LCS:
		out, err = r.alignLCS(original, modified)
	default:
		// unreachable after Validate
		err = fmt.Errorf("%w: %d", ErrUnknownStrategy, int(r.opts.Strategy))
	}
	if err != nil {
		return nil, err
	}
	if err = r.checkpoint(); err != nil {
		return nil, err
	}

	return orderAlignments(out), nil
}

// checkpoint reports cancellation in the context-aware modes.
func (r *run) checkpoint() error {
	if r.mode == modeSync {
		return nil
	}
	if err := r.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	return nil
}

// tick accounts k units of work; every tickChunk units it checks ctx and
// yields in async mode.
func (r *run) tick(k int) error {
	if r.mode == modeSync {
		return nil
	}
	r.steps += k
	if r.steps < tickChunk {
		return nil
	}
	r.steps = 0
	if err := r.checkpoint(); err != nil {
		return err
	}
	if r.mode == modeAsync {
		runtime.Gosched()
	}

	return nil
}

// cooperative reports whether the solver should run in cooperative mode
// for a problem of the given cell count.
func (r *run) cooperative(cells int) bool {
	switch r.mode {
	case modeAsync:
		return true
	case modeAuto:
		return cells > AsyncCellThreshold
	default:
		return false
	}
}
