package mallmock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshuapare/mallmock/alloc"
)

// DefaultMaxOrdinal bounds a sweep when SweepOptions.MaxOrdinal is zero.
const DefaultMaxOrdinal = 1 << 16

// SweepOptions controls Sweep.
type SweepOptions struct {
	// MaxOrdinal is the number of ordinals tried before giving up with
	// ErrOrdinalLimit. Default: DefaultMaxOrdinal.
	MaxOrdinal int

	// Logger receives one Debug record per ordinal. Default: discard.
	Logger *slog.Logger
}

// SweepResult describes a completed sweep.
type SweepResult struct {
	// Allocations is the number of allocating calls made by the clean run,
	// i.e. the run that finished before the armed ordinal was reached.
	Allocations int

	// Runs is the number of times the workload was executed.
	Runs int

	// Ignored lists ordinals whose injected failure the workload did not report.
	Ignored []int

	// Leaked lists ordinals after which the workload still held blocks.
	Leaked []int
}

// Mishandled reports whether any injected failure was ignored or leaked.
func (r *SweepResult) Mishandled() bool {
	return len(r.Ignored) > 0 || len(r.Leaked) > 0
}

// Sweep runs the workload once per ordinal k = 0, 1, 2, ..., each time with a
// fresh Interceptor over next armed to fail call k with a nil block.
//
// A run that reaches ordinal k must return an error and must have freed
// every block it allocated. The first run that makes k calls or fewer is the
// clean run: it must succeed, and its call count becomes the result's
// Allocations. The workload must be deterministic and single-goroutine for
// the ordinals to line up between runs.
//
// Sweep returns the result together with ErrFailureMishandled when any
// ordinal was ignored or leaked, ErrRunFailed when the clean run fails, and
// ErrOrdinalLimit when no clean run happens within opts.MaxOrdinal runs.
func Sweep(ctx context.Context, next alloc.Allocator, run func(alloc.Allocator) error, opts *SweepOptions) (*SweepResult, error) {
	if opts == nil {
		opts = &SweepOptions{}
	}
	limit := opts.MaxOrdinal
	if limit <= 0 {
		limit = DefaultMaxOrdinal
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ic := New(next)
	res := &SweepResult{}

	for k := range limit {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		counter := alloc.NewCounter(ic)
		ic.Arm(nil, k)
		runErr := run(counter)
		ic.Reset()
		res.Runs++

		stats := counter.Stats()
		injected := stats.Calls() > uint64(k)

		logger.Debug("sweep run",
			"ordinal", k,
			"calls", stats.Calls(),
			"injected", injected,
			"live", stats.Live,
			"err", runErr,
		)

		if !injected {
			if runErr != nil {
				return res, fmt.Errorf("%w: ordinal %d: %w", ErrRunFailed, k, runErr)
			}
			res.Allocations = int(stats.Calls())
			if res.Mishandled() {
				return res, fmt.Errorf("%w: ignored at %v, leaked at %v",
					ErrFailureMishandled, res.Ignored, res.Leaked)
			}
			return res, nil
		}

		if runErr == nil {
			res.Ignored = append(res.Ignored, k)
		}
		if stats.Live != 0 {
			res.Leaked = append(res.Leaked, k)
		}
	}

	return res, fmt.Errorf("%w: %d", ErrOrdinalLimit, limit)
}
