package assignment

import (
	"context"
	"fmt"
	"math"
)

// DefaultEpsilon is the relative tolerance for tightness tests:
// an edge is tight when dx[i]+dy[j]-W[i][j] ≤ eps·max(1, max|W|).
const DefaultEpsilon = 1e-9

// defaultUpdateFactor scales the proven per-row bound of n+1 dual updates
// into the default non-convergence guard.
const defaultUpdateFactor = 4

// Option configures a solve via functional arguments.
// If an Option is invalid (e.g. negative epsilon), it is recorded
// internally and surfaced as ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve.
type Options struct {
	// Ctx allows cancellation and deadlines; checked before each augmentation attempt.
	Ctx context.Context

	// Objective selects Maximize (default) or Minimize.
	Objective Objective

	// Eps is the relative tightness tolerance. 0 means exact comparison,
	// which is only safe for integer (or exactly representable) weights.
	Eps float64

	// MaxDualUpdates bounds potential updates per row before the solver
	// reports ErrNonConvergence. 0 selects defaultUpdateFactor·(n+1).
	MaxDualUpdates int

	// OnAugment is called after row has been matched; pathLen is the number
	// of columns (re)assigned along the augmenting path.
	OnAugment func(row, pathLen int)

	// OnDualUpdate is called after every potential adjustment with the
	// applied delta and the sizes of the visited row and column sets.
	OnDualUpdate func(delta float64, sRows, tCols int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Maximize
//   - Eps = DefaultEpsilon
//   - automatic dual-update bound
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Objective:      Maximize,
		Eps:            DefaultEpsilon,
		MaxDualUpdates: 0,
		OnAugment:      func(int, int) {},
		OnDualUpdate:   func(float64, int, int) {},
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObjective selects the optimization direction.
func WithObjective(obj Objective) Option {
	return func(o *Options) {
		switch obj {
		case Maximize, Minimize:
			o.Objective = obj
		default:
			o.err = fmt.Errorf("%w: unknown objective %d", ErrOptionViolation, int(obj))
		}
	}
}

// WithMinimize is shorthand for WithObjective(Minimize).
func WithMinimize() Option {
	return WithObjective(Minimize)
}

// WithEpsilon sets the relative tightness tolerance.
//
//	eps > 0: tolerant comparison (recommended for fractional weights)
//	eps == 0: exact comparison
//	eps < 0, NaN or Inf: invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: epsilon must be finite and non-negative (%v)", ErrOptionViolation, eps)
			return
		}
		o.Eps = eps
	}
}

// WithMaxDualUpdates bounds potential updates per row.
//
//	k > 0: explicit bound
//	k == 0: automatic bound
//	k < 0: invalid option → ErrOptionViolation
func WithMaxDualUpdates(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxDualUpdates cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxDualUpdates = k
	}
}

// WithOnAugment registers a callback run after each row is matched.
func WithOnAugment(fn func(row, pathLen int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithOnDualUpdate registers a callback run after each potential adjustment.
func WithOnDualUpdate(fn func(delta float64, sRows, tCols int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDualUpdate = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions and returns the recorded
// violation, if any (the last invalid option wins).
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// updateLimit resolves the per-row dual-update bound for order n.
func (o Options) updateLimit(n int) int {
	if o.MaxDualUpdates > 0 {
		return o.MaxDualUpdates
	}

	return defaultUpdateFactor * (n + 1)
}
