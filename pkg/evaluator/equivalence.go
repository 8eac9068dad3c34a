package evaluator

import (
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/sandrolain/goalgebra/pkg/types"
)

// Defaults for the equivalence checker.
const (
	defaultTrials    = 10
	defaultTolerance = 1e-4
	defaultRangeLo   = -50 // inclusive
	defaultRangeHi   = 50  // exclusive
)

// Checker decides whether two expressions are numerically equivalent by
// repeated random variable substitution (a Monte Carlo test, not a proof).
//
// Each trial assigns every variable occurring in either expression an
// independent uniform random integer, substitutes, reduces both sides, and
// folds the normal forms to real values using true division. A trial where
// either side is undefined (division by a sampled zero) is skipped as
// inconclusive; a trial where the defined values disagree beyond the
// tolerance refutes equivalence immediately.
//
// Known soundness gap: expressions that are undefined on every sampled point
// (e.g. one that only ever divides by zero) produce no conclusive trial and
// are reported as equivalent to anything.
type Checker struct {
	eval      *Evaluator
	rng       *rand.Rand
	trials    int
	tolerance float64
	rangeLo   int64
	rangeHi   int64
	logger    *slog.Logger
	debug     bool
}

// CheckOptions configures equivalence checking.
type CheckOptions struct {
	// Trials is the number of random substitution rounds. Defaults to 10.
	Trials int
	// Tolerance is the maximum absolute difference between the two sides'
	// folded values for a trial to agree. Defaults to 1e-4.
	Tolerance float64
	// RangeLo and RangeHi bound the random assignments: values are drawn
	// uniformly from [RangeLo, RangeHi). Defaults to [-50, 50).
	RangeLo, RangeHi int64
	// Rand is the random source. When nil a time-seeded source is created;
	// inject a seeded *rand.Rand for reproducible checks.
	Rand *rand.Rand
	// Evaluator used to reduce substituted trees. When nil a default one
	// is created.
	Evaluator *Evaluator
	// Debug enables per-trial debug logging.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
}

// NewChecker creates a Checker with the given options.
func NewChecker(opts ...CheckOption) *Checker {
	options := CheckOptions{
		Trials:    defaultTrials,
		Tolerance: defaultTolerance,
		RangeLo:   defaultRangeLo,
		RangeHi:   defaultRangeHi,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if options.Evaluator == nil {
		options.Evaluator = New()
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Checker{
		eval:      options.Evaluator,
		rng:       options.Rand,
		trials:    options.Trials,
		tolerance: options.Tolerance,
		rangeLo:   options.RangeLo,
		rangeHi:   options.RangeHi,
		logger:    options.Logger,
		debug:     options.Debug,
	}
}

// Equivalent reports whether the two trees numerically agree on every
// conclusive trial. The only possible error is an internal evaluator
// invariant violation.
func (c *Checker) Equivalent(a, b *types.ASTNode) (bool, error) {
	// Union of variable names across both sides, in stable order so that a
	// seeded random source yields reproducible assignments.
	varSet := b.Vars(a.Vars(nil))
	names := make([]string, 0, len(varSet))
	for name := range varSet {
		names = append(names, name)
	}
	sort.Strings(names)

	bindings := make(map[string]int64, len(names))
	span := c.rangeHi - c.rangeLo

	for trial := 0; trial < c.trials; trial++ {
		for _, name := range names {
			bindings[name] = c.rangeLo + c.rng.Int63n(span)
		}

		va, okA, err := c.trialValue(a, bindings)
		if err != nil {
			return false, err
		}
		vb, okB, err := c.trialValue(b, bindings)
		if err != nil {
			return false, err
		}

		if c.debug {
			c.logger.Debug("equivalence trial",
				"trial", trial,
				"lhs", va, "lhsDefined", okA,
				"rhs", vb, "rhsDefined", okB)
		}

		// An undefined side makes the trial inconclusive, not a mismatch.
		if !okA || !okB {
			continue
		}
		if math.Abs(va-vb) > c.tolerance {
			return false, nil
		}
	}

	return true, nil
}

// EquivalentExpr is a convenience wrapper over Equivalent for compiled
// expressions.
func (c *Checker) EquivalentExpr(a, b *types.Expression) (bool, error) {
	return c.Equivalent(a.AST(), b.AST())
}

// trialValue substitutes bindings into the tree, reduces it, and folds the
// normal form to a real value. ok is false when the value is undefined for
// this assignment (a zero denominator somewhere in the tree).
func (c *Checker) trialValue(n *types.ASTNode, bindings map[string]int64) (float64, bool, error) {
	reduced, err := c.eval.Evaluate(Substitute(n, bindings))
	if err != nil {
		return 0, false, err
	}
	v, ok := foldReal(reduced)
	return v, ok, nil
}

// foldReal computes the real-number value of a fully substituted tree,
// performing true division on Div nodes the evaluator left unreduced.
// ok is false when the value is undefined (division by zero) or when an
// unsubstituted variable remains.
func foldReal(n *types.ASTNode) (float64, bool) {
	switch n.Type {
	case types.NodeInt:
		return float64(n.IntValue), true
	case types.NodeVar:
		return 0, false
	case types.NodeNeg:
		v, ok := foldReal(n.LHS)
		return -v, ok
	default:
		lv, ok := foldReal(n.LHS)
		if !ok {
			return 0, false
		}
		rv, ok := foldReal(n.RHS)
		if !ok {
			return 0, false
		}
		switch n.Type {
		case types.NodeAdd:
			return lv + rv, true
		case types.NodeSub:
			return lv - rv, true
		case types.NodeMul:
			return lv * rv, true
		default: // NodeDiv
			if rv == 0 {
				return 0, false
			}
			return lv / rv, true
		}
	}
}

// CheckOption configures equivalence checking behavior.
type CheckOption func(*CheckOptions)

// WithTrials sets the number of random substitution rounds.
func WithTrials(trials int) CheckOption {
	return func(opts *CheckOptions) {
		if trials > 0 {
			opts.Trials = trials
		}
	}
}

// WithTolerance sets the numeric agreement tolerance.
func WithTolerance(tolerance float64) CheckOption {
	return func(opts *CheckOptions) {
		opts.Tolerance = tolerance
	}
}

// WithRange sets the half-open interval [lo, hi) random assignments are
// drawn from. Ignored unless lo < hi.
func WithRange(lo, hi int64) CheckOption {
	return func(opts *CheckOptions) {
		if lo < hi {
			opts.RangeLo = lo
			opts.RangeHi = hi
		}
	}
}

// WithRand injects the random source, making the check reproducible.
func WithRand(rng *rand.Rand) CheckOption {
	return func(opts *CheckOptions) {
		opts.Rand = rng
	}
}

// WithSeed is shorthand for WithRand with a source seeded from seed.
func WithSeed(seed int64) CheckOption {
	return func(opts *CheckOptions) {
		opts.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithEvaluator sets the evaluator used to reduce substituted trees.
func WithEvaluator(e *Evaluator) CheckOption {
	return func(opts *CheckOptions) {
		opts.Evaluator = e
	}
}

// WithCheckDebug enables per-trial debug logging.
func WithCheckDebug(enabled bool) CheckOption {
	return func(opts *CheckOptions) {
		opts.Debug = enabled
	}
}

// WithCheckLogger sets a custom logger for the checker.
func WithCheckLogger(logger *slog.Logger) CheckOption {
	return func(opts *CheckOptions) {
		opts.Logger = logger
	}
}
