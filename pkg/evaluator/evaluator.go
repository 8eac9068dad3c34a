// Package evaluator implements symbolic reduction of expression trees.
//
// The evaluator receives a parsed Abstract Syntax Tree (AST) from the parser
// and reduces it bottom-up to its canonical simplest form under exact integer
// arithmetic:
//   - Add/Sub/Mul nodes whose children are both numeric fold to an integer
//   - Div folds only when the divisor is nonzero and divides evenly
//   - double negation is eliminated
//   - everything else (variables, irreducible divisions) stays symbolic
//
// The output is always in standardized form: an integer result is either
// Int(n) with n >= 0 or Neg(Int(n)) with n > 0; Neg(Neg(_)) never appears.
//
// # Example
//
//	eval := evaluator.New()
//	out, err := eval.Evaluate(expr.AST())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Evaluation is pure: the input tree is never mutated and every call builds
// its result from fresh nodes, so a tree may be shared by concurrent callers.
package evaluator

import (
	"log/slog"

	"github.com/sandrolain/goalgebra/pkg/cache"
	"github.com/sandrolain/goalgebra/pkg/parser"
	"github.com/sandrolain/goalgebra/pkg/types"
)

// Evaluator reduces expression trees to standardized form.
type Evaluator struct {
	opts   EvalOptions
	logger *slog.Logger
	cache  *cache.Cache // non-nil when Caching is enabled
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Caching enables expression compilation caching for the source-level
	// entry points. When true, compiled expressions are cached by source
	// string. The default cache holds up to 256 entries with LRU eviction.
	Caching bool
	// CacheSize sets the maximum number of cached expressions.
	// Only used when Caching is true and no explicit Cache is provided.
	// Defaults to 256.
	CacheSize int
	// Cache is a custom expression cache. If non-nil, Caching is implicitly enabled.
	Cache *cache.Cache
	// Debug enables debug logging of reduction steps.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
}

// New creates a new Evaluator with default options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		Caching: false, // Disabled by default
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	// Initialise expression cache when caching is enabled.
	var c *cache.Cache
	if options.Cache != nil {
		c = options.Cache
	} else if options.Caching {
		size := options.CacheSize
		if size <= 0 {
			size = 256
		}
		c = cache.New(size)
	}

	return &Evaluator{
		opts:   options,
		logger: options.Logger,
		cache:  c,
	}
}

// Cache returns the expression cache, or nil if caching is disabled.
func (e *Evaluator) Cache() *cache.Cache {
	return e.cache
}

// Evaluate reduces the tree to standardized form. The input is not modified;
// subtrees already in normal form may be shared between input and output.
//
// The only possible error is an internal invariant violation (an E-code);
// it cannot be reached through trees produced by the parser.
func (e *Evaluator) Evaluate(n *types.ASTNode) (*types.ASTNode, error) {
	switch n.Type {
	case types.NodeInt, types.NodeVar:
		return n, nil

	case types.NodeNeg:
		arg, err := e.Evaluate(n.LHS)
		if err != nil {
			return nil, err
		}
		// Double negation cancels. arg is in normal form, so its child
		// cannot itself be a Neg.
		if arg.Type == types.NodeNeg {
			return arg.LHS, nil
		}
		return types.NewNeg(arg), nil

	case types.NodeDiv:
		lhs, rhs, err := e.evaluateChildren(n)
		if err != nil {
			return nil, err
		}
		if isNumeric(lhs) && isNumeric(rhs) {
			lv, err := numericValue(lhs)
			if err != nil {
				return nil, err
			}
			rv, err := numericValue(rhs)
			if err != nil {
				return nil, err
			}
			// Collapse only exact integer divisions; everything else
			// stays a symbolic quotient.
			if rv != 0 && lv%rv == 0 {
				return standardize(lv / rv), nil
			}
		}
		return types.NewBinary(types.NodeDiv, lhs, rhs), nil

	default: // NodeAdd, NodeSub, NodeMul
		lhs, rhs, err := e.evaluateChildren(n)
		if err != nil {
			return nil, err
		}
		if isNumeric(lhs) && isNumeric(rhs) {
			lv, err := numericValue(lhs)
			if err != nil {
				return nil, err
			}
			rv, err := numericValue(rhs)
			if err != nil {
				return nil, err
			}
			switch n.Type {
			case types.NodeAdd:
				return standardize(lv + rv), nil
			case types.NodeSub:
				return standardize(lv - rv), nil
			default:
				return standardize(lv * rv), nil
			}
		}
		// A non-numeric child blocks folding at this node; the evaluated
		// children are kept as-is. Numeric terms separated by a variable
		// under the same operator are intentionally not recombined.
		return types.NewBinary(n.Type, lhs, rhs), nil
	}
}

// Simplify reduces a compiled expression to standardized form.
func (e *Evaluator) Simplify(expr *types.Expression) (*types.ASTNode, error) {
	out, err := e.Evaluate(expr.AST())
	if err != nil {
		return nil, err
	}
	if e.opts.Debug {
		e.logger.Debug("simplified expression",
			"source", expr.Source(),
			"normalForm", out.String())
	}
	return out, nil
}

// SimplifySource parses and reduces an expression in one call. When caching
// is enabled the compiled form is reused across calls with the same source.
func (e *Evaluator) SimplifySource(source string) (*types.ASTNode, error) {
	expr, err := e.compile(source)
	if err != nil {
		return nil, err
	}
	return e.Simplify(expr)
}

// compile parses source, going through the expression cache when enabled.
func (e *Evaluator) compile(source string) (*types.Expression, error) {
	if e.cache != nil {
		return e.cache.GetOrCompile(source, func() (*types.Expression, error) {
			return parser.Parse(source)
		})
	}
	return parser.Parse(source)
}

func (e *Evaluator) evaluateChildren(n *types.ASTNode) (*types.ASTNode, *types.ASTNode, error) {
	lhs, err := e.Evaluate(n.LHS)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := e.Evaluate(n.RHS)
	if err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

// EvalOption configures evaluation behavior.
type EvalOption func(*EvalOptions)

// WithCaching enables or disables expression compilation caching.
// When enabled, a default LRU cache of 256 entries is created.
// To control the cache size use WithCacheSize; to supply your own cache use WithCache.
func WithCaching(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Caching = enabled
	}
}

// WithCacheSize sets the maximum number of cached expressions.
// Only effective when combined with WithCaching(true).
func WithCacheSize(size int) EvalOption {
	return func(opts *EvalOptions) {
		opts.CacheSize = size
	}
}

// WithCache attaches an external expression cache.
// The evaluator will use this cache regardless of the Caching flag.
func WithCache(c *cache.Cache) EvalOption {
	return func(opts *EvalOptions) {
		opts.Cache = c
	}
}

// WithDebug enables or disables debug logging.
func WithDebug(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Debug = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(opts *EvalOptions) {
		opts.Logger = logger
	}
}
