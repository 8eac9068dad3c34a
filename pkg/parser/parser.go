// Package parser implements the goalgebra expression parser.
//
// The parser uses a hand-written recursive descent approach with precedence
// climbing. The input is tokenized eagerly into a fixed token sequence; the
// parser then walks that sequence with a single position cursor and no
// backtracking.
//
// # Architecture
//
// The parser consists of two components:
//   - Lexer: Tokenizes the input expression into a token slice
//   - Parser: Builds an Abstract Syntax Tree (AST) from the tokens
//
// # Example
//
//	expr, err := parser.Parse("4 + x * (1 - 2)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ast := expr.AST()
package parser

import (
	"github.com/sandrolain/goalgebra/pkg/types"
)

// Parse parses an algebraic expression and returns the compiled Expression.
//
// The function tokenizes the whole input, builds an AST, and validates that
// no tokens remain. If parsing fails, it returns a *types.Error with an
// S-code and position information.
func Parse(source string, opts ...CompileOption) (*types.Expression, error) {
	p := NewParser(source, opts...)
	return p.Parse()
}

// Compile is an alias for Parse, provided for API consistency.
func Compile(source string, opts ...CompileOption) (*types.Expression, error) {
	return Parse(source, opts...)
}

// CompileOption configures compilation behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits recursion depth to prevent stack overflow on
	// pathologically nested input.
	MaxDepth int
}

// WithMaxDepth sets the maximum parsing depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}
