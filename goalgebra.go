// Package goalgebra parses, renders, and symbolically reduces algebraic
// expressions over integers, variables, and the four basic arithmetic
// operators (plus unary negation).
//
// The engine is built from four small pieces:
//   - Parser: text -> AST (recursive descent, precedence climbing)
//   - Renderer: AST -> display string or typeset (LaTeX) string
//   - Evaluator: AST -> AST, reducing numeric subtrees to canonical form
//     under exact integer arithmetic while leaving variables and
//     non-dividing quotients symbolic
//   - Equivalence checker: AST x AST -> bool, by randomized numeric
//     substitution and evaluation
//
// # Quick Start
//
//	// Parse and simplify in one call
//	out, err := goalgebra.Simplify("2 * 3 + x")
//
//	// Or keep the tree
//	expr, err := goalgebra.Parse("4 / 2 + x")
//	reduced, _ := goalgebra.Evaluate(expr)
//	fmt.Println(goalgebra.Render(reduced)) // (2 + x)
//
//	// Probabilistic equivalence
//	a, _ := goalgebra.Parse("x + x")
//	b, _ := goalgebra.Parse("2 * x")
//	same, _ := goalgebra.Equivalent(a, b)
//
// All operations are pure and safe for concurrent use; the only source of
// non-determinism is the equivalence checker's random variable assignment,
// which accepts an injected seedable source for reproducible results.
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/sandrolain/goalgebra/pkg/parser
//   - Evaluator: github.com/sandrolain/goalgebra/pkg/evaluator
//   - Renderer: github.com/sandrolain/goalgebra/pkg/render
//   - Types: github.com/sandrolain/goalgebra/pkg/types
package goalgebra

import (
	"fmt"

	"github.com/sandrolain/goalgebra/pkg/evaluator"
	"github.com/sandrolain/goalgebra/pkg/parser"
	"github.com/sandrolain/goalgebra/pkg/render"
	"github.com/sandrolain/goalgebra/pkg/types"
)

// Version returns the current version of goalgebra.
func Version() string {
	return "v0.1.0-dev"
}

// Parse parses an algebraic expression into a compiled Expression.
//
// The Expression can be rendered, evaluated and compared any number of
// times and is safe for concurrent use. Parse fails with a *types.Error
// carrying an S-code when the input is not a well-formed expression.
func Parse(source string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Parse(source, opts...)
}

// MustParse is like Parse but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(source string) *types.Expression {
	expr, err := Parse(source)
	if err != nil {
		panic(fmt.Sprintf("goalgebra: Parse(%q): %v", source, err))
	}
	return expr
}

// Evaluate reduces a compiled expression to its canonical simplest form.
// Numeric subtrees collapse under exact integer arithmetic; variables and
// divisions with a remainder stay symbolic. The result never contains a
// double negation or a negative integer literal.
func Evaluate(expr *types.Expression, opts ...evaluator.EvalOption) (*types.ASTNode, error) {
	return evaluator.New(opts...).Simplify(expr)
}

// Simplify is a convenience function that parses, reduces, and renders an
// expression in a single call.
//
// For repeated simplification of the same expression enable caching:
//
//	out, err := goalgebra.Simplify("4 + x + 1", evaluator.WithCaching(true))
func Simplify(source string, opts ...evaluator.EvalOption) (string, error) {
	out, err := evaluator.New(opts...).SimplifySource(source)
	if err != nil {
		return "", err
	}
	return render.Render(out), nil
}

// Render returns the fully parenthesized infix form of a tree.
func Render(n *types.ASTNode) string {
	return render.Render(n)
}

// RenderTypeset returns the LaTeX form of a tree.
func RenderTypeset(n *types.ASTNode) string {
	return render.RenderTypeset(n)
}

// Equivalent reports whether two expressions numerically agree under
// repeated random variable assignment. It is a Monte Carlo test: a false
// result is definitive, a true result is correct with high probability for
// non-pathological expressions. See evaluator.Checker for the soundness
// caveats around divisions by a sampled zero.
func Equivalent(a, b *types.Expression, opts ...evaluator.CheckOption) (bool, error) {
	return evaluator.NewChecker(opts...).EquivalentExpr(a, b)
}
